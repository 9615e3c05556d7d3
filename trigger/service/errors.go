package service

import "errors"

var (
	// ErrMalformedSchedule marks a schedule that is not a valid one-time or
	// interval variant (missing amount or unknown unit).
	ErrMalformedSchedule = errors.New("malformed schedule")

	// ErrInvalidInterval marks a recurring schedule below the plan's minimum
	// interval.
	ErrInvalidInterval = errors.New("schedule interval is below the plan minimum")

	// ErrTriggerLimitReached marks a create that would exceed the plan's
	// active trigger count.
	ErrTriggerLimitReached = errors.New("active trigger limit reached for plan")

	// ErrTriggerNotResumable marks a resume of a trigger that is not paused.
	ErrTriggerNotResumable = errors.New("only paused triggers can be resumed")

	// ErrTriggerNotPausable marks a pause of a trigger that is not active.
	ErrTriggerNotPausable = errors.New("only active triggers can be paused")

	// ErrTriggerTerminal marks an edit of a completed, failed or archived
	// trigger.
	ErrTriggerTerminal = errors.New("trigger is in a terminal state")

	ErrInvalidName = errors.New("trigger name cannot be empty")
	ErrInvalidURL  = errors.New("trigger url is invalid")
)

package domain

import "time"

// NeverRuns is the far-future sentinel used as the next run of triggers that
// must not be scheduled again (terminal or malformed). It is never
// re-evaluated by the scheduler.
var NeverRuns = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

type TriggerStatus string

const (
	TriggerStatusActive    TriggerStatus = "active"
	TriggerStatusPaused    TriggerStatus = "paused"
	TriggerStatusCompleted TriggerStatus = "completed"
	TriggerStatusFailed    TriggerStatus = "failed"
	TriggerStatusArchived  TriggerStatus = "archived"
)

// IsTerminal reports whether the status never transitions again.
func (s TriggerStatus) IsTerminal() bool {
	switch s {
	case TriggerStatusCompleted, TriggerStatusFailed, TriggerStatusArchived:
		return true
	default:
		return false
	}
}

type ScheduleKind string

const (
	ScheduleOneTime  ScheduleKind = "oneTime"
	ScheduleInterval ScheduleKind = "interval"
)

type IntervalUnit string

const (
	UnitSeconds IntervalUnit = "seconds"
	UnitMinutes IntervalUnit = "minutes"
	UnitHours   IntervalUnit = "hours"
	UnitDays    IntervalUnit = "days"
	UnitWeeks   IntervalUnit = "weeks"
	UnitMonths  IntervalUnit = "months"
	UnitYears   IntervalUnit = "years"
)

// ValidUnit reports whether u is one of the supported interval units.
func ValidUnit(u IntervalUnit) bool {
	switch u {
	case UnitSeconds, UnitMinutes, UnitHours, UnitDays, UnitWeeks, UnitMonths, UnitYears:
		return true
	default:
		return false
	}
}

// Schedule is the closed tagged variant describing when a trigger fires:
// either once, or every Amount of Unit.
type Schedule struct {
	Kind   ScheduleKind `firestore:"kind" json:"kind"`
	Amount int64        `firestore:"amount,omitempty" json:"amount,omitempty"`
	Unit   IntervalUnit `firestore:"unit,omitempty" json:"unit,omitempty"`
}

// IsRecurring reports whether the schedule fires more than once.
func (s Schedule) IsRecurring() bool {
	return s.Kind == ScheduleInterval
}

// Trigger is an organization-owned scheduled webhook definition.
type Trigger struct {
	ID                string         `firestore:"-" json:"id"`
	OrganizationID    string         `firestore:"organizationId" json:"organizationId"`
	GroupID           string         `firestore:"groupId,omitempty" json:"groupId,omitempty"`
	Name              string         `firestore:"name" json:"name"`
	URL               string         `firestore:"url" json:"url"`
	HTTPMethod        string         `firestore:"httpMethod" json:"httpMethod"`
	Payload           string         `firestore:"payload" json:"payload"`
	TimeoutMs         int64          `firestore:"timeoutMs" json:"timeoutMs"`
	Schedule          Schedule       `firestore:"schedule" json:"schedule"`
	Status            TriggerStatus  `firestore:"status" json:"status"`
	NextRun           time.Time      `firestore:"nextRun" json:"nextRun"`
	RunCount          int64          `firestore:"runCount" json:"runCount"`
	ExecutionLimit    int64          `firestore:"executionLimit,omitempty" json:"executionLimit,omitempty"`
	ArchiveOnComplete bool           `firestore:"archiveOnComplete" json:"archiveOnComplete"`
	RecentLogs        []ExecutionLog `firestore:"recentLogs" json:"recentLogs"`
	HistoryMigrated   bool           `firestore:"historyMigrated" json:"historyMigrated"`
	TimeCreated       time.Time      `firestore:"timeCreated,serverTimestamp" json:"timeCreated"`
	TimeModified      time.Time      `firestore:"timeModified,serverTimestamp" json:"timeModified"`
}

// IsDue reports whether the trigger's next run has elapsed.
func (t *Trigger) IsDue(now time.Time) bool {
	return !t.NextRun.After(now)
}

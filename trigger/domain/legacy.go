package domain

import "time"

// EmbeddedTrigger is the legacy shape of a trigger stored inside its parent
// organization or group document, before triggers became independent
// documents. The scheduler never evaluates this shape; the migrator converts
// it once at the start of an organization's pass.
type EmbeddedTrigger struct {
	ID             string         `firestore:"id"`
	GroupID        string         `firestore:"groupId,omitempty"`
	Name           string         `firestore:"name"`
	URL            string         `firestore:"url"`
	Method         string         `firestore:"method"`
	Payload        string         `firestore:"payload"`
	Type           string         `firestore:"type"`
	Every          int64          `firestore:"every"`
	Status         string         `firestore:"status"`
	NextRun        time.Time      `firestore:"nextRun"`
	RunCount       int64          `firestore:"runCount"`
	ExecutionLimit int64          `firestore:"executionLimit"`
	History        []ExecutionLog `firestore:"history"`
}

// NormalizeLegacySchedule maps the legacy duck-typed schedule shape (string
// type plus optional "every" count) to the canonical tagged variant. The
// mapping happens exactly once, at the migration or API boundary.
func NormalizeLegacySchedule(legacyType string, every int64) Schedule {
	switch legacyType {
	case "", "once", "oneTime":
		return Schedule{Kind: ScheduleOneTime}
	case "hourly":
		return Schedule{Kind: ScheduleInterval, Amount: 1, Unit: UnitHours}
	case "daily":
		return Schedule{Kind: ScheduleInterval, Amount: 1, Unit: UnitDays}
	case "weekly":
		return Schedule{Kind: ScheduleInterval, Amount: 1, Unit: UnitWeeks}
	case "monthly":
		return Schedule{Kind: ScheduleInterval, Amount: 1, Unit: UnitMonths}
	case "yearly":
		return Schedule{Kind: ScheduleInterval, Amount: 1, Unit: UnitYears}
	}

	if every <= 0 {
		every = 1
	}

	if ValidUnit(IntervalUnit(legacyType)) {
		return Schedule{Kind: ScheduleInterval, Amount: every, Unit: IntervalUnit(legacyType)}
	}

	// Unknown legacy shapes degrade to one-time so they cannot loop forever.
	return Schedule{Kind: ScheduleOneTime}
}

// Normalize converts the embedded trigger to the canonical per-document
// representation, preserving its id and run history counters.
func (e *EmbeddedTrigger) Normalize(orgID string) *Trigger {
	status := TriggerStatus(e.Status)

	switch status {
	case TriggerStatusActive, TriggerStatusPaused, TriggerStatusCompleted,
		TriggerStatusFailed, TriggerStatusArchived:
	default:
		status = TriggerStatusActive
	}

	method := e.Method
	if method == "" {
		method = "POST"
	}

	nextRun := e.NextRun
	if status.IsTerminal() {
		nextRun = NeverRuns
	}

	return &Trigger{
		ID:             e.ID,
		OrganizationID: orgID,
		GroupID:        e.GroupID,
		Name:           e.Name,
		URL:            e.URL,
		HTTPMethod:     method,
		Payload:        e.Payload,
		Schedule:       NormalizeLegacySchedule(e.Type, e.Every),
		Status:         status,
		NextRun:        nextRun,
		RunCount:       e.RunCount,
		ExecutionLimit: e.ExecutionLimit,
	}
}

package domain

import "time"

// MaxRecentLogs is the number of execution logs mirrored on the trigger
// document for fast preview. The full history accumulates in the per-trigger
// log subcollection.
const MaxRecentLogs = 5

// MaxResponseBodyLength caps the response body captured on execution logs.
const MaxResponseBodyLength = 1000

type ExecutionStatus string

const (
	ExecutionSuccess ExecutionStatus = "success"
	ExecutionFailed  ExecutionStatus = "failed"
)

type ExecutionMode string

const (
	ModeProduction ExecutionMode = "production"
	ModeTest       ExecutionMode = "test"
)

// ExecutionLog records a single dispatch outcome. Logs are immutable once
// written and append-only per trigger.
type ExecutionLog struct {
	ID             string          `firestore:"id" json:"id"`
	Timestamp      time.Time       `firestore:"timestamp" json:"timestamp"`
	Status         ExecutionStatus `firestore:"status" json:"status"`
	RequestPayload string          `firestore:"requestPayload" json:"requestPayload"`
	ResponseStatus int             `firestore:"responseStatus,omitempty" json:"responseStatus,omitempty"`
	ResponseBody   string          `firestore:"responseBody,omitempty" json:"responseBody,omitempty"`
	Error          string          `firestore:"error,omitempty" json:"error,omitempty"`
	Mode           ExecutionMode   `firestore:"mode" json:"mode"`
}

// PrependLog adds entry as the newest element of recent and drops anything
// beyond the mirror bound.
func PrependLog(recent []ExecutionLog, entry ExecutionLog) []ExecutionLog {
	recent = append([]ExecutionLog{entry}, recent...)
	if len(recent) > MaxRecentLogs {
		recent = recent[:MaxRecentLogs]
	}

	return recent
}

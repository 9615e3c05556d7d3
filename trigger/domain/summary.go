package domain

import "time"

// RunSummary is the aggregate result of one scheduling pass over all
// organizations.
type RunSummary struct {
	Success                bool      `json:"success"`
	OrganizationsProcessed int       `json:"organizationsProcessed"`
	DueTriggersExecuted    int       `json:"dueTriggersExecuted"`
	Timestamp              time.Time `json:"timestamp"`
	OrgLogLines            []string  `json:"orgLogLines"`
}

package service

import (
	"context"

	orgDomain "github.com/triggerkit/scheduled-webhooks/organization/domain"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

// TriggerInput carries the canonical fields of an admin create or update.
// The handlers normalize any legacy schedule shape before building it.
type TriggerInput struct {
	Name              string
	URL               string
	HTTPMethod        string
	Payload           string
	TimeoutMs         int64
	GroupID           string
	Schedule          domain.Schedule
	ExecutionLimit    int64
	ArchiveOnComplete bool
}

// MigrationResult reports what one idempotent migration pass converted.
type MigrationResult struct {
	Migrated       int
	HistoryEntries int
}

//go:generate mockery --name ITriggerService --output ./mocks
type ITriggerService interface {
	RunScheduledTriggers(ctx context.Context) (*domain.RunSummary, error)
	Migrate(ctx context.Context, org *orgDomain.Organization) (*MigrationResult, error)

	CreateTrigger(ctx context.Context, orgID string, input *TriggerInput) (*domain.Trigger, error)
	UpdateTrigger(ctx context.Context, orgID, triggerID string, input *TriggerInput) (*domain.Trigger, error)
	GetTrigger(ctx context.Context, orgID, triggerID string) (*domain.Trigger, error)
	ListTriggers(ctx context.Context, orgID string) ([]*domain.Trigger, error)
	DeleteTrigger(ctx context.Context, orgID, triggerID string) error
	PauseTrigger(ctx context.Context, orgID, triggerID string) error
	ResumeTrigger(ctx context.Context, orgID, triggerID string) error
	TestTrigger(ctx context.Context, orgID, triggerID string) (*domain.ExecutionLog, error)
	GetTriggerLogs(ctx context.Context, orgID, triggerID string, limit int) ([]domain.ExecutionLog, error)
}

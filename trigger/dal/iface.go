package dal

import (
	"context"
	"time"

	orgDomain "github.com/triggerkit/scheduled-webhooks/organization/domain"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

// PassUpdate carries the state transition of a single trigger computed from
// one dispatch result. All updates of one organization pass are committed as
// a single atomic batch together with the usage counters.
type PassUpdate struct {
	TriggerID  string
	Status     domain.TriggerStatus
	NextRun    time.Time
	RunCount   int64
	Log        domain.ExecutionLog
	RecentLogs []domain.ExecutionLog
}

//go:generate mockery --name Triggers --output ./mocks
type Triggers interface {
	Get(ctx context.Context, orgID, triggerID string) (*domain.Trigger, error)
	List(ctx context.Context, orgID string) ([]*domain.Trigger, error)
	GetActiveTriggers(ctx context.Context, orgID string) ([]*domain.Trigger, error)
	Create(ctx context.Context, orgID string, trigger *domain.Trigger) (string, error)
	Update(ctx context.Context, orgID string, trigger *domain.Trigger) error
	Delete(ctx context.Context, orgID, triggerID string) error
	PauseTriggers(ctx context.Context, orgID string, triggerIDs []string) error
	CommitPassResults(ctx context.Context, orgID string, updates []*PassUpdate, usage orgDomain.Usage) error
	AppendTestLog(ctx context.Context, orgID, triggerID string, entry domain.ExecutionLog, recent []domain.ExecutionLog) error
	GetLogs(ctx context.Context, orgID, triggerID string, limit int) ([]domain.ExecutionLog, error)
	GetEmbeddedTriggers(ctx context.Context, orgID string) ([]domain.EmbeddedTrigger, error)
	CommitMigration(ctx context.Context, orgID string, migrated []*domain.Trigger, history map[string][]domain.ExecutionLog) error
}

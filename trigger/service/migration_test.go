package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	orgDomain "github.com/triggerkit/scheduled-webhooks/organization/domain"
	dalMocks "github.com/triggerkit/scheduled-webhooks/trigger/dal/mocks"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	org := &orgDomain.Organization{ID: "org-1"}

	embedded := []domain.EmbeddedTrigger{
		{
			ID:      "legacy-1",
			Name:    "daily report",
			URL:     "https://example.com/report",
			Type:    "daily",
			Status:  "active",
			NextRun: time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC),
			History: []domain.ExecutionLog{{ID: "h-1"}, {ID: "h-2"}},
		},
		{
			ID:      "legacy-2",
			GroupID: "grp-1",
			Name:    "one shot",
			URL:     "https://example.com/once",
			Type:    "once",
			Status:  "completed",
		},
	}

	triggers := dalMocks.NewTriggers(t)
	triggers.On("GetEmbeddedTriggers", ctx, "org-1").Return(embedded, nil)
	triggers.On("CommitMigration", ctx, "org-1",
		mock.MatchedBy(func(migrated []*domain.Trigger) bool {
			if len(migrated) != 2 {
				return false
			}

			first, second := migrated[0], migrated[1]

			return first.ID == "legacy-1" &&
				first.OrganizationID == "org-1" &&
				first.HistoryMigrated &&
				first.Schedule == (domain.Schedule{Kind: domain.ScheduleInterval, Amount: 1, Unit: domain.UnitDays}) &&
				second.ID == "legacy-2" &&
				second.GroupID == "grp-1" &&
				second.Status == domain.TriggerStatusCompleted &&
				second.NextRun.Equal(domain.NeverRuns)
		}),
		mock.MatchedBy(func(history map[string][]domain.ExecutionLog) bool {
			return len(history) == 1 && len(history["legacy-1"]) == 2
		}),
	).Return(nil)

	s := &TriggerService{
		loggerProvider: testLoggerProvider(),
		triggers:       triggers,
	}

	result, err := s.Migrate(ctx, org)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Migrated)
	assert.Equal(t, 2, result.HistoryEntries)
}

func TestMigrateNothingEmbedded(t *testing.T) {
	ctx := context.Background()

	triggers := dalMocks.NewTriggers(t)
	triggers.On("GetEmbeddedTriggers", ctx, "org-1").Return(nil, nil)

	s := &TriggerService{
		loggerProvider: testLoggerProvider(),
		triggers:       triggers,
	}

	result, err := s.Migrate(ctx, &orgDomain.Organization{ID: "org-1"})

	require.NoError(t, err)
	assert.Zero(t, result.Migrated)
	assert.Zero(t, result.HistoryEntries)

	triggers.AssertNotCalled(t, "CommitMigration", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

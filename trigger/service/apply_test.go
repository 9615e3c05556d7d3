package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/triggerkit/scheduled-webhooks/trigger/dispatch"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

func TestExecutionLogFrom(t *testing.T) {
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
	trigger := &domain.Trigger{ID: "t-1", Payload: `{"k":"v"}`}

	t.Run("delivered 2xx is a success", func(t *testing.T) {
		entry := executionLogFrom(trigger, &dispatch.Result{Delivered: true, Status: 201, Body: "created"}, domain.ModeProduction, now)

		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, domain.ExecutionSuccess, entry.Status)
		assert.Equal(t, 201, entry.ResponseStatus)
		assert.Equal(t, "created", entry.ResponseBody)
		assert.Equal(t, `{"k":"v"}`, entry.RequestPayload)
		assert.Empty(t, entry.Error)
	})

	t.Run("delivered 5xx is a failure with status recorded", func(t *testing.T) {
		entry := executionLogFrom(trigger, &dispatch.Result{Delivered: true, Status: 503}, domain.ModeProduction, now)

		assert.Equal(t, domain.ExecutionFailed, entry.Status)
		assert.Equal(t, 503, entry.ResponseStatus)
	})

	t.Run("network failure records the error without a status", func(t *testing.T) {
		entry := executionLogFrom(trigger, &dispatch.Result{Err: "dial tcp: connection refused"}, domain.ModeProduction, now)

		assert.Equal(t, domain.ExecutionFailed, entry.Status)
		assert.Zero(t, entry.ResponseStatus)
		assert.Equal(t, "dial tcp: connection refused", entry.Error)
	})

	t.Run("response body is truncated", func(t *testing.T) {
		body := strings.Repeat("x", 5000)

		entry := executionLogFrom(trigger, &dispatch.Result{Delivered: true, Status: 200, Body: body}, domain.ModeProduction, now)

		assert.Len(t, entry.ResponseBody, domain.MaxResponseBodyLength)
	})

	t.Run("test mode is tagged", func(t *testing.T) {
		entry := executionLogFrom(trigger, &dispatch.Result{Delivered: true, Status: 200}, domain.ModeTest, now)

		assert.Equal(t, domain.ModeTest, entry.Mode)
	})
}

func TestBuildPassUpdate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	s := &TriggerService{loggerProvider: testLoggerProvider()}

	ok := &dispatch.Result{Delivered: true, Status: 200}
	serverError := &dispatch.Result{Delivered: true, Status: 500}

	tests := []struct {
		name        string
		trigger     domain.Trigger
		result      *dispatch.Result
		wantStatus  domain.TriggerStatus
		wantNextRun time.Time
	}{
		{
			name: "recurring success stays active and advances",
			trigger: domain.Trigger{
				ID:       "t-1",
				Schedule: domain.Schedule{Kind: domain.ScheduleInterval, Amount: 1, Unit: domain.UnitHours},
				NextRun:  now.Add(-time.Hour),
			},
			result:      ok,
			wantStatus:  domain.TriggerStatusActive,
			wantNextRun: now.Add(time.Hour),
		},
		{
			name: "recurring failure also stays active",
			trigger: domain.Trigger{
				ID:       "t-1",
				Schedule: domain.Schedule{Kind: domain.ScheduleInterval, Amount: 1, Unit: domain.UnitHours},
				NextRun:  now.Add(-time.Hour),
			},
			result:      serverError,
			wantStatus:  domain.TriggerStatusActive,
			wantNextRun: now.Add(time.Hour),
		},
		{
			name: "one time success completes",
			trigger: domain.Trigger{
				ID:       "t-1",
				Schedule: domain.Schedule{Kind: domain.ScheduleOneTime},
			},
			result:      ok,
			wantStatus:  domain.TriggerStatusCompleted,
			wantNextRun: domain.NeverRuns,
		},
		{
			name: "one time success archives when flagged",
			trigger: domain.Trigger{
				ID:                "t-1",
				Schedule:          domain.Schedule{Kind: domain.ScheduleOneTime},
				ArchiveOnComplete: true,
			},
			result:      ok,
			wantStatus:  domain.TriggerStatusArchived,
			wantNextRun: domain.NeverRuns,
		},
		{
			name: "one time failure fails",
			trigger: domain.Trigger{
				ID:       "t-1",
				Schedule: domain.Schedule{Kind: domain.ScheduleOneTime},
			},
			result:      serverError,
			wantStatus:  domain.TriggerStatusFailed,
			wantNextRun: domain.NeverRuns,
		},
		{
			name: "execution limit wins over the schedule even on failure",
			trigger: domain.Trigger{
				ID:             "t-1",
				Schedule:       domain.Schedule{Kind: domain.ScheduleInterval, Amount: 1, Unit: domain.UnitHours},
				RunCount:       4,
				ExecutionLimit: 5,
				NextRun:        now.Add(-time.Hour),
			},
			result:      serverError,
			wantStatus:  domain.TriggerStatusCompleted,
			wantNextRun: domain.NeverRuns,
		},
		{
			name: "malformed interval parks on the sentinel",
			trigger: domain.Trigger{
				ID:       "t-1",
				Schedule: domain.Schedule{Kind: domain.ScheduleInterval, Unit: domain.UnitHours},
				NextRun:  now.Add(-time.Hour),
			},
			result:      ok,
			wantStatus:  domain.TriggerStatusActive,
			wantNextRun: domain.NeverRuns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := s.buildPassUpdate(ctx, &tt.trigger, tt.result, time.UTC, now)

			assert.Equal(t, tt.trigger.RunCount+1, update.RunCount)
			assert.Equal(t, tt.wantStatus, update.Status)
			assert.True(t, update.NextRun.Equal(tt.wantNextRun), "got %s, want %s", update.NextRun, tt.wantNextRun)
			assert.Len(t, update.RecentLogs, 1)
			assert.Equal(t, update.Log.ID, update.RecentLogs[0].ID)
		})
	}
}

func TestBuildPassUpdateRecentLogsBounded(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	s := &TriggerService{loggerProvider: testLoggerProvider()}

	trigger := domain.Trigger{
		ID:       "t-1",
		Schedule: domain.Schedule{Kind: domain.ScheduleInterval, Amount: 1, Unit: domain.UnitHours},
		NextRun:  now.Add(-time.Hour),
	}

	for i := 0; i < domain.MaxRecentLogs; i++ {
		trigger.RecentLogs = append(trigger.RecentLogs, domain.ExecutionLog{ID: "old"})
	}

	update := s.buildPassUpdate(ctx, &trigger, &dispatch.Result{Delivered: true, Status: 200}, time.UTC, now)

	assert.Len(t, update.RecentLogs, domain.MaxRecentLogs)
	assert.Equal(t, update.Log.ID, update.RecentLogs[0].ID)
	assert.Equal(t, "old", update.RecentLogs[domain.MaxRecentLogs-1].ID)
}

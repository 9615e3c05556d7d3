package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orgDomain "github.com/triggerkit/scheduled-webhooks/organization/domain"
	"github.com/triggerkit/scheduled-webhooks/plans"
	dalMocks "github.com/triggerkit/scheduled-webhooks/trigger/dal/mocks"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

func TestRollUsage(t *testing.T) {
	now := time.Date(2026, time.February, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		usage     orgDomain.Usage
		wantReset bool
	}{
		{
			name: "window still open",
			usage: orgDomain.Usage{
				ExecutionsThisMonth: 42,
				BillingCycleStart:   now.AddDate(0, 0, -20),
				DailyExecutions:     map[string]int64{"2026-02-10": 42},
			},
		},
		{
			name: "window older than one month resets",
			usage: orgDomain.Usage{
				ExecutionsThisMonth: 42,
				BillingCycleStart:   now.AddDate(0, -2, 0),
				DailyExecutions:     map[string]int64{"2025-12-20": 42},
			},
			wantReset: true,
		},
		{
			name:      "zero cycle start opens a window",
			usage:     orgDomain.Usage{ExecutionsThisMonth: 7},
			wantReset: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reset := rollUsage(tt.usage, now)

			assert.Equal(t, tt.wantReset, reset)

			if tt.wantReset {
				assert.Zero(t, got.ExecutionsThisMonth)
				assert.Empty(t, got.DailyExecutions)
				assert.True(t, got.BillingCycleStart.Equal(now))
			} else {
				assert.Equal(t, tt.usage, got)
			}
		})
	}
}

func TestValidateInterval(t *testing.T) {
	free := plans.LimitsFor(plans.PlanFree)
	business := plans.LimitsFor(plans.PlanBusiness)

	tests := []struct {
		name     string
		schedule domain.Schedule
		limits   plans.Limits
		wantErr  error
	}{
		{
			name:     "one time is never interval checked",
			schedule: domain.Schedule{Kind: domain.ScheduleOneTime},
			limits:   free,
		},
		{
			name:     "hourly passes the free plan",
			schedule: domain.Schedule{Kind: domain.ScheduleInterval, Amount: 1, Unit: domain.UnitHours},
			limits:   free,
		},
		{
			name:     "thirty minutes rejected on free",
			schedule: domain.Schedule{Kind: domain.ScheduleInterval, Amount: 30, Unit: domain.UnitMinutes},
			limits:   free,
			wantErr:  ErrInvalidInterval,
		},
		{
			name:     "every minute passes business",
			schedule: domain.Schedule{Kind: domain.ScheduleInterval, Amount: 1, Unit: domain.UnitMinutes},
			limits:   business,
		},
		{
			name:     "thirty seconds rejected on business",
			schedule: domain.Schedule{Kind: domain.ScheduleInterval, Amount: 30, Unit: domain.UnitSeconds},
			limits:   business,
			wantErr:  ErrInvalidInterval,
		},
		{
			name:     "months use the fixed thirty day approximation",
			schedule: domain.Schedule{Kind: domain.ScheduleInterval, Amount: 1, Unit: domain.UnitMonths},
			limits:   free,
		},
		{
			name:     "missing amount is malformed",
			schedule: domain.Schedule{Kind: domain.ScheduleInterval, Unit: domain.UnitHours},
			limits:   free,
			wantErr:  ErrMalformedSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInterval(tt.schedule, tt.limits)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChargeUsage(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	// 03:00 UTC on the 15th is still the 14th in Chicago
	now := time.Date(2026, time.February, 15, 3, 0, 0, 0, time.UTC)

	usage := chargeUsage(orgDomain.Usage{ExecutionsThisMonth: 10}, 3, now, chicago)

	assert.Equal(t, int64(13), usage.ExecutionsThisMonth)
	assert.Equal(t, int64(3), usage.DailyExecutions["2026-02-14"])

	usage = chargeUsage(usage, 2, now, chicago)

	assert.Equal(t, int64(15), usage.ExecutionsThisMonth)
	assert.Equal(t, int64(5), usage.DailyExecutions["2026-02-14"])
}

func TestEnforceTriggerCap(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
	free := plans.LimitsFor(plans.PlanFree)

	active := make([]*domain.Trigger, 7)
	for i := range active {
		active[i] = &domain.Trigger{
			ID:      string(rune('a' + i)),
			Status:  domain.TriggerStatusActive,
			NextRun: now.Add(time.Duration(i) * time.Minute),
		}
	}

	// the trigger with no next run must sort last and be paused first
	active[3].NextRun = time.Time{}

	triggers := dalMocks.NewTriggers(t)
	triggers.On("PauseTriggers", ctx, "org-1", []string{"g", "d"}).Return(nil)

	s := &TriggerService{
		loggerProvider: testLoggerProvider(),
		triggers:       triggers,
	}

	kept, err := s.enforceTriggerCap(ctx, "org-1", active, free)

	require.NoError(t, err)
	require.Len(t, kept, free.MaxTriggers)

	keptIDs := make([]string, len(kept))
	for i, tr := range kept {
		keptIDs[i] = tr.ID
	}

	assert.Equal(t, []string{"a", "b", "c", "e", "f"}, keptIDs)
}

func TestEnforceTriggerCapUnderCap(t *testing.T) {
	ctx := context.Background()

	active := []*domain.Trigger{{ID: "a"}, {ID: "b"}}

	s := &TriggerService{loggerProvider: testLoggerProvider()}

	kept, err := s.enforceTriggerCap(ctx, "org-1", active, plans.LimitsFor(plans.PlanFree))

	require.NoError(t, err)
	assert.Equal(t, active, kept)
}

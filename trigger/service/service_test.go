package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/triggerkit/scheduled-webhooks/logger"
	loggerMocks "github.com/triggerkit/scheduled-webhooks/logger/mocks"
	orgMocks "github.com/triggerkit/scheduled-webhooks/organization/dal/mocks"
	orgDomain "github.com/triggerkit/scheduled-webhooks/organization/domain"
	"github.com/triggerkit/scheduled-webhooks/trigger/dal"
	dalMocks "github.com/triggerkit/scheduled-webhooks/trigger/dal/mocks"
	"github.com/triggerkit/scheduled-webhooks/trigger/dispatch"
	dispatchMocks "github.com/triggerkit/scheduled-webhooks/trigger/dispatch/mocks"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

func testLoggerProvider() logger.Provider {
	l := &loggerMocks.ILogger{}

	for _, method := range []string{"Debugf", "Infof", "Warningf", "Errorf"} {
		args := []interface{}{}
		for i := 0; i < 6; i++ {
			args = append(args, mock.Anything)
			l.On(method, args...).Maybe()
		}
	}

	return func(ctx context.Context) logger.ILogger {
		return l
	}
}

func newTestService(t *testing.T, now time.Time) (*TriggerService, *orgMocks.Organizations, *dalMocks.Triggers, *dispatchMocks.Dispatcher) {
	orgs := orgMocks.NewOrganizations(t)
	triggers := dalMocks.NewTriggers(t)
	dispatcher := dispatchMocks.NewDispatcher(t)

	s := &TriggerService{
		loggerProvider: testLoggerProvider(),
		orgs:           orgs,
		triggers:       triggers,
		dispatcher:     dispatcher,
		machine:        newDriverMachine(),
		now:            func() time.Time { return now },
	}

	return s, orgs, triggers, dispatcher
}

func freshUsage(now time.Time) orgDomain.Usage {
	return orgDomain.Usage{
		BillingCycleStart: now.AddDate(0, 0, -1),
		DailyExecutions:   map[string]int64{},
	}
}

func TestRunScheduledTriggersRecurringSuccess(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	s, orgs, triggers, dispatcher := newTestService(t, now)

	org := &orgDomain.Organization{ID: "org-1", PlanID: "business", Usage: freshUsage(now)}

	trigger := &domain.Trigger{
		ID:       "t-1",
		Name:     "hourly ping",
		URL:      "https://example.com/hook",
		Schedule: domain.Schedule{Kind: domain.ScheduleInterval, Amount: 1, Unit: domain.UnitHours},
		Status:   domain.TriggerStatusActive,
		NextRun:  now.Add(-2 * time.Hour),
	}

	orgs.On("GetOrganizations", ctx).Return([]*orgDomain.Organization{org}, nil)
	triggers.On("GetEmbeddedTriggers", ctx, "org-1").Return(nil, nil)
	triggers.On("GetActiveTriggers", ctx, "org-1").Return([]*domain.Trigger{trigger}, nil)

	dispatcher.On("Execute", mock.Anything, trigger).
		Return(&dispatch.Result{Delivered: true, Status: 200, Body: "ok"})

	triggers.On("CommitPassResults", ctx, "org-1",
		mock.MatchedBy(func(updates []*dal.PassUpdate) bool {
			if len(updates) != 1 {
				return false
			}

			u := updates[0]

			return u.TriggerID == "t-1" &&
				u.Status == domain.TriggerStatusActive &&
				u.RunCount == 1 &&
				u.NextRun.Equal(now.Add(time.Hour)) &&
				u.Log.Status == domain.ExecutionSuccess &&
				u.Log.ResponseStatus == 200 &&
				len(u.RecentLogs) == 1
		}),
		mock.MatchedBy(func(usage orgDomain.Usage) bool {
			return usage.ExecutionsThisMonth == 1 &&
				usage.DailyExecutions["2026-02-01"] == 1
		}),
	).Return(nil)

	summary, err := s.RunScheduledTriggers(ctx)

	require.NoError(t, err)
	assert.True(t, summary.Success)
	assert.Equal(t, 1, summary.OrganizationsProcessed)
	assert.Equal(t, 1, summary.DueTriggersExecuted)
}

func TestRunScheduledTriggersOneTimeFailure(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	s, orgs, triggers, dispatcher := newTestService(t, now)

	org := &orgDomain.Organization{ID: "org-1", Usage: freshUsage(now)}

	trigger := &domain.Trigger{
		ID:       "t-1",
		Schedule: domain.Schedule{Kind: domain.ScheduleOneTime},
		Status:   domain.TriggerStatusActive,
		NextRun:  now.Add(-time.Minute),
	}

	orgs.On("GetOrganizations", ctx).Return([]*orgDomain.Organization{org}, nil)
	triggers.On("GetEmbeddedTriggers", ctx, "org-1").Return(nil, nil)
	triggers.On("GetActiveTriggers", ctx, "org-1").Return([]*domain.Trigger{trigger}, nil)

	dispatcher.On("Execute", mock.Anything, trigger).
		Return(&dispatch.Result{Delivered: true, Status: 500, Body: "boom"})

	triggers.On("CommitPassResults", ctx, "org-1",
		mock.MatchedBy(func(updates []*dal.PassUpdate) bool {
			u := updates[0]

			return u.Status == domain.TriggerStatusFailed &&
				u.RunCount == 1 &&
				u.NextRun.Equal(domain.NeverRuns) &&
				u.Log.Status == domain.ExecutionFailed &&
				u.Log.ResponseStatus == 500
		}),
		mock.Anything,
	).Return(nil)

	summary, err := s.RunScheduledTriggers(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.DueTriggersExecuted)
}

func TestRunScheduledTriggersMonthlyCapSkipsOrganization(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	s, orgs, triggers, _ := newTestService(t, now)

	usage := freshUsage(now)
	usage.ExecutionsThisMonth = 100

	org := &orgDomain.Organization{ID: "org-1", PlanID: "free", Usage: usage}

	orgs.On("GetOrganizations", ctx).Return([]*orgDomain.Organization{org}, nil)
	triggers.On("GetEmbeddedTriggers", ctx, "org-1").Return(nil, nil)

	summary, err := s.RunScheduledTriggers(ctx)

	require.NoError(t, err)
	assert.True(t, summary.Success)
	assert.Equal(t, 1, summary.OrganizationsProcessed)
	assert.Zero(t, summary.DueTriggersExecuted)
	require.Len(t, summary.OrgLogLines, 1)
	assert.Contains(t, summary.OrgLogLines[0], "cap reached")

	triggers.AssertNotCalled(t, "GetActiveTriggers", mock.Anything, mock.Anything)
}

func TestRunScheduledTriggersExpiredWindowResetsBeforeCapCheck(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	s, orgs, triggers, _ := newTestService(t, now)

	// over the cap, but the window expired: the lazy reset reopens the budget
	org := &orgDomain.Organization{
		ID:     "org-1",
		PlanID: "free",
		Usage: orgDomain.Usage{
			ExecutionsThisMonth: 100,
			BillingCycleStart:   now.AddDate(0, -2, 0),
		},
	}

	orgs.On("GetOrganizations", ctx).Return([]*orgDomain.Organization{org}, nil)
	triggers.On("GetEmbeddedTriggers", ctx, "org-1").Return(nil, nil)
	triggers.On("GetActiveTriggers", ctx, "org-1").Return(nil, nil)

	orgs.On("UpdateUsage", ctx, "org-1",
		mock.MatchedBy(func(usage orgDomain.Usage) bool {
			return usage.ExecutionsThisMonth == 0 && usage.BillingCycleStart.Equal(now)
		}),
	).Return(nil)

	summary, err := s.RunScheduledTriggers(ctx)

	require.NoError(t, err)
	assert.True(t, summary.Success)
	assert.Zero(t, summary.DueTriggersExecuted)
}

func TestRunScheduledTriggersOrgFailureDoesNotAbortOthers(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	s, orgs, triggers, _ := newTestService(t, now)

	broken := &orgDomain.Organization{ID: "org-broken", Usage: freshUsage(now)}
	healthy := &orgDomain.Organization{ID: "org-healthy", Usage: freshUsage(now)}

	orgs.On("GetOrganizations", ctx).Return([]*orgDomain.Organization{broken, healthy}, nil)

	triggers.On("GetEmbeddedTriggers", ctx, "org-broken").Return(nil, errors.New("firestore unavailable"))

	triggers.On("GetEmbeddedTriggers", ctx, "org-healthy").Return(nil, nil)
	triggers.On("GetActiveTriggers", ctx, "org-healthy").Return(nil, nil)

	summary, err := s.RunScheduledTriggers(ctx)

	require.NoError(t, err)
	assert.False(t, summary.Success)
	assert.Equal(t, 1, summary.OrganizationsProcessed)
	require.Len(t, summary.OrgLogLines, 1)
	assert.Contains(t, summary.OrgLogLines[0], "org-broken")
}

func TestRunScheduledTriggersSkipsNotDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	s, orgs, triggers, _ := newTestService(t, now)

	org := &orgDomain.Organization{ID: "org-1", Usage: freshUsage(now)}

	future := &domain.Trigger{
		ID:       "t-future",
		Schedule: domain.Schedule{Kind: domain.ScheduleInterval, Amount: 1, Unit: domain.UnitHours},
		Status:   domain.TriggerStatusActive,
		NextRun:  now.Add(30 * time.Minute),
	}

	orgs.On("GetOrganizations", ctx).Return([]*orgDomain.Organization{org}, nil)
	triggers.On("GetEmbeddedTriggers", ctx, "org-1").Return(nil, nil)
	triggers.On("GetActiveTriggers", ctx, "org-1").Return([]*domain.Trigger{future}, nil)

	summary, err := s.RunScheduledTriggers(ctx)

	require.NoError(t, err)
	assert.Zero(t, summary.DueTriggersExecuted)
	triggers.AssertNotCalled(t, "CommitPassResults", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRunScheduledTriggersMachineReturnsToIdle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	s, orgs, _, _ := newTestService(t, now)

	orgs.On("GetOrganizations", ctx).Return(nil, nil).Twice()

	_, err := s.RunScheduledTriggers(ctx)
	require.NoError(t, err)

	// a second pass is accepted because the first one finished
	_, err = s.RunScheduledTriggers(ctx)
	require.NoError(t, err)
}

func TestDispatchAllAlignsResults(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

	s, _, _, dispatcher := newTestService(t, now)

	due := []*domain.Trigger{
		{ID: "t-1"},
		{ID: "t-2"},
		{ID: "t-3"},
	}

	dispatcher.On("Execute", mock.Anything, due[0]).Return(&dispatch.Result{Delivered: true, Status: 200})
	dispatcher.On("Execute", mock.Anything, due[1]).Return(&dispatch.Result{Err: "connection refused"})
	dispatcher.On("Execute", mock.Anything, due[2]).Return(&dispatch.Result{Delivered: true, Status: 404})

	results := s.dispatchAll(ctx, due)

	require.Len(t, results, 3)
	assert.True(t, results[0].Success())
	assert.False(t, results[1].Delivered)
	assert.Equal(t, 404, results[2].Status)
}

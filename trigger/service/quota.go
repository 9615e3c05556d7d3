package service

import (
	"context"
	"sort"
	"time"

	orgDomain "github.com/triggerkit/scheduled-webhooks/organization/domain"
	"github.com/triggerkit/scheduled-webhooks/plans"
	"github.com/triggerkit/scheduled-webhooks/times"
	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

// minutes-per-unit approximations for the min-interval check. Months and
// years use fixed 30/365 day conversions; callers must not assume calendar
// precision here.
var unitMinutes = map[domain.IntervalUnit]float64{
	domain.UnitSeconds: 1.0 / 60,
	domain.UnitMinutes: 1,
	domain.UnitHours:   60,
	domain.UnitDays:    24 * 60,
	domain.UnitWeeks:   7 * 24 * 60,
	domain.UnitMonths:  30 * 24 * 60,
	domain.UnitYears:   365 * 24 * 60,
}

// rollUsage lazily opens a new usage window once the billing cycle start is
// more than one month old. It returns the (possibly reset) usage and whether
// a reset happened; the caller persists the reset as part of its batch.
func rollUsage(usage orgDomain.Usage, now time.Time) (orgDomain.Usage, bool) {
	if usage.BillingCycleStart.IsZero() || times.OlderThanOneMonth(usage.BillingCycleStart, now) {
		return orgDomain.Usage{
			ExecutionsThisMonth: 0,
			BillingCycleStart:   now,
			DailyExecutions:     map[string]int64{},
		}, true
	}

	return usage, false
}

// validateInterval rejects recurring schedules tighter than the plan's
// minimum interval. Enforced at create and update time only; the periodic
// pass never re-checks it.
func validateInterval(schedule domain.Schedule, limits plans.Limits) error {
	if schedule.Kind != domain.ScheduleInterval {
		return nil
	}

	if schedule.Amount <= 0 || !domain.ValidUnit(schedule.Unit) {
		return ErrMalformedSchedule
	}

	if float64(schedule.Amount)*unitMinutes[schedule.Unit] < float64(limits.MinIntervalMinutes) {
		return ErrInvalidInterval
	}

	return nil
}

// enforceTriggerCap pauses the active triggers beyond the plan's cap, keeping
// the ones with the earliest next run. The pause is persisted before due
// selection runs so an over-cap trigger can never fire in the same pass.
// Triggers without a next run sort last. The sort is stable and the input
// order comes from a query ordered by document id, so ties resolve the same
// way across runs.
func (s *TriggerService) enforceTriggerCap(ctx context.Context, orgID string, active []*domain.Trigger, limits plans.Limits) ([]*domain.Trigger, error) {
	if len(active) <= limits.MaxTriggers {
		return active, nil
	}

	sorted := make([]*domain.Trigger, len(active))
	copy(sorted, active)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if a.NextRun.IsZero() != b.NextRun.IsZero() {
			return !a.NextRun.IsZero()
		}

		return a.NextRun.Before(b.NextRun)
	})

	kept := sorted[:limits.MaxTriggers]
	excess := sorted[limits.MaxTriggers:]

	ids := make([]string, len(excess))
	for i, t := range excess {
		ids[i] = t.ID
		t.Status = domain.TriggerStatusPaused
	}

	if err := s.triggers.PauseTriggers(ctx, orgID, ids); err != nil {
		return nil, err
	}

	s.loggerProvider(ctx).Infof("org %s: paused %d triggers over plan cap of %d", orgID, len(excess), limits.MaxTriggers)

	return kept, nil
}

// chargeUsage adds one pass's executed-trigger count to the monthly and
// per-day counters, keyed by the organization's local calendar day.
func chargeUsage(usage orgDomain.Usage, executed int, now time.Time, loc *time.Location) orgDomain.Usage {
	if usage.DailyExecutions == nil {
		usage.DailyExecutions = map[string]int64{}
	}

	usage.ExecutionsThisMonth += int64(executed)
	usage.DailyExecutions[times.DateKey(now, loc)] += int64(executed)

	return usage
}

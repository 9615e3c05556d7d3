package service

import (
	"time"

	"github.com/triggerkit/scheduled-webhooks/trigger/domain"
)

// NextRun computes the next due instant of a schedule. The arithmetic is
// calendar-aware in the organization's timezone: "+1 month" crosses
// month-length boundaries correctly and daylight-saving transitions shift
// wall-clock time rather than absolute offsets.
//
// When the computed instant is not in the future (the scheduler was down for
// longer than one interval) the interval is added repeatedly until the result
// is strictly after now; iterations are bounded by downtime divided by the
// interval.
//
// One-time schedules return the far-future sentinel; they are completed after
// their single attempt and must not be rescheduled. A malformed interval also
// returns the sentinel, with ErrMalformedSchedule so the caller can log it.
func NextRun(schedule domain.Schedule, loc *time.Location, lastScheduledRun, now time.Time) (time.Time, error) {
	if schedule.Kind != domain.ScheduleInterval {
		return domain.NeverRuns, nil
	}

	if schedule.Amount <= 0 || !domain.ValidUnit(schedule.Unit) {
		return domain.NeverRuns, ErrMalformedSchedule
	}

	if loc == nil {
		loc = time.UTC
	}

	anchor := lastScheduledRun
	if anchor.IsZero() {
		anchor = now
	}

	next := addInterval(anchor.In(loc), schedule.Amount, schedule.Unit)
	for !next.After(now) {
		next = addInterval(next, schedule.Amount, schedule.Unit)
	}

	return next.UTC(), nil
}

func addInterval(t time.Time, amount int64, unit domain.IntervalUnit) time.Time {
	switch unit {
	case domain.UnitSeconds:
		return t.Add(time.Duration(amount) * time.Second)
	case domain.UnitMinutes:
		return t.Add(time.Duration(amount) * time.Minute)
	case domain.UnitHours:
		return t.Add(time.Duration(amount) * time.Hour)
	case domain.UnitDays:
		return t.AddDate(0, 0, int(amount))
	case domain.UnitWeeks:
		return t.AddDate(0, 0, 7*int(amount))
	case domain.UnitMonths:
		return t.AddDate(0, int(amount), 0)
	case domain.UnitYears:
		return t.AddDate(int(amount), 0, 0)
	default:
		return t
	}
}

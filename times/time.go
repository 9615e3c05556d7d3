package times

import "time"

const (
	YearMonthDayLayout = "2006-01-02"
	YearMonthLayout    = "2006-01"
)

const (
	DayDuration  = 24 * time.Hour
	WeekDuration = 7 * DayDuration
)

// CurrentDayUTC returns the current day in the UTC time zone.
func CurrentDayUTC() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// DateKey formats the given instant as a calendar day string in the
// provided location.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc).Format(YearMonthDayLayout)
}

// OlderThanOneMonth reports whether t is more than one calendar month
// before now.
func OlderThanOneMonth(t, now time.Time) bool {
	return t.AddDate(0, 1, 0).Before(now)
}

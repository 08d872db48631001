package domain

import "time"

// QuickPeriod is a named date-range shortcut. The literals are part of the
// API contract and are matched case-sensitively.
type QuickPeriod string

const (
	PeriodThisWeek  QuickPeriod = "This week"
	PeriodLastWeek  QuickPeriod = "Last week"
	PeriodThisMonth QuickPeriod = "This month"
	PeriodLastMonth QuickPeriod = "Last month"
	PeriodCustom    QuickPeriod = "Custom"
)

// ValidQuickPeriod reports whether p is a member of the closed period set.
func ValidQuickPeriod(p QuickPeriod) bool {
	switch p {
	case PeriodThisWeek, PeriodLastWeek, PeriodThisMonth, PeriodLastMonth, PeriodCustom:
		return true
	}
	return false
}

// TimeRange is a half-open instant interval [Start, End) in UTC.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the half-open interval.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// IsEmpty reports whether the interval matches no instants. A range whose end
// resolves before its start is empty by contract, not an error.
func (r TimeRange) IsEmpty() bool {
	return !r.End.After(r.Start)
}

// endOfDay is the last representable instant of the civil day at microsecond
// granularity (23:59:59.999999), matching the store's timestamp resolution.
func endOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day+1, 0, 0, 0, 0, loc).Add(-time.Microsecond)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ResolveQuickPeriod turns a named period and a reference "now" into a concrete
// UTC interval. The calendar math runs in loc, the fixed report zone; weeks run
// Sunday through Saturday. PeriodCustom has no implicit bounds and resolves to
// the zero range; use CustomRange for explicit endpoints.
func ResolveQuickPeriod(p QuickPeriod, now time.Time, loc *time.Location) TimeRange {
	local := now.In(loc)
	today := startOfDay(local)

	switch p {
	case PeriodThisWeek:
		// Sunday on or before today; time.Weekday numbers Sunday as 0.
		sunday := today.AddDate(0, 0, -int(today.Weekday()))
		end := endOfDay(sunday.Year(), sunday.Month(), sunday.Day()+6, loc)
		return TimeRange{Start: sunday.UTC(), End: end.UTC()}

	case PeriodLastWeek:
		sunday := today.AddDate(0, 0, -int(today.Weekday())-7)
		end := endOfDay(sunday.Year(), sunday.Month(), sunday.Day()+6, loc)
		return TimeRange{Start: sunday.UTC(), End: end.UTC()}

	case PeriodThisMonth:
		first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		end := endOfDay(local.Year(), local.Month(), local.Day(), loc)
		return TimeRange{Start: first.UTC(), End: end.UTC()}

	case PeriodLastMonth:
		firstThis := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		lastMonthEnd := firstThis.AddDate(0, 0, -1)
		start := time.Date(lastMonthEnd.Year(), lastMonthEnd.Month(), 1, 0, 0, 0, 0, loc)
		end := endOfDay(lastMonthEnd.Year(), lastMonthEnd.Month(), lastMonthEnd.Day(), loc)
		return TimeRange{Start: start.UTC(), End: end.UTC()}
	}

	return TimeRange{}
}

// CustomRange combines explicit local civil endpoints into a UTC interval.
// Both endpoints are interpreted in loc. A reversed range is returned as-is;
// it is empty and matches nothing.
func CustomRange(start, end time.Time, loc *time.Location) TimeRange {
	s := time.Date(start.Year(), start.Month(), start.Day(), start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), loc)
	e := time.Date(end.Year(), end.Month(), end.Day(), end.Hour(), end.Minute(), end.Second(), end.Nanosecond(), loc)
	return TimeRange{Start: s.UTC(), End: e.UTC()}
}

// DefaultStartOfDay is the time-of-day default for a custom "from" endpoint
// given as a bare date: midnight in loc.
func DefaultStartOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// DefaultEndOfDay is the time-of-day default for a custom "to" endpoint given
// as a bare date: 23:59:59.999999 in loc.
func DefaultEndOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	return endOfDay(year, month, day, loc)
}

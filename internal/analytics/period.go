package analytics

import (
	"errors"
	"time"
)

// ErrInvalidPeriod is returned when an unrecognized period name is passed to
// ResolvePeriod. Callers should reject the request rather than fall back.
var ErrInvalidPeriod = errors.New("invalid period name")

// Recognized period names, matching the labels the dashboards expose.
const (
	PeriodAllTime     = "All Time"
	PeriodLast7Days   = "Last 7 Days"
	PeriodLast30Days  = "Last 30 Days"
	PeriodThisMonth   = "This Month"
	PeriodLastMonth   = "Last Month"
	PeriodThisQuarter = "This Quarter"
	PeriodLastQuarter = "Last Quarter"
	PeriodThisYear    = "This Year"
	PeriodLastYear    = "Last Year"
	PeriodCustomRange = "Custom Range"
)

// PeriodNames lists every name ResolvePeriod accepts, in display order.
var PeriodNames = []string{
	PeriodAllTime,
	PeriodLast7Days,
	PeriodLast30Days,
	PeriodThisMonth,
	PeriodLastMonth,
	PeriodThisQuarter,
	PeriodLastQuarter,
	PeriodThisYear,
	PeriodLastYear,
	PeriodCustomRange,
}

// DateRange is an inclusive day range. A nil bound means unbounded on that
// side; All Time resolves to both bounds nil.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// PeriodQuery names a period and, for Custom Range only, carries the
// caller-supplied bounds.
type PeriodQuery struct {
	Name  string
	Start *time.Time
	End   *time.Time
}

// ResolvePeriod maps a named relative period to a concrete date range,
// anchored at reference (normally the newest created_at in the dataset).
// Custom Range bounds are returned unchanged, even when reversed; an empty
// range is the caller's decision to handle.
func ResolvePeriod(q PeriodQuery, reference time.Time) (DateRange, error) {
	ref := dateOf(reference)

	switch q.Name {
	case PeriodAllTime:
		return DateRange{}, nil
	case PeriodLast7Days:
		return rangeOf(ref.AddDate(0, 0, -6), ref), nil
	case PeriodLast30Days:
		return rangeOf(ref.AddDate(0, 0, -29), ref), nil
	case PeriodThisMonth:
		return rangeOf(firstOfMonth(ref), ref), nil
	case PeriodLastMonth:
		end := firstOfMonth(ref).AddDate(0, 0, -1)
		return rangeOf(firstOfMonth(end), end), nil
	case PeriodThisQuarter:
		return rangeOf(firstOfQuarter(ref), ref), nil
	case PeriodLastQuarter:
		// Step back one day from this quarter's start, then re-derive that
		// day's quarter. Rolls Q1 into the previous year's Q4.
		end := firstOfQuarter(ref).AddDate(0, 0, -1)
		return rangeOf(firstOfQuarter(end), end), nil
	case PeriodThisYear:
		return rangeOf(time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, time.UTC), ref), nil
	case PeriodLastYear:
		start := time.Date(ref.Year()-1, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(ref.Year()-1, 12, 31, 0, 0, 0, 0, time.UTC)
		return rangeOf(start, end), nil
	case PeriodCustomRange:
		return DateRange{Start: q.Start, End: q.End}, nil
	}
	return DateRange{}, ErrInvalidPeriod
}

// Contains reports whether t's calendar day falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := dateOf(t)
	if r.Start != nil && d.Before(dateOf(*r.Start)) {
		return false
	}
	if r.End != nil && d.After(dateOf(*r.End)) {
		return false
	}
	return true
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func firstOfQuarter(t time.Time) time.Time {
	quarter := (int(t.Month()) - 1) / 3
	return time.Date(t.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, time.UTC)
}

func rangeOf(start, end time.Time) DateRange {
	return DateRange{Start: &start, End: &end}
}

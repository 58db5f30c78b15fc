package analytics

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriodRelativeRanges(t *testing.T) {
	reference := date(2024, time.March, 15)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{PeriodLast7Days, date(2024, time.March, 9), date(2024, time.March, 15)},
		{PeriodLast30Days, date(2024, time.February, 15), date(2024, time.March, 15)},
		{PeriodThisMonth, date(2024, time.March, 1), date(2024, time.March, 15)},
		// 2024 is a leap year: last month must end on Feb 29.
		{PeriodLastMonth, date(2024, time.February, 1), date(2024, time.February, 29)},
		{PeriodThisQuarter, date(2024, time.January, 1), date(2024, time.March, 15)},
		{PeriodLastQuarter, date(2023, time.October, 1), date(2023, time.December, 31)},
		{PeriodThisYear, date(2024, time.January, 1), date(2024, time.March, 15)},
		{PeriodLastYear, date(2023, time.January, 1), date(2023, time.December, 31)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ResolvePeriod(PeriodQuery{Name: tc.name}, reference)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Start == nil || r.End == nil {
				t.Fatalf("expected both bounds, got %+v", r)
			}
			if !r.Start.Equal(tc.start) {
				t.Errorf("start: expected %v, got %v", tc.start, *r.Start)
			}
			if !r.End.Equal(tc.end) {
				t.Errorf("end: expected %v, got %v", tc.end, *r.End)
			}
		})
	}
}

func TestResolvePeriodLastQuarterRollsBackYear(t *testing.T) {
	// Reference in Q1 must resolve Last Quarter to the previous year's Q4.
	r, err := ResolvePeriod(PeriodQuery{Name: PeriodLastQuarter}, date(2024, time.January, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Start.Equal(date(2023, time.October, 1)) {
		t.Errorf("expected start 2023-10-01, got %v", *r.Start)
	}
	if !r.End.Equal(date(2023, time.December, 31)) {
		t.Errorf("expected end 2023-12-31, got %v", *r.End)
	}
}

func TestResolvePeriodAllTimeHasNoBounds(t *testing.T) {
	r, err := ResolvePeriod(PeriodQuery{Name: PeriodAllTime}, date(2024, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start != nil || r.End != nil {
		t.Errorf("expected unbounded range, got %+v", r)
	}
	if !r.Contains(date(1999, time.January, 1)) {
		t.Error("unbounded range should contain any date")
	}
}

func TestResolvePeriodCustomRangePassthrough(t *testing.T) {
	// Reversed bounds come back unchanged; the caller decides what an empty
	// range means.
	start := date(2024, time.May, 20)
	end := date(2024, time.May, 10)
	r, err := ResolvePeriod(PeriodQuery{Name: PeriodCustomRange, Start: &start, End: &end}, date(2024, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Start.Equal(start) || !r.End.Equal(end) {
		t.Errorf("expected bounds unchanged, got %+v", r)
	}
	if r.Contains(date(2024, time.May, 15)) {
		t.Error("reversed range should match nothing")
	}
}

func TestResolvePeriodRejectsUnknownName(t *testing.T) {
	_, err := ResolvePeriod(PeriodQuery{Name: "Fortnight"}, date(2024, time.June, 1))
	if !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestDateRangeContainsIsInclusive(t *testing.T) {
	r, _ := ResolvePeriod(PeriodQuery{Name: PeriodLastMonth}, date(2024, time.March, 15))

	if !r.Contains(date(2024, time.February, 1)) {
		t.Error("start day should be included")
	}
	if !r.Contains(time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)) {
		t.Error("end day should be included regardless of time of day")
	}
	if r.Contains(date(2024, time.March, 1)) {
		t.Error("day after end should be excluded")
	}
}

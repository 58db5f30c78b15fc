package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rogerio-castellano/order-analytics/internal/analytics"
)

const dateLayout = "2006-01-02"

// Query parameter parsing: absent parameters yield nil, malformed ones an
// error so handlers can reject the request with 400.

func parseIntParam(q url.Values, name string) (*int, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}

func parseFloatParam(q url.Values, name string) (*float64, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &v, nil
}

func parseDateParam(q url.Values, name string) (*time.Time, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date (YYYY-MM-DD)", name)
	}
	return &t, nil
}

func parseStringParam(q url.Values, name string) *string {
	s := q.Get(name)
	if s == "" {
		return nil
	}
	return &s
}

// referenceDate picks the anchor for relative periods: the request's
// reference param, the configured fixed date, or the dataset maximum.
func referenceDate(q url.Values) (time.Time, error) {
	if s := q.Get("reference"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("reference must be a date (YYYY-MM-DD)")
		}
		return t, nil
	}
	if !fixedReference.IsZero() {
		return fixedReference, nil
	}
	return datasetRepo.ReferenceDate(), nil
}

// rangeFromQuery resolves the period/start/end/reference parameters into a
// concrete date range. Missing period means All Time.
func rangeFromQuery(q url.Values) (string, analytics.DateRange, error) {
	name := q.Get("period")
	if name == "" {
		name = analytics.PeriodAllTime
	}

	pq := analytics.PeriodQuery{Name: name}
	if name == analytics.PeriodCustomRange {
		start, err := parseDateParam(q, "start")
		if err != nil {
			return name, analytics.DateRange{}, err
		}
		end, err := parseDateParam(q, "end")
		if err != nil {
			return name, analytics.DateRange{}, err
		}
		pq.Start, pq.End = start, end
	}

	ref, err := referenceDate(q)
	if err != nil {
		return name, analytics.DateRange{}, err
	}

	dr, err := analytics.ResolvePeriod(pq, ref)
	if err != nil {
		return name, analytics.DateRange{}, fmt.Errorf("unknown period %q: %w", name, err)
	}
	return name, dr, nil
}

// limit truncates a slice to n entries when n is set.
func limit[T any](items []T, n *int) []T {
	if n != nil && *n >= 0 && *n < len(items) {
		return items[:*n]
	}
	return items
}

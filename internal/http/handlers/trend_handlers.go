package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/rogerio-castellano/order-analytics/internal/analytics"
)

// GetDailySalesTrendHandler godoc
// @Summary Daily sales trend per group
// @Description Sums sale prices per calendar day and category/department/brand, one series per group.
// @Tags analytics
// @Produce json
// @Param period query string false "Named period (default All Time)"
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Param reference query string false "Reference date for relative periods (YYYY-MM-DD)"
// @Param group query string false "Grouping field: category|department|brand (default category)"
// @Param key query []string false "Restrict to these group keys"
// @Param status query string false "Order status"
// @Param gender query string false "Gender (M or F)"
// @Success 200 {object} TrendResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/sales/daily [get]
func GetDailySalesTrendHandler(w http.ResponseWriter, r *http.Request) {
	var result TrendResult
	if fromCache(r, &result) {
		writeJSON(w, http.StatusOK, result)
		return
	}

	q := r.URL.Query()

	period, dateRange, err := rangeFromQuery(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	field, err := groupFieldFromQuery(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := analytics.LineFilter{
		Range:  dateRange,
		Status: parseStringParam(q, "status"),
		Gender: parseStringParam(q, "gender"),
	}

	lines, err := datasetRepo.OrderLines()
	if err != nil {
		http.Error(w, "could not fetch order lines", http.StatusServiceUnavailable)
		return
	}

	filtered := analytics.FilterLines(lines, filter)
	points := analytics.DailySalesTrend(filtered, field, q["key"])

	result = TrendResult{
		Data: points,
		Meta: Meta{TotalCount: len(points), Period: period, Range: dateRange},
	}
	toCache(r, result)

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// GetReturnRatesHandler godoc
// @Summary Return rate per category, department, or brand
// @Description Ranks groups by Σ returned / Σ sold line items, worst first.
// @Tags analytics
// @Produce json
// @Param period query string false "Named period (default All Time)"
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Param reference query string false "Reference date for relative periods (YYYY-MM-DD)"
// @Param group query string false "Grouping field: category|department|brand (default category)"
// @Param gender query string false "Gender (M or F)"
// @Param minSales query int false "Drop groups with fewer sales than this"
// @Param limit query int false "Keep only the first N groups"
// @Success 200 {object} ReturnRatesResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/returns [get]
func GetReturnRatesHandler(w http.ResponseWriter, r *http.Request) {
	var result ReturnRatesResult
	if fromCache(r, &result) {
		writeJSON(w, http.StatusOK, result)
		return
	}

	q := r.URL.Query()

	period, dateRange, err := rangeFromQuery(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	field, err := groupFieldFromQuery(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	minSales, err := parseIntParam(q, "minSales")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	limitN, err := parseIntParam(q, "limit")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := analytics.LineFilter{
		Range:  dateRange,
		Gender: parseStringParam(q, "gender"),
	}

	lines, err := datasetRepo.OrderLines()
	if err != nil {
		http.Error(w, "could not fetch order lines", http.StatusServiceUnavailable)
		return
	}

	floor := 0
	if minSales != nil {
		floor = *minSales
	}
	filtered := analytics.FilterLines(lines, filter)
	groups := analytics.ReturnRateBy(filtered, field, floor)
	total := len(groups)
	groups = limit(groups, limitN)

	result = ReturnRatesResult{
		Data: groups,
		Meta: Meta{TotalCount: total, Period: period, Range: dateRange},
	}
	toCache(r, result)

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

var errBadGroupField = errors.New("group must be one of category, department, brand")

func groupFieldFromQuery(q url.Values) (analytics.GroupField, error) {
	switch s := q.Get("group"); s {
	case "", string(analytics.GroupByCategory):
		return analytics.GroupByCategory, nil
	case string(analytics.GroupByDepartment):
		return analytics.GroupByDepartment, nil
	case string(analytics.GroupByBrand):
		return analytics.GroupByBrand, nil
	default:
		return "", fmt.Errorf("%w, got %q", errBadGroupField, s)
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/rogerio-castellano/order-analytics/internal/analytics"
)

// GetCategoryMetricsHandler godoc
// @Summary Sales stats grouped by product category
// @Tags analytics
// @Produce json
// @Param period query string false "Named period (default All Time)"
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Param reference query string false "Reference date for relative periods (YYYY-MM-DD)"
// @Param status query string false "Order status"
// @Param gender query string false "Gender (M or F)"
// @Param sort query string false "Sort key: total_sales|order_count|avg_price"
// @Param limit query int false "Keep only the top N groups"
// @Success 200 {object} GroupMetricsResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/categories [get]
func GetCategoryMetricsHandler(w http.ResponseWriter, r *http.Request) {
	groupMetrics(w, r, analytics.GroupByCategory)
}

// GetDepartmentMetricsHandler godoc
// @Summary Sales stats grouped by department
// @Tags analytics
// @Produce json
// @Param period query string false "Named period (default All Time)"
// @Param status query string false "Order status"
// @Param gender query string false "Gender (M or F)"
// @Param sort query string false "Sort key: total_sales|order_count|avg_price"
// @Param limit query int false "Keep only the top N groups"
// @Success 200 {object} GroupMetricsResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/departments [get]
func GetDepartmentMetricsHandler(w http.ResponseWriter, r *http.Request) {
	groupMetrics(w, r, analytics.GroupByDepartment)
}

// GetBrandMetricsHandler godoc
// @Summary Sales stats grouped by brand
// @Tags analytics
// @Produce json
// @Param period query string false "Named period (default All Time)"
// @Param status query string false "Order status"
// @Param gender query string false "Gender (M or F)"
// @Param sort query string false "Sort key: total_sales|order_count|avg_price"
// @Param limit query int false "Keep only the top N groups"
// @Success 200 {object} GroupMetricsResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/brands [get]
func GetBrandMetricsHandler(w http.ResponseWriter, r *http.Request) {
	groupMetrics(w, r, analytics.GroupByBrand)
}

func groupMetrics(w http.ResponseWriter, r *http.Request, field analytics.GroupField) {
	var result GroupMetricsResult
	if fromCache(r, &result) {
		writeJSON(w, http.StatusOK, result)
		return
	}

	result, status, err := computeGroupMetrics(r, field)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	toCache(r, result)

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// computeGroupMetrics is shared with the export handlers, which need the same
// table without the JSON envelope.
func computeGroupMetrics(r *http.Request, field analytics.GroupField) (GroupMetricsResult, int, error) {
	q := r.URL.Query()

	period, dateRange, err := rangeFromQuery(q)
	if err != nil {
		return GroupMetricsResult{}, http.StatusBadRequest, err
	}
	limitN, err := parseIntParam(q, "limit")
	if err != nil {
		return GroupMetricsResult{}, http.StatusBadRequest, err
	}

	filter := analytics.LineFilter{
		Range:  dateRange,
		Status: parseStringParam(q, "status"),
		Gender: parseStringParam(q, "gender"),
	}

	lines, err := datasetRepo.OrderLines()
	if err != nil {
		return GroupMetricsResult{}, http.StatusServiceUnavailable, errors.New("could not fetch order lines")
	}

	filtered := analytics.FilterLines(lines, filter)
	groups := analytics.AggregateBy(filtered, field, analytics.GroupSortKey(q.Get("sort")))
	overview := analytics.SummarizeGroups(groups)
	total := len(groups)
	groups = limit(groups, limitN)

	return GroupMetricsResult{
		Overview: overview,
		Data:     groups,
		Meta:     Meta{TotalCount: total, Period: period, Range: dateRange},
	}, http.StatusOK, nil
}

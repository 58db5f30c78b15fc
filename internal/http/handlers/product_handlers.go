package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/rogerio-castellano/order-analytics/internal/analytics"
)

// Default thresholds for the overview cards, matching the dashboard defaults.
const (
	defaultLowSalesThreshold   = 10
	defaultHighReturnThreshold = 15.0
)

// GetProductMetricsHandler godoc
// @Summary Per-product sales, return, and profit performance
// @Description Aggregates filtered order lines per product and applies optional poor-performance thresholds.
// @Tags analytics
// @Produce json
// @Param period query string false "Named period (default All Time)"
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Param reference query string false "Reference date for relative periods (YYYY-MM-DD)"
// @Param category query string false "Product category"
// @Param department query string false "Department"
// @Param gender query string false "Gender (M or F)"
// @Param maxSales query int false "Keep products with at most this many sales"
// @Param minSales query int false "Keep products with at least this many sales"
// @Param minReturnRate query number false "Keep products at or above this return rate (%)"
// @Param maxMargin query number false "Keep products below this profit margin (%)"
// @Param negativeProfit query bool false "Keep only loss-making products"
// @Param sort query string false "Sort key: sales|return_rate|revenue|profit|margin (worst first)"
// @Param limit query int false "Keep only the first N products"
// @Success 200 {object} ProductMetricsResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/products [get]
func GetProductMetricsHandler(w http.ResponseWriter, r *http.Request) {
	var result ProductMetricsResult
	if fromCache(r, &result) {
		writeJSON(w, http.StatusOK, result)
		return
	}

	result, status, err := computeProductMetrics(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	toCache(r, result)

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func computeProductMetrics(r *http.Request) (ProductMetricsResult, int, error) {
	q := r.URL.Query()

	period, dateRange, err := rangeFromQuery(q)
	if err != nil {
		return ProductMetricsResult{}, http.StatusBadRequest, err
	}

	maxSales, err := parseIntParam(q, "maxSales")
	if err != nil {
		return ProductMetricsResult{}, http.StatusBadRequest, err
	}
	minSales, err := parseIntParam(q, "minSales")
	if err != nil {
		return ProductMetricsResult{}, http.StatusBadRequest, err
	}
	minReturnRate, err := parseFloatParam(q, "minReturnRate")
	if err != nil {
		return ProductMetricsResult{}, http.StatusBadRequest, err
	}
	maxMargin, err := parseFloatParam(q, "maxMargin")
	if err != nil {
		return ProductMetricsResult{}, http.StatusBadRequest, err
	}
	limitN, err := parseIntParam(q, "limit")
	if err != nil {
		return ProductMetricsResult{}, http.StatusBadRequest, err
	}

	lineFilter := analytics.LineFilter{
		Range:      dateRange,
		Category:   parseStringParam(q, "category"),
		Department: parseStringParam(q, "department"),
		Gender:     parseStringParam(q, "gender"),
	}
	statsFilter := analytics.StatsFilter{
		MaxSalesCount:   maxSales,
		MinSalesCount:   minSales,
		MinReturnRate:   minReturnRate,
		MaxProfitMargin: maxMargin,
		NegativeProfit:  q.Get("negativeProfit") == "true",
	}

	lines, err := datasetRepo.OrderLines()
	if err != nil {
		return ProductMetricsResult{}, http.StatusServiceUnavailable, errors.New("could not fetch order lines")
	}

	filtered := analytics.FilterLines(lines, lineFilter)
	stats := analytics.ProductPerformance(filtered, analytics.ProductSortKey(q.Get("sort")))
	overview := analytics.SummarizeProducts(stats, defaultLowSalesThreshold, defaultHighReturnThreshold)
	stats = analytics.FilterStats(stats, statsFilter)
	total := len(stats)
	stats = limit(stats, limitN)

	return ProductMetricsResult{
		Overview: overview,
		Data:     stats,
		Meta:     Meta{TotalCount: total, Period: period, Range: dateRange},
	}, http.StatusOK, nil
}

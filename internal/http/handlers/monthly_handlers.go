package handlers

import (
	"log"
	"net/http"

	"github.com/rogerio-castellano/order-analytics/internal/analytics"
)

// GetMonthlyOrderMetricsHandler godoc
// @Summary Monthly order volume and cancellation rate
// @Description Groups filtered orders by calendar month, ascending, with per-month cancel rates.
// @Tags analytics
// @Produce json
// @Param period query string false "Named period (default All Time)"
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Param reference query string false "Reference date for relative periods (YYYY-MM-DD)"
// @Param country query []string false "Countries to include"
// @Param traffic_source query []string false "Traffic sources to include"
// @Param gender query string false "Gender (M or F)"
// @Param status query string false "Order status"
// @Success 200 {object} MonthlyMetricsResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /analytics/orders/monthly [get]
func GetMonthlyOrderMetricsHandler(w http.ResponseWriter, r *http.Request) {
	var result MonthlyMetricsResult
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

	filter := analytics.OrderFilter{
		Range:          dateRange,
		Countries:      q["country"],
		TrafficSources: q["traffic_source"],
		Gender:         parseStringParam(q, "gender"),
		Status:         parseStringParam(q, "status"),
	}

	orders, err := datasetRepo.Orders()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusServiceUnavailable)
		return
	}

	filtered := analytics.FilterOrders(orders, filter)
	stats := analytics.MonthlyOrderMetrics(filtered)

	result = MonthlyMetricsResult{
		Overview: analytics.SummarizeOrders(filtered, len(stats)),
		Data:     stats,
		Meta:     Meta{TotalCount: len(stats), Period: period, Range: dateRange},
	}
	toCache(r, result)

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

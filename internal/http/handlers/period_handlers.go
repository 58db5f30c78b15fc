package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/order-analytics/internal/analytics"
	"github.com/rogerio-castellano/order-analytics/internal/models"
)

// GetPeriodsHandler godoc
// @Summary List recognized period names and order statuses
// @Tags analytics
// @Produce json
// @Success 200 {object} PeriodsResult
// @Router /analytics/periods [get]
func GetPeriodsHandler(w http.ResponseWriter, r *http.Request) {
	result := PeriodsResult{
		Periods:  analytics.PeriodNames,
		Statuses: models.KnownStatuses,
	}
	writeJSON(w, http.StatusOK, result)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

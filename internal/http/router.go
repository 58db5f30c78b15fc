package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/order-analytics/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/analytics/periods", handlers.GetPeriodsHandler)
	r.Get("/analytics/orders/monthly", handlers.GetMonthlyOrderMetricsHandler)
	r.Get("/analytics/categories", handlers.GetCategoryMetricsHandler)
	r.Get("/analytics/categories/export", handlers.ExportCategoryMetricsHandler)
	r.Get("/analytics/departments", handlers.GetDepartmentMetricsHandler)
	r.Get("/analytics/brands", handlers.GetBrandMetricsHandler)
	r.Get("/analytics/products", handlers.GetProductMetricsHandler)
	r.Get("/analytics/products/export", handlers.ExportProductMetricsHandler)
	r.Get("/analytics/sales/daily", handlers.GetDailySalesTrendHandler)
	r.Get("/analytics/returns", handlers.GetReturnRatesHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

package handlers

import "github.com/rogerio-castellano/order-analytics/internal/analytics"

type Meta struct {
	TotalCount int                 `json:"total_count"`
	Period     string              `json:"period"`
	Range      analytics.DateRange `json:"range"`
}

type PeriodsResult struct {
	Periods  []string `json:"periods"`
	Statuses []string `json:"statuses"`
}

type MonthlyMetricsResult struct {
	Overview analytics.OrdersOverview      `json:"overview"`
	Data     []analytics.MonthlyOrderStats `json:"data"`
	Meta     Meta                          `json:"meta"`
}

type GroupMetricsResult struct {
	Overview analytics.GroupOverview `json:"overview"`
	Data     []analytics.GroupStats  `json:"data"`
	Meta     Meta                    `json:"meta"`
}

type ProductMetricsResult struct {
	Overview analytics.ProductsOverview `json:"overview"`
	Data     []analytics.ProductStats   `json:"data"`
	Meta     Meta                       `json:"meta"`
}

type TrendResult struct {
	Data []analytics.DailySalesPoint `json:"data"`
	Meta Meta                        `json:"meta"`
}

type ReturnRatesResult struct {
	Data []analytics.GroupReturnStats `json:"data"`
	Meta Meta                         `json:"meta"`
}

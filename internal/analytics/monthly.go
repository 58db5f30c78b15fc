package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/rogerio-castellano/order-analytics/internal/models"
)

// MonthlyOrderStats is one row of the monthly order trend table.
type MonthlyOrderStats struct {
	Month           string  `json:"month"`
	TotalOrders     int     `json:"total_orders"`
	CancelledOrders int     `json:"cancelled_orders"`
	CancelRate      float64 `json:"cancel_rate"`
}

// MonthlyOrderMetrics groups orders by calendar month of created_at and
// computes per-month totals and cancellation rates, ascending by month.
func MonthlyOrderMetrics(orders []models.Order) []MonthlyOrderStats {
	byMonth := make(map[string]*MonthlyOrderStats)
	for _, o := range orders {
		key := fmt.Sprintf("%04d-%02d", o.CreatedAt.Year(), int(o.CreatedAt.Month()))
		row, ok := byMonth[key]
		if !ok {
			row = &MonthlyOrderStats{Month: key}
			byMonth[key] = row
		}
		row.TotalOrders++
		if o.Status == models.StatusCancelled {
			row.CancelledOrders++
		}
	}

	stats := make([]MonthlyOrderStats, 0, len(byMonth))
	for _, row := range byMonth {
		if row.TotalOrders > 0 {
			row.CancelRate = round2(float64(row.CancelledOrders) / float64(row.TotalOrders) * 100)
		}
		stats = append(stats, *row)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month < stats[j].Month })
	return stats
}

// OrdersOverview summarizes an order set for the dashboard header cards.
type OrdersOverview struct {
	TotalOrders    int     `json:"total_orders"`
	AvgCancelRate  float64 `json:"avg_cancel_rate"`
	MonthsAnalyzed int     `json:"months_analyzed"`
}

func SummarizeOrders(orders []models.Order, months int) OrdersOverview {
	ov := OrdersOverview{TotalOrders: len(orders), MonthsAnalyzed: months}
	if len(orders) == 0 {
		return ov
	}
	cancelled := 0
	for _, o := range orders {
		if o.Status == models.StatusCancelled {
			cancelled++
		}
	}
	ov.AvgCancelRate = round2(float64(cancelled) / float64(len(orders)) * 100)
	return ov
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

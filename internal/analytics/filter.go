package analytics

import (
	"github.com/rogerio-castellano/order-analytics/internal/models"
)

// OrderFilter narrows an order set before monthly aggregation. Nil/empty
// fields match everything; populated fields combine with logical AND.
type OrderFilter struct {
	Range          DateRange
	Countries      []string
	TrafficSources []string
	Gender         *string
	Status         *string
}

func (f OrderFilter) Matches(o models.Order) bool {
	if !f.Range.Contains(o.CreatedAt) {
		return false
	}
	if len(f.Countries) > 0 && !contains(f.Countries, o.Country) {
		return false
	}
	if len(f.TrafficSources) > 0 && !contains(f.TrafficSources, o.TrafficSource) {
		return false
	}
	if f.Gender != nil && o.Gender != *f.Gender {
		return false
	}
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	return true
}

// FilterOrders returns the orders matching f, freshly allocated.
func FilterOrders(orders []models.Order, f OrderFilter) []models.Order {
	out := make([]models.Order, 0)
	for _, o := range orders {
		if f.Matches(o) {
			out = append(out, o)
		}
	}
	return out
}

// LineFilter narrows order lines before category/product aggregation.
type LineFilter struct {
	Range      DateRange
	Status     *string
	Gender     *string
	Category   *string
	Department *string
}

func (f LineFilter) Matches(l models.OrderLine) bool {
	if !f.Range.Contains(l.CreatedAt) {
		return false
	}
	if f.Status != nil && l.Status != *f.Status {
		return false
	}
	if f.Gender != nil && l.Gender != *f.Gender {
		return false
	}
	if f.Category != nil && l.Category != *f.Category {
		return false
	}
	if f.Department != nil && l.Department != *f.Department {
		return false
	}
	return true
}

// FilterLines returns the order lines matching f, freshly allocated.
func FilterLines(lines []models.OrderLine, f LineFilter) []models.OrderLine {
	out := make([]models.OrderLine, 0)
	for _, l := range lines {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

// StatsFilter applies post-aggregation thresholds to product stats.
type StatsFilter struct {
	MaxSalesCount   *int     // keep products with at most this many sales
	MinSalesCount   *int     // keep products with at least this many sales
	MinReturnRate   *float64 // keep products returning at or above this percent
	MaxProfitMargin *float64 // keep products with margin strictly below this percent
	NegativeProfit  bool     // keep only products with total profit below zero
}

func (f StatsFilter) Matches(s ProductStats) bool {
	if f.MaxSalesCount != nil && s.TotalSalesCount > *f.MaxSalesCount {
		return false
	}
	if f.MinSalesCount != nil && s.TotalSalesCount < *f.MinSalesCount {
		return false
	}
	if f.MinReturnRate != nil && s.ReturnRate < *f.MinReturnRate {
		return false
	}
	if f.MaxProfitMargin != nil && s.ProfitMargin >= *f.MaxProfitMargin {
		return false
	}
	if f.NegativeProfit && s.TotalProfit >= 0 {
		return false
	}
	return true
}

// FilterStats returns the product stats matching f, preserving order.
func FilterStats(stats []ProductStats, f StatsFilter) []ProductStats {
	out := make([]ProductStats, 0)
	for _, s := range stats {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

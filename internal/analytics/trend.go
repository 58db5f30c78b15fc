package analytics

import (
	"sort"

	"github.com/rogerio-castellano/order-analytics/internal/models"
)

// DailySalesPoint is one (day, group) cell of a sales trend series.
type DailySalesPoint struct {
	Date       string  `json:"date"`
	Key        string  `json:"key"`
	TotalSales float64 `json:"total_sales"`
}

// DailySalesTrend sums sale prices per calendar day and group key, ordered by
// day then key so consumers can plot one line per group. When keys is
// non-empty only those groups are included, mirroring the dashboard's
// compare-selected-categories widget.
func DailySalesTrend(lines []models.OrderLine, field GroupField, keys []string) []DailySalesPoint {
	type bucket struct {
		date string
		key  string
	}
	index := make(map[bucket]int)
	points := make([]DailySalesPoint, 0)

	for _, l := range lines {
		k := groupKey(l, field)
		if len(keys) > 0 && !contains(keys, k) {
			continue
		}
		b := bucket{l.CreatedAt.Format("2006-01-02"), k}
		i, ok := index[b]
		if !ok {
			i = len(points)
			index[b] = i
			points = append(points, DailySalesPoint{Date: b.date, Key: b.key})
		}
		points[i].TotalSales += l.SalePrice
	}

	for i := range points {
		points[i].TotalSales = round2(points[i].TotalSales)
	}
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Date != points[j].Date {
			return points[i].Date < points[j].Date
		}
		return points[i].Key < points[j].Key
	})
	return points
}

// GroupReturnStats is one row of a return-rate-by-group table.
type GroupReturnStats struct {
	Key             string  `json:"key"`
	ReturnCount     int     `json:"return_count"`
	TotalSalesCount int     `json:"total_sales_count"`
	ReturnRate      float64 `json:"return_rate"`
}

// ReturnRateBy computes Σ returns / Σ sold per group, descending by return
// rate with first-seen order on ties. Groups below minSales are dropped
// before ranking so thin groups don't dominate on noise.
func ReturnRateBy(lines []models.OrderLine, field GroupField, minSales int) []GroupReturnStats {
	index := make(map[string]int)
	groups := make([]GroupReturnStats, 0)

	for _, l := range lines {
		k := groupKey(l, field)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, GroupReturnStats{Key: k})
		}
		groups[i].TotalSalesCount++
		if l.Status == models.StatusReturned {
			groups[i].ReturnCount++
		}
	}

	ranked := make([]GroupReturnStats, 0, len(groups))
	for _, g := range groups {
		if g.TotalSalesCount < minSales {
			continue
		}
		if g.TotalSalesCount > 0 {
			g.ReturnRate = round2(float64(g.ReturnCount) / float64(g.TotalSalesCount) * 100)
		}
		ranked = append(ranked, g)
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].ReturnRate > ranked[j].ReturnRate })
	return ranked
}

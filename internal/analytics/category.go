package analytics

import (
	"sort"

	"github.com/rogerio-castellano/order-analytics/internal/models"
)

// GroupField selects the order-line attribute a grouped aggregation keys on.
type GroupField string

const (
	GroupByCategory   GroupField = "category"
	GroupByDepartment GroupField = "department"
	GroupByBrand      GroupField = "brand"
)

// GroupSortKey selects the column grouped results are ordered by, always
// descending. Ties keep first-seen group order.
type GroupSortKey string

const (
	SortByTotalSales GroupSortKey = "total_sales"
	SortByOrderCount GroupSortKey = "order_count"
	SortByAvgPrice   GroupSortKey = "avg_price"
)

// GroupStats is one row of a category/department/brand sales table.
type GroupStats struct {
	Key        string  `json:"key"`
	TotalSales float64 `json:"total_sales"`
	AvgPrice   float64 `json:"avg_price"`
	OrderCount int     `json:"order_count"`
	SalesPct   float64 `json:"sales_pct"`
}

// AggregateBy groups order lines by the given field and computes sales totals,
// average price, and each group's share of overall sales. Results are sorted
// descending by sortBy (total_sales when empty).
func AggregateBy(lines []models.OrderLine, field GroupField, sortBy GroupSortKey) []GroupStats {
	index := make(map[string]int)
	groups := make([]GroupStats, 0)
	var grandTotal float64

	for _, l := range lines {
		key := groupKey(l, field)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, GroupStats{Key: key})
		}
		groups[i].TotalSales += l.SalePrice
		groups[i].OrderCount++
		grandTotal += l.SalePrice
	}

	for i := range groups {
		g := &groups[i]
		if g.OrderCount > 0 {
			g.AvgPrice = round2(g.TotalSales / float64(g.OrderCount))
		}
		if grandTotal > 0 {
			g.SalesPct = round2(g.TotalSales / grandTotal * 100)
		}
		g.TotalSales = round2(g.TotalSales)
	}

	less := groupLess(sortBy)
	sort.SliceStable(groups, func(i, j int) bool { return less(groups[i], groups[j]) })
	return groups
}

// GroupOverview summarizes a grouped sales table for the header cards.
type GroupOverview struct {
	TotalSales    float64 `json:"total_sales"`
	GroupCount    int     `json:"group_count"`
	OrderCount    int     `json:"order_count"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

func SummarizeGroups(groups []GroupStats) GroupOverview {
	ov := GroupOverview{GroupCount: len(groups)}
	for _, g := range groups {
		ov.TotalSales += g.TotalSales
		ov.OrderCount += g.OrderCount
	}
	ov.TotalSales = round2(ov.TotalSales)
	if ov.OrderCount > 0 {
		ov.AvgOrderValue = round2(ov.TotalSales / float64(ov.OrderCount))
	}
	return ov
}

func groupKey(l models.OrderLine, field GroupField) string {
	switch field {
	case GroupByDepartment:
		return l.Department
	case GroupByBrand:
		return l.Brand
	default:
		return l.Category
	}
}

func groupLess(sortBy GroupSortKey) func(a, b GroupStats) bool {
	switch sortBy {
	case SortByOrderCount:
		return func(a, b GroupStats) bool { return a.OrderCount > b.OrderCount }
	case SortByAvgPrice:
		return func(a, b GroupStats) bool { return a.AvgPrice > b.AvgPrice }
	default:
		return func(a, b GroupStats) bool { return a.TotalSales > b.TotalSales }
	}
}

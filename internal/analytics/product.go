package analytics

import (
	"sort"

	"github.com/rogerio-castellano/order-analytics/internal/models"
)

// ProductStats is the per-product performance row used by the poor-performance
// dashboard. All rates and money amounts are rounded to two decimals; zero
// denominators yield 0 by convention, never NaN.
type ProductStats struct {
	ProductID       int     `json:"product_id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Brand           string  `json:"brand"`
	Department      string  `json:"department"`
	Cost            float64 `json:"cost"`
	RetailPrice     float64 `json:"retail_price"`
	TotalSalesCount int     `json:"total_sales_count"`
	TotalRevenue    float64 `json:"total_revenue"`
	ReturnCount     int     `json:"return_count"`
	ReturnRate      float64 `json:"return_rate"`
	AvgSalePrice    float64 `json:"avg_sale_price"`
	ProfitPerItem   float64 `json:"profit_per_item"`
	TotalProfit     float64 `json:"total_profit"`
	ProfitMargin    float64 `json:"profit_margin"`
}

// ProductSortKey orders product stats by "badness": worst performers first.
type ProductSortKey string

const (
	SortByLowestSales    ProductSortKey = "sales"
	SortByHighestReturns ProductSortKey = "return_rate"
	SortByLowestRevenue  ProductSortKey = "revenue"
	SortByLowestProfit   ProductSortKey = "profit"
	SortByLowestMargin   ProductSortKey = "margin"
)

// ProductPerformance aggregates order lines into per-product stats, keyed by
// product ID in first-seen order before sorting.
func ProductPerformance(lines []models.OrderLine, sortBy ProductSortKey) []ProductStats {
	index := make(map[int]int)
	stats := make([]ProductStats, 0)

	for _, l := range lines {
		i, ok := index[l.ProductID]
		if !ok {
			i = len(stats)
			index[l.ProductID] = i
			stats = append(stats, ProductStats{
				ProductID:   l.ProductID,
				Name:        l.ProductName,
				Category:    l.Category,
				Brand:       l.Brand,
				Department:  l.Department,
				Cost:        l.Cost,
				RetailPrice: l.RetailPrice,
			})
		}
		stats[i].TotalSalesCount++
		stats[i].TotalRevenue += l.SalePrice
		if l.Status == models.StatusReturned {
			stats[i].ReturnCount++
		}
	}

	for i := range stats {
		s := &stats[i]
		s.TotalRevenue = round2(s.TotalRevenue)
		if s.TotalSalesCount > 0 {
			s.ReturnRate = round2(float64(s.ReturnCount) / float64(s.TotalSalesCount) * 100)
			s.AvgSalePrice = round2(s.TotalRevenue / float64(s.TotalSalesCount))
		}
		s.ProfitPerItem = round2(s.AvgSalePrice - s.Cost)
		s.TotalProfit = round2(s.ProfitPerItem * float64(s.TotalSalesCount))
		if s.AvgSalePrice != 0 {
			s.ProfitMargin = round2(s.ProfitPerItem / s.AvgSalePrice * 100)
		}
	}

	less := productLess(sortBy)
	sort.SliceStable(stats, func(i, j int) bool { return less(stats[i], stats[j]) })
	return stats
}

// ProductsOverview summarizes a product stats table for the header cards.
type ProductsOverview struct {
	ProductCount       int     `json:"product_count"`
	OverallReturnRate  float64 `json:"overall_return_rate"`
	LowSalesProducts   int     `json:"low_sales_products"`
	HighReturnProducts int     `json:"high_return_products"`
}

// SummarizeProducts computes the overview cards: overall return rate across
// all line items plus counts of products under lowSales sales and at or above
// highReturn percent return rate.
func SummarizeProducts(stats []ProductStats, lowSales int, highReturn float64) ProductsOverview {
	ov := ProductsOverview{ProductCount: len(stats)}
	var sold, returned int
	for _, s := range stats {
		sold += s.TotalSalesCount
		returned += s.ReturnCount
		if s.TotalSalesCount < lowSales {
			ov.LowSalesProducts++
		}
		if s.ReturnRate >= highReturn {
			ov.HighReturnProducts++
		}
	}
	if sold > 0 {
		ov.OverallReturnRate = round2(float64(returned) / float64(sold) * 100)
	}
	return ov
}

func productLess(sortBy ProductSortKey) func(a, b ProductStats) bool {
	switch sortBy {
	case SortByHighestReturns:
		return func(a, b ProductStats) bool { return a.ReturnRate > b.ReturnRate }
	case SortByLowestRevenue:
		return func(a, b ProductStats) bool { return a.TotalRevenue < b.TotalRevenue }
	case SortByLowestProfit:
		return func(a, b ProductStats) bool { return a.TotalProfit < b.TotalProfit }
	case SortByLowestMargin:
		return func(a, b ProductStats) bool { return a.ProfitMargin < b.ProfitMargin }
	default:
		return func(a, b ProductStats) bool { return a.TotalSalesCount < b.TotalSalesCount }
	}
}

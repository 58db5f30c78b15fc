package analytics

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/order-analytics/internal/models"
)

func itemFor(productID int, price, cost float64, status string) models.OrderLine {
	return models.OrderLine{
		ProductID:   productID,
		ProductName: "P",
		SalePrice:   price,
		Cost:        cost,
		Status:      status,
		CreatedAt:   date(2024, time.April, 1),
	}
}

func TestProductPerformanceFormulas(t *testing.T) {
	lines := []models.OrderLine{
		itemFor(1, 20, 8, models.StatusComplete),
		itemFor(1, 30, 8, models.StatusReturned),
		itemFor(1, 25, 8, models.StatusComplete),
		itemFor(1, 25, 8, models.StatusComplete),
	}

	stats := ProductPerformance(lines, SortByLowestSales)

	if len(stats) != 1 {
		t.Fatalf("expected 1 product, got %d", len(stats))
	}
	s := stats[0]
	if s.TotalSalesCount != 4 || s.TotalRevenue != 100 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.ReturnCount != 1 || s.ReturnRate != 25 {
		t.Errorf("expected 1 return at 25%%, got %+v", s)
	}
	if s.AvgSalePrice != 25 {
		t.Errorf("expected avg price 25, got %v", s.AvgSalePrice)
	}
	if s.ProfitPerItem != 17 || s.TotalProfit != 68 {
		t.Errorf("unexpected profit: %+v", s)
	}
	if s.ProfitMargin != 68 {
		t.Errorf("expected margin 68, got %v", s.ProfitMargin)
	}
}

func TestProductPerformanceZeroDenominators(t *testing.T) {
	// A product whose every sale price is 0 must yield margin 0, not NaN.
	lines := []models.OrderLine{itemFor(7, 0, 5, models.StatusComplete)}

	stats := ProductPerformance(lines, SortByLowestSales)

	s := stats[0]
	if s.AvgSalePrice != 0 {
		t.Fatalf("expected avg price 0, got %v", s.AvgSalePrice)
	}
	if s.ProfitMargin != 0 {
		t.Errorf("expected margin 0 for zero avg price, got %v", s.ProfitMargin)
	}
	if s.ReturnRate != 0 {
		t.Errorf("expected return rate 0, got %v", s.ReturnRate)
	}
}

func TestProductPerformanceMissingProductTreatedAsZero(t *testing.T) {
	// A line whose product was never matched carries zero cost; profit is
	// computed from 0, not dropped.
	lines := []models.OrderLine{
		{ProductID: 99, SalePrice: 10, Status: models.StatusComplete, CreatedAt: date(2024, time.April, 1)},
	}

	stats := ProductPerformance(lines, SortByLowestSales)

	s := stats[0]
	if s.ProfitPerItem != 10 || s.TotalProfit != 10 || s.ProfitMargin != 100 {
		t.Errorf("unexpected stats for zero-cost line: %+v", s)
	}
}

func TestProductPerformanceRounding(t *testing.T) {
	lines := []models.OrderLine{
		itemFor(3, 10, 3.333, models.StatusComplete),
		itemFor(3, 10, 3.333, models.StatusComplete),
		itemFor(3, 10, 3.333, models.StatusReturned),
	}

	s := ProductPerformance(lines, SortByLowestSales)[0]

	if s.ReturnRate != 33.33 {
		t.Errorf("expected return rate 33.33, got %v", s.ReturnRate)
	}
	if s.ProfitPerItem != 6.67 {
		t.Errorf("expected profit per item 6.67, got %v", s.ProfitPerItem)
	}
}

func TestProductPerformanceSortKeys(t *testing.T) {
	lines := []models.OrderLine{
		itemFor(1, 10, 2, models.StatusComplete),
		itemFor(1, 10, 2, models.StatusComplete),
		itemFor(2, 50, 60, models.StatusReturned), // loss-making, 100% returns
	}

	bySales := ProductPerformance(lines, SortByLowestSales)
	if bySales[0].ProductID != 2 {
		t.Errorf("expected product 2 first by lowest sales, got %+v", bySales[0])
	}

	byReturns := ProductPerformance(lines, SortByHighestReturns)
	if byReturns[0].ProductID != 2 {
		t.Errorf("expected product 2 first by return rate, got %+v", byReturns[0])
	}

	byProfit := ProductPerformance(lines, SortByLowestProfit)
	if byProfit[0].ProductID != 2 {
		t.Errorf("expected product 2 first by lowest profit, got %+v", byProfit[0])
	}
}

func TestSummarizeProducts(t *testing.T) {
	lines := []models.OrderLine{
		itemFor(1, 10, 2, models.StatusComplete),
		itemFor(1, 10, 2, models.StatusReturned),
		itemFor(2, 10, 2, models.StatusComplete),
	}
	stats := ProductPerformance(lines, SortByLowestSales)

	ov := SummarizeProducts(stats, 10, 15)

	if ov.ProductCount != 2 {
		t.Errorf("expected 2 products, got %d", ov.ProductCount)
	}
	if ov.OverallReturnRate != 33.33 {
		t.Errorf("expected overall return rate 33.33, got %v", ov.OverallReturnRate)
	}
	if ov.LowSalesProducts != 2 {
		t.Errorf("expected 2 low-sales products, got %d", ov.LowSalesProducts)
	}
	if ov.HighReturnProducts != 1 {
		t.Errorf("expected 1 high-return product, got %d", ov.HighReturnProducts)
	}
}

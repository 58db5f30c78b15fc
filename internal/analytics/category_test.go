package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/rogerio-castellano/order-analytics/internal/models"
)

func line(category, department string, price float64) models.OrderLine {
	return models.OrderLine{
		Category:   category,
		Department: department,
		SalePrice:  price,
		CreatedAt:  date(2024, time.April, 1),
	}
}

func TestAggregateByCategory(t *testing.T) {
	lines := []models.OrderLine{
		line("Jeans", "Men", 50),
		line("Jeans", "Men", 70),
		line("Socks", "Men", 10),
		line("Dresses", "Women", 90),
	}

	groups := AggregateBy(lines, GroupByCategory, SortByTotalSales)

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Key != "Jeans" || groups[0].TotalSales != 120 {
		t.Errorf("expected Jeans with 120 first, got %+v", groups[0])
	}
	if groups[0].AvgPrice != 60 || groups[0].OrderCount != 2 {
		t.Errorf("unexpected Jeans stats: %+v", groups[0])
	}
	if groups[1].Key != "Dresses" || groups[2].Key != "Socks" {
		t.Errorf("unexpected sales ordering: %+v", groups)
	}
}

func TestAggregateBySalesPctSumsToHundred(t *testing.T) {
	lines := []models.OrderLine{
		line("A", "Men", 33.33),
		line("B", "Men", 19.99),
		line("C", "Women", 120.50),
		line("D", "Women", 7.25),
	}

	groups := AggregateBy(lines, GroupByCategory, SortByTotalSales)

	var pct float64
	for _, g := range groups {
		pct += g.SalesPct
	}
	if math.Abs(pct-100) > 0.05 {
		t.Errorf("sales pct should sum to ~100, got %v", pct)
	}
}

func TestAggregateBySortKeys(t *testing.T) {
	lines := []models.OrderLine{
		line("Cheap", "Men", 5), line("Cheap", "Men", 5), line("Cheap", "Men", 5),
		line("Pricey", "Men", 100),
	}

	byCount := AggregateBy(lines, GroupByCategory, SortByOrderCount)
	if byCount[0].Key != "Cheap" {
		t.Errorf("expected Cheap first by order count, got %+v", byCount[0])
	}

	byPrice := AggregateBy(lines, GroupByCategory, SortByAvgPrice)
	if byPrice[0].Key != "Pricey" {
		t.Errorf("expected Pricey first by avg price, got %+v", byPrice[0])
	}
}

func TestAggregateByTiesKeepFirstSeenOrder(t *testing.T) {
	lines := []models.OrderLine{
		line("First", "Men", 40),
		line("Second", "Men", 40),
		line("Third", "Men", 40),
	}

	groups := AggregateBy(lines, GroupByCategory, SortByTotalSales)

	order := []string{"First", "Second", "Third"}
	for i, want := range order {
		if groups[i].Key != want {
			t.Errorf("position %d: expected %s, got %s", i, want, groups[i].Key)
		}
	}
}

func TestAggregateByDepartment(t *testing.T) {
	lines := []models.OrderLine{
		line("Jeans", "Men", 50),
		line("Dresses", "Women", 90),
		line("Skirts", "Women", 60),
	}

	groups := AggregateBy(lines, GroupByDepartment, SortByTotalSales)

	if len(groups) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(groups))
	}
	if groups[0].Key != "Women" || groups[0].TotalSales != 150 {
		t.Errorf("expected Women with 150 first, got %+v", groups[0])
	}
}

func TestAggregateByEmptyInput(t *testing.T) {
	groups := AggregateBy(nil, GroupByCategory, SortByTotalSales)
	if len(groups) != 0 {
		t.Errorf("expected no groups, got %+v", groups)
	}

	ov := SummarizeGroups(groups)
	if ov.TotalSales != 0 || ov.AvgOrderValue != 0 {
		t.Errorf("expected zeroed overview, got %+v", ov)
	}
}

func TestSummarizeGroups(t *testing.T) {
	lines := []models.OrderLine{
		line("A", "Men", 30),
		line("B", "Men", 70),
	}

	ov := SummarizeGroups(AggregateBy(lines, GroupByCategory, SortByTotalSales))

	if ov.TotalSales != 100 || ov.GroupCount != 2 || ov.OrderCount != 2 {
		t.Errorf("unexpected overview: %+v", ov)
	}
	if ov.AvgOrderValue != 50 {
		t.Errorf("expected avg order value 50, got %v", ov.AvgOrderValue)
	}
}

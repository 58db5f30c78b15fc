package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rogerio-castellano/order-analytics/internal/analytics"
)

// ExportProductMetricsHandler godoc
// @Summary Export product performance stats as CSV
// @Description Same filters as /analytics/products, rendered as a downloadable CSV.
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Failure 400 {string} string "Invalid query"
// @Router /analytics/products/export [get]
func ExportProductMetricsHandler(w http.ResponseWriter, r *http.Request) {
	result, status, err := computeProductMetrics(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	setCSVHeaders(w, "product_performance")
	writer := csv.NewWriter(w)
	writer.Write([]string{
		"product_id", "name", "category", "brand", "department",
		"total_sales_count", "total_revenue", "return_count", "return_rate",
		"avg_sale_price", "profit_per_item", "total_profit", "profit_margin",
	})
	for _, s := range result.Data {
		writer.Write([]string{
			strconv.Itoa(s.ProductID), s.Name, s.Category, s.Brand, s.Department,
			strconv.Itoa(s.TotalSalesCount), money(s.TotalRevenue),
			strconv.Itoa(s.ReturnCount), money(s.ReturnRate),
			money(s.AvgSalePrice), money(s.ProfitPerItem),
			money(s.TotalProfit), money(s.ProfitMargin),
		})
	}
	writer.Flush()
}

// ExportCategoryMetricsHandler godoc
// @Summary Export category sales stats as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Failure 400 {string} string "Invalid query"
// @Router /analytics/categories/export [get]
func ExportCategoryMetricsHandler(w http.ResponseWriter, r *http.Request) {
	result, status, err := computeGroupMetrics(r, analytics.GroupByCategory)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	setCSVHeaders(w, "category_sales")
	writer := csv.NewWriter(w)
	writer.Write([]string{"category", "total_sales", "avg_price", "order_count", "sales_pct"})
	for _, g := range result.Data {
		writer.Write([]string{
			g.Key, money(g.TotalSales), money(g.AvgPrice),
			strconv.Itoa(g.OrderCount), money(g.SalesPct),
		})
	}
	writer.Flush()
}

func setCSVHeaders(w http.ResponseWriter, name string) {
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

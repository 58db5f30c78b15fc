package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/order-analytics/internal/csvdata"
	handler "github.com/rogerio-castellano/order-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/order-analytics/internal/models"
	"github.com/rogerio-castellano/order-analytics/internal/repo"
)

func init() {
	setupTestRepos()
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// setupTestRepos wires an in-memory dataset shaped like the real one: three
// January orders (one cancelled) and two February orders, with line items
// across two categories and a returned item.
func setupTestRepos() {
	ds := &csvdata.Dataset{
		Orders: []models.Order{
			{ID: 1, UserID: 1, Status: models.StatusComplete, Gender: "F", Country: "Japan", TrafficSource: "Search", CreatedAt: day(2024, time.January, 5)},
			{ID: 2, UserID: 2, Status: models.StatusCancelled, Gender: "M", Country: "Japan", TrafficSource: "Email", CreatedAt: day(2024, time.January, 12)},
			{ID: 3, UserID: 3, Status: models.StatusComplete, Gender: "F", Country: "Brasil", TrafficSource: "Search", CreatedAt: day(2024, time.January, 20)},
			{ID: 4, UserID: 1, Status: models.StatusShipped, Gender: "F", Country: "Japan", TrafficSource: "Search", CreatedAt: day(2024, time.February, 3)},
			{ID: 5, UserID: 2, Status: models.StatusComplete, Gender: "M", Country: "Brasil", TrafficSource: "Email", CreatedAt: day(2024, time.February, 14)},
		},
		OrderLines: []models.OrderLine{
			{ItemID: 1, OrderID: 1, ProductID: 10, SalePrice: 50, Status: models.StatusComplete, CreatedAt: day(2024, time.January, 5), ProductName: "Slim Jeans", Category: "Jeans", Brand: "Acme", Department: "Women", Cost: 20, Gender: "F"},
			{ItemID: 2, OrderID: 1, ProductID: 11, SalePrice: 10, Status: models.StatusReturned, CreatedAt: day(2024, time.January, 5), ProductName: "Wool Socks", Category: "Socks", Brand: "Acme", Department: "Women", Cost: 4, Gender: "F"},
			{ItemID: 3, OrderID: 3, ProductID: 10, SalePrice: 60, Status: models.StatusComplete, CreatedAt: day(2024, time.January, 20), ProductName: "Slim Jeans", Category: "Jeans", Brand: "Acme", Department: "Women", Cost: 20, Gender: "F"},
			{ItemID: 4, OrderID: 5, ProductID: 12, SalePrice: 30, Status: models.StatusComplete, CreatedAt: day(2024, time.February, 14), ProductName: "Canvas Belt", Category: "Belts", Brand: "Bolt", Department: "Men", Cost: 35, Gender: "M"},
		},
		MaxDate: day(2024, time.February, 14),
	}

	handler.SetDatasetRepo(repo.NewInMemoryDatasetRepository(ds))
}

func doGet(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

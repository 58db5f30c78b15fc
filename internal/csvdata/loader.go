package csvdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/order-analytics/internal/models"
)

// ErrDataUnavailable means a required input file is missing or unreadable.
// There is no retry: the session cannot proceed without its dataset.
var ErrDataUnavailable = errors.New("data unavailable")

// Expected file names inside the data directory.
const (
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	ProductsFile   = "products.csv"
	UsersFile      = "users.csv"
)

// Dataset is the read-only, joined session dataset. It is loaded once and
// never mutated; every aggregation allocates its own result tables.
type Dataset struct {
	Orders     []models.Order
	OrderLines []models.OrderLine
	MaxDate    time.Time
}

// Load reads the four CSV files from dir and performs the joins: orders gain
// user country/traffic_source (rows without a user are dropped), line items
// gain product attributes (missing products leave zero-valued fields) and the
// order's gender.
func Load(dir string) (*Dataset, error) {
	users, err := loadUsers(filepath.Join(dir, UsersFile))
	if err != nil {
		return nil, err
	}
	products, err := loadProducts(filepath.Join(dir, ProductsFile))
	if err != nil {
		return nil, err
	}
	rawOrders, err := loadOrders(filepath.Join(dir, OrdersFile))
	if err != nil {
		return nil, err
	}
	items, err := loadOrderItems(filepath.Join(dir, OrderItemsFile))
	if err != nil {
		return nil, err
	}

	usersByID := make(map[int]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	productsByID := make(map[int]models.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	ds := &Dataset{}

	genderByOrder := make(map[int]string, len(rawOrders))
	for _, o := range rawOrders {
		genderByOrder[o.ID] = o.Gender
		u, ok := usersByID[o.UserID]
		if !ok || u.Country == "" || u.TrafficSource == "" {
			continue // country and traffic source are required filter fields
		}
		o.Country = u.Country
		o.TrafficSource = u.TrafficSource
		ds.Orders = append(ds.Orders, o)
		if o.CreatedAt.After(ds.MaxDate) {
			ds.MaxDate = o.CreatedAt
		}
	}

	for _, it := range items {
		line := models.OrderLine{
			ItemID:    it.ID,
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			SalePrice: it.SalePrice,
			Status:    it.Status,
			CreatedAt: it.CreatedAt,
			Gender:    genderByOrder[it.OrderID],
		}
		if p, ok := productsByID[it.ProductID]; ok {
			line.ProductName = p.Name
			line.Category = p.Category
			line.Brand = p.Brand
			line.Department = p.Department
			line.Cost = p.Cost
			line.RetailPrice = p.RetailPrice
		}
		ds.OrderLines = append(ds.OrderLines, line)
		if it.CreatedAt.After(ds.MaxDate) {
			ds.MaxDate = it.CreatedAt
		}
	}

	return ds, nil
}

func loadOrders(path string) ([]models.Order, error) {
	var orders []models.Order
	err := readRows(path, func(get func(string) string) {
		orders = append(orders, models.Order{
			ID:        parseInt(get("order_id")),
			UserID:    parseInt(get("user_id")),
			Status:    get("status"),
			Gender:    get("gender"),
			CreatedAt: parseTime(get("created_at")),
		})
	})
	return orders, err
}

func loadOrderItems(path string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := readRows(path, func(get func(string) string) {
		items = append(items, models.OrderItem{
			ID:        parseInt(get("id")),
			OrderID:   parseInt(get("order_id")),
			ProductID: parseInt(get("product_id")),
			SalePrice: parseFloat(get("sale_price")),
			Status:    get("status"),
			CreatedAt: parseTime(get("created_at")),
		})
	})
	return items, err
}

func loadProducts(path string) ([]models.Product, error) {
	var products []models.Product
	err := readRows(path, func(get func(string) string) {
		products = append(products, models.Product{
			ID:          parseInt(get("id")),
			Name:        get("name"),
			Category:    get("category"),
			Brand:       get("brand"),
			Department:  get("department"),
			Cost:        parseFloat(get("cost")),
			RetailPrice: parseFloat(get("retail_price")),
		})
	})
	return products, err
}

func loadUsers(path string) ([]models.User, error) {
	var users []models.User
	err := readRows(path, func(get func(string) string) {
		users = append(users, models.User{
			ID:            parseInt(get("id")),
			Country:       get("country"),
			TrafficSource: get("traffic_source"),
			CreatedAt:     parseTime(get("created_at")),
		})
	})
	return users, err
}

// readRows streams a CSV file, indexing columns by lowercased header name so
// column order does not matter, and calls row with a getter per data row.
func readRows(path string, row func(get func(string) string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDataUnavailable, filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("%w: %s: invalid CSV header", ErrDataUnavailable, filepath.Base(path))
	}
	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDataUnavailable, filepath.Base(path), err)
		}
		row(func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		})
	}
	return nil
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// parseFloat treats blank or malformed numbers as 0 so missing cost/price
// never propagates as null into the aggregates.
func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

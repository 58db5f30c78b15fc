package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/order-analytics/internal/models"
)

// PostgresDatasetRepository reads the same four tables from Postgres instead
// of CSV files, joining in SQL. The snapshot is fetched once at startup and
// cached; the tables are treated as read-only reference data.
type PostgresDatasetRepository struct {
	db      *sql.DB
	orders  []models.Order
	lines   []models.OrderLine
	maxDate time.Time
}

// NewPostgresDatasetRepository loads the dataset snapshot eagerly so that a
// broken connection surfaces at startup, not on the first query.
func NewPostgresDatasetRepository(db *sql.DB) (*PostgresDatasetRepository, error) {
	r := &PostgresDatasetRepository{db: db}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostgresDatasetRepository) Orders() ([]models.Order, error) {
	return r.orders, nil
}

func (r *PostgresDatasetRepository) OrderLines() ([]models.OrderLine, error) {
	return r.lines, nil
}

func (r *PostgresDatasetRepository) ReferenceDate() time.Time {
	return r.maxDate
}

func (r *PostgresDatasetRepository) load() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := r.loadOrders(ctx); err != nil {
		return fmt.Errorf("loading orders: %w", err)
	}
	if err := r.loadOrderLines(ctx); err != nil {
		return fmt.Errorf("loading order lines: %w", err)
	}
	return nil
}

func (r *PostgresDatasetRepository) loadOrders(ctx context.Context) error {
	// Inner join drops orders without a user row: country and traffic source
	// are required filter fields.
	query := `SELECT o.order_id, o.user_id, o.status, o.gender, o.created_at,
	                 u.country, u.traffic_source
	          FROM orders o
	          JOIN users u ON u.id = o.user_id
	          WHERE u.country <> '' AND u.traffic_source <> ''`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.Gender, &o.CreatedAt,
			&o.Country, &o.TrafficSource); err != nil {
			return err
		}
		r.orders = append(r.orders, o)
		if o.CreatedAt.After(r.maxDate) {
			r.maxDate = o.CreatedAt
		}
	}
	return rows.Err()
}

func (r *PostgresDatasetRepository) loadOrderLines(ctx context.Context) error {
	query := `SELECT i.id, i.order_id, i.product_id, i.sale_price, i.status, i.created_at,
	                 COALESCE(p.name, ''), COALESCE(p.category, ''), COALESCE(p.brand, ''),
	                 COALESCE(p.department, ''), COALESCE(p.cost, 0), COALESCE(p.retail_price, 0),
	                 COALESCE(o.gender, '')
	          FROM order_items i
	          LEFT JOIN products p ON p.id = i.product_id
	          LEFT JOIN orders o ON o.order_id = i.order_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(&l.ItemID, &l.OrderID, &l.ProductID, &l.SalePrice, &l.Status,
			&l.CreatedAt, &l.ProductName, &l.Category, &l.Brand, &l.Department,
			&l.Cost, &l.RetailPrice, &l.Gender); err != nil {
			return err
		}
		r.lines = append(r.lines, l)
		if l.CreatedAt.After(r.maxDate) {
			r.maxDate = l.CreatedAt
		}
	}
	return rows.Err()
}

package repo

import (
	"time"

	"github.com/rogerio-castellano/order-analytics/internal/csvdata"
	"github.com/rogerio-castellano/order-analytics/internal/models"
)

// InMemoryDatasetRepository serves a dataset loaded once into memory. It is
// the process-wide cache for CSV-backed sessions and the fixture vehicle for
// tests.
type InMemoryDatasetRepository struct {
	orders  []models.Order
	lines   []models.OrderLine
	maxDate time.Time
}

// NewInMemoryDatasetRepository wraps an already loaded dataset.
func NewInMemoryDatasetRepository(ds *csvdata.Dataset) *InMemoryDatasetRepository {
	return &InMemoryDatasetRepository{
		orders:  ds.Orders,
		lines:   ds.OrderLines,
		maxDate: ds.MaxDate,
	}
}

func (r *InMemoryDatasetRepository) Orders() ([]models.Order, error) {
	return r.orders, nil
}

func (r *InMemoryDatasetRepository) OrderLines() ([]models.OrderLine, error) {
	return r.lines, nil
}

func (r *InMemoryDatasetRepository) ReferenceDate() time.Time {
	return r.maxDate
}

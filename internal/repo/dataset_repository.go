package repo

import (
	"time"

	"github.com/rogerio-castellano/order-analytics/internal/models"
)

// DatasetRepository serves the read-only session dataset the analytics engine
// runs over. Implementations must return data safe for concurrent reads;
// nothing writes back after load.
type DatasetRepository interface {
	Orders() ([]models.Order, error)
	OrderLines() ([]models.OrderLine, error)
	// ReferenceDate anchors relative period resolution, normally the newest
	// created_at in the dataset.
	ReferenceDate() time.Time
}

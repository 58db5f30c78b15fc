package models

import "time"

// OrderLine is a line item left-joined with its product and order. Lines with
// no matching product keep zero-valued product fields so aggregates treat the
// missing data as 0 instead of propagating nulls.
type OrderLine struct {
	ItemID      int       `json:"item_id"`
	OrderID     int       `json:"order_id"`
	ProductID   int       `json:"product_id"`
	SalePrice   float64   `json:"sale_price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	Department  string    `json:"department"`
	Cost        float64   `json:"cost"`
	RetailPrice float64   `json:"retail_price"`
	Gender      string    `json:"gender"`
}

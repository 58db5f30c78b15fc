package models

import "time"

type OrderItem struct {
	ID        int       `json:"id"`
	OrderID   int       `json:"order_id"`
	ProductID int       `json:"product_id"`
	SalePrice float64   `json:"sale_price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

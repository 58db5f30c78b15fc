package models

// Product represents a catalog entry referenced by order line items.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Department  string  `json:"department"`
	Cost        float64 `json:"cost"`
	RetailPrice float64 `json:"retail_price"`
}

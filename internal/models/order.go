package models

import "time"

// Order represents one order joined with the country and traffic source of
// the user who placed it. Orders without a matching user are dropped at load
// time because both fields are required for filtering.
type Order struct {
	ID            int       `json:"order_id"`
	UserID        int       `json:"user_id"`
	Status        string    `json:"status"`
	Gender        string    `json:"gender"`
	CreatedAt     time.Time `json:"created_at"`
	Country       string    `json:"country"`
	TrafficSource string    `json:"traffic_source"`
}

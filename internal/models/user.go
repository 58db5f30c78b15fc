package models

import "time"

type User struct {
	ID            int       `json:"id"`
	Country       string    `json:"country"`
	TrafficSource string    `json:"traffic_source"`
	CreatedAt     time.Time `json:"created_at"`
}

package models

import "time"

type Trip struct {
	ID           int        `json:"id"`
	ProviderID   int        `json:"provider_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	Price        float64    `json:"price"`
	DurationDays int        `json:"duration_days"`
	Capacity     int        `json:"capacity"`
	Images       []string   `json:"images"`
	Status       string     `json:"status"`
	AvgRating    float64    `json:"avg_rating"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

const (
	TripStatusActive   = "active"
	TripStatusArchived = "archived"
)

type TripFilter struct {
	City     string  `json:"city"`
	Country  string  `json:"country"`
	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`
	Sort     string  `json:"sort"`
	Page     int     `json:"page"`
	Limit    int     `json:"limit"`
}

type TripListResponse struct {
	Trips      []Trip `json:"trips"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
}

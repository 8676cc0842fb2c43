package models

import "time"

type Booking struct {
	ID         int        `json:"id"`
	Reference  string     `json:"reference"`
	UserID     int        `json:"user_id"`
	TripID     int        `json:"trip_id"`
	Status     string     `json:"status"`
	StartDate  time.Time  `json:"start_date"`
	Seats      int        `json:"seats"`
	TotalPrice float64    `json:"total_price"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type BookingStatusRequest struct {
	Status string `json:"status"`
}

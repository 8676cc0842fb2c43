package handlers

import (
	"testing"

	"tripgoBack/internal/models"
)

func TestCanManageBooking(t *testing.T) {
	booking := models.Booking{ID: 10, UserID: 7, TripID: 3}

	if !canManageBooking(booking, 0, 7, models.RoleClient) {
		t.Fatal("owner must be allowed")
	}
	if !canManageBooking(booking, 0, 1, models.RoleAdmin) {
		t.Fatal("admin must be allowed")
	}
	if !canManageBooking(booking, 5, 5, models.RoleProvider) {
		t.Fatal("trip provider must be allowed")
	}
	if canManageBooking(booking, 5, 8, models.RoleProvider) {
		t.Fatal("provider of another trip must be rejected")
	}
	if canManageBooking(booking, 0, 8, models.RoleClient) {
		t.Fatal("another client must be rejected")
	}
	if canManageBooking(booking, 0, 0, "") {
		t.Fatal("unauthenticated requester must be rejected")
	}
}

package services

import (
	"testing"

	"tripgoBack/internal/models"
)

func TestCanTransitionBooking(t *testing.T) {
	if !CanTransitionBooking(models.BookingStatusPending, models.BookingStatusConfirmed) {
		t.Fatal("expected pending -> confirmed to be allowed")
	}
	if !CanTransitionBooking(models.BookingStatusPending, models.BookingStatusCancelled) {
		t.Fatal("expected pending -> cancelled to be allowed")
	}
	if !CanTransitionBooking(models.BookingStatusConfirmed, models.BookingStatusCompleted) {
		t.Fatal("expected confirmed -> completed to be allowed")
	}
	if !CanTransitionBooking(models.BookingStatusConfirmed, models.BookingStatusCancelled) {
		t.Fatal("expected confirmed -> cancelled to be allowed")
	}
	if CanTransitionBooking(models.BookingStatusPending, models.BookingStatusCompleted) {
		t.Fatal("unexpected pending -> completed allowed")
	}
	if CanTransitionBooking(models.BookingStatusCancelled, models.BookingStatusConfirmed) {
		t.Fatal("cancelled must be terminal")
	}
	if CanTransitionBooking(models.BookingStatusCompleted, models.BookingStatusCancelled) {
		t.Fatal("completed must be terminal")
	}
	if CanTransitionBooking("unknown", models.BookingStatusConfirmed) {
		t.Fatal("unknown status must not transition")
	}
}

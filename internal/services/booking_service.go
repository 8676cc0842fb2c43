package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tripgoBack/internal/models"
	"tripgoBack/internal/repositories"
)

type BookingService struct {
	BookingRepo *repositories.BookingRepository
	TripRepo    *repositories.TripRepository
	Push        *PushService
}

// bookingTransitions lists the allowed status moves. Cancelled and
// completed are terminal.
var bookingTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

func CanTransitionBooking(from, to string) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s *BookingService) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	trip, err := s.TripRepo.GetTripByID(ctx, b.TripID)
	if err != nil {
		return models.Booking{}, err
	}
	if trip.Status != models.TripStatusActive {
		return models.Booking{}, models.ErrTripNotFound
	}

	if b.Seats < 1 {
		b.Seats = 1
	}
	taken, err := s.BookingRepo.SeatsTaken(ctx, b.TripID, b.StartDate)
	if err != nil {
		return models.Booking{}, err
	}
	if taken+b.Seats > trip.Capacity {
		return models.Booking{}, models.ErrNotEnoughSeats
	}

	b.Reference = uuid.New().String()
	b.Status = models.BookingStatusPending
	b.TotalPrice = trip.Price * float64(b.Seats)

	return s.BookingRepo.CreateBooking(ctx, b)
}

func (s *BookingService) GetBookingByID(ctx context.Context, id int) (models.Booking, error) {
	return s.BookingRepo.GetBookingByID(ctx, id)
}

// TripProviderID returns the owner of the booked trip.
func (s *BookingService) TripProviderID(ctx context.Context, tripID int) (int, error) {
	trip, err := s.TripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return 0, err
	}
	return trip.ProviderID, nil
}

func (s *BookingService) GetBookingsByUserID(ctx context.Context, userID int) ([]models.Booking, error) {
	return s.BookingRepo.GetBookingsByUserID(ctx, userID)
}

func (s *BookingService) GetBookingsByTripID(ctx context.Context, tripID int) ([]models.Booking, error) {
	return s.BookingRepo.GetBookingsByTripID(ctx, tripID)
}

func (s *BookingService) UpdateBookingStatus(ctx context.Context, id int, status string) (models.Booking, error) {
	booking, err := s.BookingRepo.GetBookingByID(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}

	if !CanTransitionBooking(booking.Status, status) {
		return models.Booking{}, models.ErrInvalidStatusChange
	}

	updated, err := s.BookingRepo.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		return models.Booking{}, err
	}

	s.Push.SendToUser(ctx, updated.UserID,
		"Booking update",
		fmt.Sprintf("Booking %s is now %s", updated.Reference, updated.Status),
		map[string]string{"booking_id": fmt.Sprintf("%d", updated.ID), "status": updated.Status},
	)

	return updated, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int) error {
	return s.BookingRepo.DeleteBooking(ctx, id)
}

package services

import (
	"context"

	"tripgoBack/internal/models"
	"tripgoBack/internal/repositories"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type TripService struct {
	TripRepo *repositories.TripRepository
}

func (s *TripService) CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	if trip.Status == "" {
		trip.Status = models.TripStatusActive
	}
	return s.TripRepo.CreateTrip(ctx, trip)
}

func (s *TripService) GetTripByID(ctx context.Context, id int) (models.Trip, error) {
	return s.TripRepo.GetTripByID(ctx, id)
}

// UpdateTrip applies only the provided fields on top of the stored trip.
func (s *TripService) UpdateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	existing, err := s.TripRepo.GetTripByID(ctx, trip.ID)
	if err != nil {
		return models.Trip{}, err
	}

	if trip.Name == "" {
		trip.Name = existing.Name
	}
	if trip.Description == "" {
		trip.Description = existing.Description
	}
	if trip.City == "" {
		trip.City = existing.City
	}
	if trip.Country == "" {
		trip.Country = existing.Country
	}
	if trip.Price == 0 {
		trip.Price = existing.Price
	}
	if trip.DurationDays == 0 {
		trip.DurationDays = existing.DurationDays
	}
	if trip.Capacity == 0 {
		trip.Capacity = existing.Capacity
	}
	if trip.Images == nil {
		trip.Images = existing.Images
	}
	if trip.Status == "" {
		trip.Status = existing.Status
	}
	if trip.AvgRating == 0 {
		trip.AvgRating = existing.AvgRating
	}
	trip.ProviderID = existing.ProviderID

	return s.TripRepo.UpdateTrip(ctx, trip)
}

func (s *TripService) DeleteTrip(ctx context.Context, id int) error {
	return s.TripRepo.DeleteTrip(ctx, id)
}

func (s *TripService) GetTrips(ctx context.Context, filter models.TripFilter) (models.TripListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	trips, total, err := s.TripRepo.GetTripsWithFilters(ctx, filter)
	if err != nil {
		return models.TripListResponse{}, err
	}

	totalPages := total / filter.Limit
	if total%filter.Limit != 0 {
		totalPages++
	}

	return models.TripListResponse{
		Trips:      trips,
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages,
	}, nil
}

func (s *TripService) GetTripsByProviderID(ctx context.Context, providerID int) ([]models.Trip, error) {
	return s.TripRepo.GetTripsByProviderID(ctx, providerID)
}

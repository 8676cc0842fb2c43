package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"tripgoBack/internal/models"
	"tripgoBack/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
}

// canManageBooking reports whether the requester may read or transition
// the booking: admins, the booking owner and the booked trip's provider.
func canManageBooking(b models.Booking, tripProviderID, requesterID int, requesterRole string) bool {
	if requesterRole == models.RoleAdmin {
		return true
	}
	if b.UserID == requesterID {
		return true
	}
	return requesterRole == models.RoleProvider && tripProviderID == requesterID
}

func (h *BookingHandler) authorizeBooking(r *http.Request, booking models.Booking) bool {
	requesterID, _ := r.Context().Value("user_id").(int)
	requesterRole, _ := r.Context().Value("role").(string)

	providerID := 0
	if requesterRole == models.RoleProvider {
		providerID, _ = h.Service.TripProviderID(r.Context(), booking.TripID)
	}
	return canManageBooking(booking, providerID, requesterID, requesterRole)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if booking.UserID == 0 {
		booking.UserID, _ = r.Context().Value("user_id").(int)
	}
	if booking.TripID == 0 || booking.StartDate.IsZero() {
		http.Error(w, "trip_id and start_date are required", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateBooking(r.Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrTripNotFound):
			http.Error(w, "Trip not found", http.StatusNotFound)
		case errors.Is(err, models.ErrNotEnoughSeats):
			http.Error(w, "Not enough seats for the requested date", http.StatusConflict)
		case isForeignKeyConstraintError(err):
			http.Error(w, "user or trip does not exist", http.StatusBadRequest)
		default:
			log.Printf("CreateBooking error: %v", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.GetBookingByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			http.Error(w, "Booking not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to retrieve booking", http.StatusInternalServerError)
		return
	}

	if !h.authorizeBooking(r, booking) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) GetBookingsByUserID(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "user_id")
	userID, err := strconv.Atoi(idStr)
	if err != nil || userID <= 0 {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	requesterID, _ := r.Context().Value("user_id").(int)
	requesterRole, _ := r.Context().Value("role").(string)
	if requesterRole != models.RoleAdmin && requesterID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	bookings, err := h.Service.GetBookingsByUserID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to retrieve bookings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) GetBookingsByTripID(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "trip_id")
	tripID, err := strconv.Atoi(idStr)
	if err != nil || tripID <= 0 {
		http.Error(w, "Invalid trip ID", http.StatusBadRequest)
		return
	}

	bookings, err := h.Service.GetBookingsByTripID(r.Context(), tripID)
	if err != nil {
		http.Error(w, "Failed to retrieve bookings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	var req models.BookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.GetBookingByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			http.Error(w, "Booking not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	if !h.authorizeBooking(r, booking) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	updated, err := h.Service.UpdateBookingStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrBookingNotFound):
			http.Error(w, "Booking not found", http.StatusNotFound)
		case errors.Is(err, models.ErrInvalidStatusChange):
			http.Error(w, "Invalid status change", http.StatusBadRequest)
		default:
			log.Printf("UpdateBookingStatus error: %v", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteBooking(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			http.Error(w, "Booking not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"tripgoBack/internal/models"
	"tripgoBack/internal/services"
	"tripgoBack/utils"
)

type TripHandler struct {
	Service *services.TripService
}

func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var trip models.Trip

	contentType := r.Header.Get("Content-Type")
	if len(contentType) >= 19 && contentType[:19] == "multipart/form-data" {
		if err := h.parseTripForm(r, &trip); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	if trip.ProviderID == 0 {
		trip.ProviderID, _ = r.Context().Value("user_id").(int)
	}
	if trip.Name == "" || trip.Price <= 0 || trip.Capacity <= 0 {
		http.Error(w, "name, price and capacity are required", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateTrip(r.Context(), trip)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			http.Error(w, "provider does not exist", http.StatusBadRequest)
			return
		}
		log.Printf("CreateTrip error: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *TripHandler) parseTripForm(r *http.Request, trip *models.Trip) error {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return errors.New("failed to parse form")
	}

	trip.Name = r.FormValue("name")
	trip.Description = r.FormValue("description")
	trip.City = r.FormValue("city")
	trip.Country = r.FormValue("country")
	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New("invalid price")
		}
		trip.Price = price
	}
	if v := r.FormValue("duration_days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("invalid duration_days")
		}
		trip.DurationDays = days
	}
	if v := r.FormValue("capacity"); v != "" {
		capVal, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("invalid capacity")
		}
		trip.Capacity = capVal
	}

	if r.MultipartForm == nil {
		return nil
	}
	for _, fh := range r.MultipartForm.File["images"] {
		file, err := fh.Open()
		if err != nil {
			return errors.New("failed to open image")
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return errors.New("failed to read image")
		}

		ext := filepath.Ext(fh.Filename)
		fileName := fmt.Sprintf("trip_%d%s", time.Now().UnixNano(), ext)
		url, err := utils.UploadFileToS3(data, fileName, "trips", contentTypeForExt(ext))
		if err != nil {
			log.Printf("trip image upload: %v", err)
			return errors.New("failed to store image")
		}
		trip.Images = append(trip.Images, url)
	}
	return nil
}

func (h *TripHandler) GetTripByID(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid trip ID", http.StatusBadRequest)
		return
	}

	trip, err := h.Service.GetTripByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrTripNotFound) {
			http.Error(w, "Trip not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to retrieve trip", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trip)
}

func (h *TripHandler) GetTrips(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.TripFilter{
		City:    q.Get("city"),
		Country: q.Get("country"),
		Sort:    q.Get("sort"),
	}
	if v := q.Get("price_min"); v != "" {
		filter.PriceMin, _ = strconv.ParseFloat(v, 64)
	}
	if v := q.Get("price_max"); v != "" {
		filter.PriceMax, _ = strconv.ParseFloat(v, 64)
	}
	if v := q.Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := q.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	resp, err := h.Service.GetTrips(r.Context(), filter)
	if err != nil {
		log.Printf("GetTrips error: %v", err)
		http.Error(w, "Failed to retrieve trips", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *TripHandler) GetTripsByProviderID(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "provider_id")
	providerID, err := strconv.Atoi(idStr)
	if err != nil || providerID <= 0 {
		http.Error(w, "Invalid provider ID", http.StatusBadRequest)
		return
	}

	trips, err := h.Service.GetTripsByProviderID(r.Context(), providerID)
	if err != nil {
		http.Error(w, "Failed to retrieve trips", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trips)
}

func (h *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid trip ID", http.StatusBadRequest)
		return
	}

	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	trip.ID = id

	updated, err := h.Service.UpdateTrip(r.Context(), trip)
	if err != nil {
		if errors.Is(err, models.ErrTripNotFound) {
			http.Error(w, "Trip not found", http.StatusNotFound)
			return
		}
		log.Printf("UpdateTrip error: %v", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
}

func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid trip ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteTrip(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrTripNotFound) {
			http.Error(w, "Trip not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

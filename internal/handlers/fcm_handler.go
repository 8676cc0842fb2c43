package handlers

import (
	"encoding/json"
	"net/http"

	"tripgoBack/internal/services"
)

type FCMHandler struct {
	Push *services.PushService
}

func (h *FCMHandler) SaveToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int    `json:"user_id"`
		Token  string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == 0 {
		req.UserID, _ = r.Context().Value("user_id").(int)
	}
	if req.UserID == 0 {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	if err := h.Push.SaveToken(r.Context(), req.UserID, req.Token); err != nil {
		if isForeignKeyConstraintError(err) {
			http.Error(w, "user does not exist", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to save token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "token saved"})
}

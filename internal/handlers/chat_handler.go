package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tripgoBack/internal/models"
	"tripgoBack/internal/services"
)

type ChatHandler struct {
	ChatService *services.ChatService
}

func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var chat models.Chat
	if err := json.NewDecoder(r.Body).Decode(&chat); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if chat.User1ID == 0 || chat.User2ID == 0 || chat.User1ID == chat.User2ID {
		http.Error(w, "two distinct user IDs are required", http.StatusBadRequest)
		return
	}

	createdChat, err := h.ChatService.CreateChat(r.Context(), chat)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			http.Error(w, "user does not exist", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createdChat)
}

func (h *ChatHandler) GetChatByID(w http.ResponseWriter, r *http.Request) {
	idParam := getParam(r, "id")
	id, err := strconv.Atoi(idParam)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	chat, err := h.ChatService.GetChatByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrChatNotFound) {
			http.Error(w, "Chat not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to retrieve chat", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chat)
}

func (h *ChatHandler) GetChatsByUserID(w http.ResponseWriter, r *http.Request) {
	idParam := getParam(r, "user_id")
	userID, err := strconv.Atoi(idParam)
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

	chats, err := h.ChatService.GetChatsByUserID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to retrieve chats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"chats": chats})
}

func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	idParam := getParam(r, "id")
	id, err := strconv.Atoi(idParam)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	if err := h.ChatService.DeleteChat(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrChatNotFound) {
			http.Error(w, "Chat not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete chat", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

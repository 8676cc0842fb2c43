package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tripgoBack/internal/models"
	"tripgoBack/internal/services"
)

type MessageHandler struct {
	MessageService *services.MessageService
}

func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var message models.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if message.SenderID == 0 {
		message.SenderID, _ = r.Context().Value("user_id").(int)
	}
	if message.SenderID == 0 || message.ReceiverID == 0 || message.Text == "" {
		http.Error(w, "sender_id, receiver_id and text are required", http.StatusBadRequest)
		return
	}

	created, err := h.MessageService.CreateMessage(r.Context(), message)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			http.Error(w, "user does not exist", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to create message", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *MessageHandler) GetMessagesForChat(w http.ResponseWriter, r *http.Request) {
	chatIDStr := getParam(r, "chatId")
	chatID, err := strconv.Atoi(chatIDStr)
	if err != nil || chatID <= 0 {
		http.Error(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	messages, err := h.MessageService.GetMessagesForChat(r.Context(), chatID, page, pageSize)
	if err != nil {
		http.Error(w, "Failed to retrieve messages", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "messageId")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	if err := h.MessageService.DeleteMessage(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrMessageNotFound) {
			http.Error(w, "Message not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete message", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

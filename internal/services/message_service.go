package services

import (
	"context"
	"strconv"

	"tripgoBack/internal/models"
	"tripgoBack/internal/repositories"
)

type MessageService struct {
	MessageRepo *repositories.MessageRepository
	Push        *PushService
}

func (s *MessageService) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	created, err := s.MessageRepo.CreateMessage(ctx, message)
	if err != nil {
		return models.Message{}, err
	}

	s.Push.SendToUser(ctx, created.ReceiverID, "New message", created.Text,
		map[string]string{"chat_id": strconv.Itoa(created.ChatID)})

	return created, nil
}

func (s *MessageService) GetMessagesForChat(ctx context.Context, chatID, page, pageSize int) ([]models.Message, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	return s.MessageRepo.GetMessagesForChat(ctx, chatID, page, pageSize)
}

func (s *MessageService) DeleteMessage(ctx context.Context, id int) error {
	return s.MessageRepo.DeleteMessage(ctx, id)
}

package services

import (
	"context"

	"tripgoBack/internal/models"
	"tripgoBack/internal/repositories"
)

type ChatService struct {
	ChatRepo *repositories.ChatRepository
}

// CreateChat reuses an existing chat between the two users when one is
// already open instead of creating a duplicate.
func (s *ChatService) CreateChat(ctx context.Context, chat models.Chat) (models.Chat, error) {
	existingID, err := s.ChatRepo.GetChatBetweenUsers(ctx, chat.User1ID, chat.User2ID)
	if err != nil {
		return models.Chat{}, err
	}
	if existingID != 0 {
		return s.ChatRepo.GetChatByID(ctx, existingID)
	}

	chatID, err := s.ChatRepo.CreateChat(ctx, chat)
	if err != nil {
		return models.Chat{}, err
	}
	return s.ChatRepo.GetChatByID(ctx, chatID)
}

func (s *ChatService) GetChatByID(ctx context.Context, id int) (models.Chat, error) {
	return s.ChatRepo.GetChatByID(ctx, id)
}

func (s *ChatService) GetChatsByUserID(ctx context.Context, userID int) ([]models.Chat, error) {
	return s.ChatRepo.GetChatsByUserID(ctx, userID)
}

func (s *ChatService) DeleteChat(ctx context.Context, id int) error {
	return s.ChatRepo.DeleteChat(ctx, id)
}

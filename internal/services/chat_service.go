package services

import (
	"context"

	"turakBack/internal/models"
	"turakBack/internal/repositories"
)

type ChatService struct {
	ChatRepo *repositories.ChatRepository
}

func (s *ChatService) GetOrCreateChat(ctx context.Context, user1ID, user2ID int) (models.Chat, error) {
	if user1ID == user2ID || user1ID <= 0 || user2ID <= 0 {
		return models.Chat{}, models.ErrValidation
	}
	chatID, err := s.ChatRepo.GetOrCreateChat(ctx, user1ID, user2ID)
	if err != nil {
		return models.Chat{}, err
	}
	return s.ChatRepo.GetChatByID(ctx, chatID)
}

// GetChatByID returns the chat if the requester participates in it or is an
// admin.
func (s *ChatService) GetChatByID(ctx context.Context, id int, requester models.Requester) (models.Chat, error) {
	chat, err := s.ChatRepo.GetChatByID(ctx, id)
	if err != nil {
		return models.Chat{}, err
	}
	if !requester.IsAdmin() && requester.UserID != chat.User1ID && requester.UserID != chat.User2ID {
		return models.Chat{}, models.ErrForbidden
	}
	return chat, nil
}

func (s *ChatService) GetChatsForUser(ctx context.Context, userID int) ([]models.Chat, error) {
	return s.ChatRepo.GetChatsForUser(ctx, userID)
}

func (s *ChatService) DeleteChat(ctx context.Context, id int, requester models.Requester) error {
	chat, err := s.ChatRepo.GetChatByID(ctx, id)
	if err != nil {
		return err
	}
	if !requester.IsAdmin() && requester.UserID != chat.User1ID && requester.UserID != chat.User2ID {
		return models.ErrForbidden
	}
	return s.ChatRepo.DeleteChat(ctx, id)
}

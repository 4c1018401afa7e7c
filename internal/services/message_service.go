package services

import (
	"context"
	"strconv"
	"strings"

	"turakBack/internal/models"
)

// MessageStore is the slice of the message repository the service needs,
// kept as an interface so the access rules can be tested without a database.
type MessageStore interface {
	CreateMessage(ctx context.Context, msg models.Message) (models.Message, error)
	GetMessagesForChat(ctx context.Context, chatID, page, pageSize int) ([]models.Message, error)
	GetMessageByID(ctx context.Context, messageID int) (models.Message, error)
	MarkChatRead(ctx context.Context, chatID, userID int) error
	CountUnread(ctx context.Context, userID int) (int, error)
	DeleteMessage(ctx context.Context, messageID int) error
}

type ChatStore interface {
	GetOrCreateChat(ctx context.Context, user1ID, user2ID int) (int, error)
	GetChatByID(ctx context.Context, id int) (models.Chat, error)
}

type MessageService struct {
	MessageRepo MessageStore
	ChatRepo    ChatStore
	Push        *PushService
}

// CreateMessage persists a message, resolving (or creating) the chat between
// sender and receiver when no chat id is supplied.
func (s *MessageService) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	if msg.SenderID == msg.ReceiverID || msg.ReceiverID <= 0 || strings.TrimSpace(msg.Text) == "" {
		return models.Message{}, models.ErrValidation
	}

	if msg.ChatID == 0 {
		chatID, err := s.ChatRepo.GetOrCreateChat(ctx, msg.SenderID, msg.ReceiverID)
		if err != nil {
			return models.Message{}, err
		}
		msg.ChatID = chatID
	}

	created, err := s.MessageRepo.CreateMessage(ctx, msg)
	if err != nil {
		return models.Message{}, err
	}

	s.Push.SendToUser(ctx, created.ReceiverID, "New message", created.Text,
		map[string]string{"chat_id": strconv.Itoa(created.ChatID)})
	return created, nil
}

func (s *MessageService) isParticipant(ctx context.Context, chatID int, requester models.Requester) error {
	chat, err := s.ChatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		return err
	}
	if !requester.IsAdmin() && requester.UserID != chat.User1ID && requester.UserID != chat.User2ID {
		return models.ErrForbidden
	}
	return nil
}

// GetMessagesForChat returns a page of the chat's history; only participants
// and admins may read it.
func (s *MessageService) GetMessagesForChat(ctx context.Context, chatID, page, pageSize int, requester models.Requester) ([]models.Message, error) {
	if err := s.isParticipant(ctx, chatID, requester); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	return s.MessageRepo.GetMessagesForChat(ctx, chatID, page, pageSize)
}

// MarkChatRead marks every message addressed to the requester in the chat as
// read.
func (s *MessageService) MarkChatRead(ctx context.Context, chatID int, requester models.Requester) error {
	if err := s.isParticipant(ctx, chatID, requester); err != nil {
		return err
	}
	return s.MessageRepo.MarkChatRead(ctx, chatID, requester.UserID)
}

func (s *MessageService) CountUnread(ctx context.Context, userID int) (int, error) {
	return s.MessageRepo.CountUnread(ctx, userID)
}

// DeleteMessage removes a message; only its sender or an admin may do so.
func (s *MessageService) DeleteMessage(ctx context.Context, messageID int, requester models.Requester) error {
	msg, err := s.MessageRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return err
	}
	if !requester.IsAdmin() && requester.UserID != msg.SenderID {
		return models.ErrForbidden
	}
	return s.MessageRepo.DeleteMessage(ctx, messageID)
}

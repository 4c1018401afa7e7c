package services

import (
	"context"
	"errors"
	"testing"

	"turakBack/internal/models"
)

// fakeMessageStore holds one chat between users 10 and 20 with a message
// sent by 10.
type fakeMessageStore struct {
	messages    map[int]models.Message
	listCalls   int
	deleteCalls int
}

func (f *fakeMessageStore) CreateMessage(_ context.Context, msg models.Message) (models.Message, error) {
	msg.ID = len(f.messages) + 1
	f.messages[msg.ID] = msg
	return msg, nil
}

func (f *fakeMessageStore) GetMessagesForChat(_ context.Context, chatID, page, pageSize int) ([]models.Message, error) {
	f.listCalls++
	var out []models.Message
	for _, m := range f.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) GetMessageByID(_ context.Context, messageID int) (models.Message, error) {
	m, ok := f.messages[messageID]
	if !ok {
		return models.Message{}, models.ErrNoRecord
	}
	return m, nil
}

func (f *fakeMessageStore) MarkChatRead(_ context.Context, chatID, userID int) error {
	return nil
}

func (f *fakeMessageStore) CountUnread(_ context.Context, userID int) (int, error) {
	return 0, nil
}

func (f *fakeMessageStore) DeleteMessage(_ context.Context, messageID int) error {
	f.deleteCalls++
	delete(f.messages, messageID)
	return nil
}

type fakeChatStore struct{}

func (f *fakeChatStore) GetOrCreateChat(_ context.Context, user1ID, user2ID int) (int, error) {
	return 1, nil
}

func (f *fakeChatStore) GetChatByID(_ context.Context, id int) (models.Chat, error) {
	if id != 1 {
		return models.Chat{}, models.ErrChatNotFound
	}
	return models.Chat{ID: 1, User1ID: 10, User2ID: 20}, nil
}

func newMessageService() (*MessageService, *fakeMessageStore) {
	store := &fakeMessageStore{messages: map[int]models.Message{
		5: {ID: 5, ChatID: 1, SenderID: 10, ReceiverID: 20, Text: "hello"},
	}}
	return &MessageService{MessageRepo: store, ChatRepo: &fakeChatStore{}}, store
}

func TestGetMessagesForChatMembership(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		requester models.Requester
		wantErr   error
	}{
		{"participant", models.Requester{UserID: 10, Role: models.RoleUser}, nil},
		{"other participant", models.Requester{UserID: 20, Role: models.RoleUser}, nil},
		{"stranger", models.Requester{UserID: 30, Role: models.RoleUser}, models.ErrForbidden},
		{"admin", models.Requester{UserID: 99, Role: models.RoleAdmin}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newMessageService()
			_, err := svc.GetMessagesForChat(ctx, 1, 1, 50, tt.requester)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && store.listCalls != 0 {
				t.Fatalf("forbidden read still hit the store")
			}
		})
	}
}

func TestGetMessagesForChatUnknownChat(t *testing.T) {
	svc, _ := newMessageService()
	_, err := svc.GetMessagesForChat(context.Background(), 7, 1, 50,
		models.Requester{UserID: 10, Role: models.RoleUser})
	if !errors.Is(err, models.ErrChatNotFound) {
		t.Fatalf("err = %v, want ErrChatNotFound", err)
	}
}

func TestDeleteMessageOwnership(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		requester models.Requester
		wantErr   error
	}{
		{"sender", models.Requester{UserID: 10, Role: models.RoleUser}, nil},
		{"receiver", models.Requester{UserID: 20, Role: models.RoleUser}, models.ErrForbidden},
		{"stranger", models.Requester{UserID: 30, Role: models.RoleUser}, models.ErrForbidden},
		{"admin", models.Requester{UserID: 99, Role: models.RoleAdmin}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newMessageService()
			err := svc.DeleteMessage(ctx, 5, tt.requester)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && store.deleteCalls != 0 {
				t.Fatalf("forbidden delete still hit the store")
			}
		})
	}
}

func TestDeleteMessageUnknownID(t *testing.T) {
	svc, _ := newMessageService()
	err := svc.DeleteMessage(context.Background(), 42,
		models.Requester{UserID: 10, Role: models.RoleUser})
	if !errors.Is(err, models.ErrNoRecord) {
		t.Fatalf("err = %v, want ErrNoRecord", err)
	}
}

func TestMarkChatReadMembership(t *testing.T) {
	svc, _ := newMessageService()
	err := svc.MarkChatRead(context.Background(), 1,
		models.Requester{UserID: 30, Role: models.RoleUser})
	if !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if err := svc.MarkChatRead(context.Background(), 1,
		models.Requester{UserID: 20, Role: models.RoleUser}); err != nil {
		t.Fatalf("participant mark read failed: %v", err)
	}
}

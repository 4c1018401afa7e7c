package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"turakBack/internal/models"
)

type MessageRepository struct {
	DB *sql.DB
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	err := r.DB.QueryRowContext(ctx, `
        INSERT INTO messages (chat_id, sender_id, receiver_id, text, is_read, created_at)
        VALUES ($1, $2, $3, $4, FALSE, $5)
        RETURNING id`,
		msg.ChatID, msg.SenderID, msg.ReceiverID, msg.Text, msg.CreatedAt,
	).Scan(&msg.ID)
	if err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

func (r *MessageRepository) GetMessagesForChat(ctx context.Context, chatID, page, pageSize int) ([]models.Message, error) {
	offset := (page - 1) * pageSize
	query := `
        SELECT id, chat_id, sender_id, receiver_id, text, is_read, created_at
        FROM messages WHERE chat_id = $1
        ORDER BY created_at ASC
        LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, chatID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var msg models.Message
		err := rows.Scan(&msg.ID, &msg.ChatID, &msg.SenderID, &msg.ReceiverID, &msg.Text, &msg.IsRead, &msg.CreatedAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkChatRead flags every message addressed to the user in this chat as read.
func (r *MessageRepository) MarkChatRead(ctx context.Context, chatID, userID int) error {
	_, err := r.DB.ExecContext(ctx, `
        UPDATE messages SET is_read = TRUE
        WHERE chat_id = $1 AND receiver_id = $2 AND is_read = FALSE`,
		chatID, userID)
	return err
}

func (r *MessageRepository) CountUnread(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `
        SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND is_read = FALSE`,
		userID).Scan(&count)
	return count, err
}

func (r *MessageRepository) GetMessageByID(ctx context.Context, messageID int) (models.Message, error) {
	var msg models.Message
	err := r.DB.QueryRowContext(ctx, `
        SELECT id, chat_id, sender_id, receiver_id, text, is_read, created_at
        FROM messages WHERE id = $1`,
		messageID).Scan(&msg.ID, &msg.ChatID, &msg.SenderID, &msg.ReceiverID, &msg.Text, &msg.IsRead, &msg.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

func (r *MessageRepository) DeleteMessage(ctx context.Context, messageID int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, messageID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrNoRecord
	}
	return nil
}

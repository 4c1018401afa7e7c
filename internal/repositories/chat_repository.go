package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"turakBack/internal/models"
)

type ChatRepository struct {
	DB *sql.DB
}

// GetOrCreateChat finds the chat between two users or creates it. The pair
// is stored ordered so the UNIQUE constraint catches concurrent creation;
// on a duplicate insert the row is re-read.
func (r *ChatRepository) GetOrCreateChat(ctx context.Context, user1ID, user2ID int) (int, error) {
	if user1ID > user2ID {
		user1ID, user2ID = user2ID, user1ID
	}

	var chatID int
	err := r.DB.QueryRowContext(ctx, `
        SELECT id FROM chats WHERE user1_id = $1 AND user2_id = $2`,
		user1ID, user2ID).Scan(&chatID)
	if err == nil {
		return chatID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = r.DB.QueryRowContext(ctx, `
        INSERT INTO chats (user1_id, user2_id, created_at) VALUES ($1, $2, $3)
        RETURNING id`,
		user1ID, user2ID, time.Now()).Scan(&chatID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return r.GetOrCreateChat(ctx, user1ID, user2ID)
		}
		return 0, err
	}
	return chatID, nil
}

func (r *ChatRepository) GetChatByID(ctx context.Context, id int) (models.Chat, error) {
	var chat models.Chat
	query := `
        SELECT c.id,
               c.user1_id, u1.name, u1.surname, u1.avatar_path,
               c.user2_id, u2.name, u2.surname, u2.avatar_path,
               c.created_at
        FROM chats c
        JOIN users u1 ON c.user1_id = u1.id
        JOIN users u2 ON c.user2_id = u2.id
        WHERE c.id = $1`

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&chat.ID,
		&chat.User1ID, &chat.User1.Name, &chat.User1.Surname, &chat.User1.AvatarPath,
		&chat.User2ID, &chat.User2.Name, &chat.User2.Surname, &chat.User2.AvatarPath,
		&chat.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Chat{}, models.ErrChatNotFound
	}
	if err != nil {
		return models.Chat{}, err
	}
	return chat, nil
}

// GetChatsForUser lists the user's chats with last-message preview and the
// count of messages not yet read by this user, most recent activity first.
func (r *ChatRepository) GetChatsForUser(ctx context.Context, userID int) ([]models.Chat, error) {
	query := `
        WITH last_messages AS (
            SELECT DISTINCT ON (chat_id) chat_id, text, created_at
            FROM messages
            ORDER BY chat_id, created_at DESC
        )
        SELECT c.id,
               c.user1_id, u1.name, u1.surname, u1.avatar_path,
               c.user2_id, u2.name, u2.surname, u2.avatar_path,
               COALESCE(lm.text, '') AS last_message,
               lm.created_at        AS last_message_at,
               (SELECT COUNT(*) FROM messages m
                 WHERE m.chat_id = c.id AND m.receiver_id = $1 AND m.is_read = FALSE) AS unread_count,
               c.created_at
        FROM chats c
        JOIN users u1 ON c.user1_id = u1.id
        JOIN users u2 ON c.user2_id = u2.id
        LEFT JOIN last_messages lm ON lm.chat_id = c.id
        WHERE c.user1_id = $1 OR c.user2_id = $1
        ORDER BY COALESCE(lm.created_at, c.created_at) DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := []models.Chat{}
	for rows.Next() {
		var chat models.Chat
		err := rows.Scan(
			&chat.ID,
			&chat.User1ID, &chat.User1.Name, &chat.User1.Surname, &chat.User1.AvatarPath,
			&chat.User2ID, &chat.User2.Name, &chat.User2.Surname, &chat.User2.AvatarPath,
			&chat.LastMessage, &chat.LastMessageAt, &chat.UnreadCount,
			&chat.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *ChatRepository) DeleteChat(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM chats WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrChatNotFound
	}
	return nil
}

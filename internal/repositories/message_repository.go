package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tripgoBack/internal/models"
)

type MessageRepository struct {
	Db *sql.DB
}

// CreateMessage persists a message, creating the chat between the two
// users first if none exists yet.
func (r *MessageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	var chatID int
	queryChat := `
        SELECT id
        FROM chats
        WHERE (user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)
        LIMIT 1`
	err := r.Db.QueryRowContext(ctx, queryChat, message.SenderID, message.ReceiverID, message.ReceiverID, message.SenderID).Scan(&chatID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			createChatQuery := `
                INSERT INTO chats (user1_id, user2_id, created_at)
                VALUES (?, ?, ?)`
			res, err := r.Db.ExecContext(ctx, createChatQuery, message.SenderID, message.ReceiverID, time.Now())
			if err != nil {
				return models.Message{}, err
			}
			newChatID, err := res.LastInsertId()
			if err != nil {
				return models.Message{}, err
			}
			chatID = int(newChatID)
		} else {
			return models.Message{}, err
		}
	}

	message.ChatID = chatID
	message.CreatedAt = time.Now()

	insertMessageQuery := `
        INSERT INTO messages (chat_id, sender_id, receiver_id, text, created_at)
        VALUES (?, ?, ?, ?, ?)`
	res, err := r.Db.ExecContext(ctx, insertMessageQuery, chatID, message.SenderID, message.ReceiverID, message.Text, message.CreatedAt)
	if err != nil {
		return models.Message{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Message{}, err
	}
	message.ID = int(id)
	return message, nil
}

func (r *MessageRepository) GetMessagesForChat(ctx context.Context, chatID, page, pageSize int) ([]models.Message, error) {
	var messages []models.Message
	offset := (page - 1) * pageSize
	query := `SELECT id, chat_id, sender_id, receiver_id, text, created_at FROM messages WHERE chat_id = ? ORDER BY created_at ASC LIMIT ? OFFSET ?`

	rows, err := r.Db.QueryContext(ctx, query, chatID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var message models.Message
		err := rows.Scan(&message.ID, &message.ChatID, &message.SenderID, &message.ReceiverID, &message.Text, &message.CreatedAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) DeleteMessage(ctx context.Context, id int) error {
	query := `DELETE FROM messages WHERE id = ?`
	result, err := r.Db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrMessageNotFound
	}
	return nil
}

package services

import (
	"context"
	"database/sql"
	"log"

	"firebase.google.com/go/messaging"
)

// PushService sends FCM notifications to users by their registered
// device token. A nil client disables pushes without touching callers.
type PushService struct {
	Client *messaging.Client
	DB     *sql.DB
}

func (s *PushService) SaveToken(ctx context.Context, userID int, token string) error {
	query := `
        INSERT INTO device_tokens (user_id, token)
        VALUES (?, ?)
        ON DUPLICATE KEY UPDATE token = VALUES(token)
    `
	_, err := s.DB.ExecContext(ctx, query, userID, token)
	return err
}

func (s *PushService) tokenByUserID(ctx context.Context, userID int) (string, error) {
	var token string
	err := s.DB.QueryRowContext(ctx, `SELECT token FROM device_tokens WHERE user_id = ?`, userID).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return token, err
}

func (s *PushService) SendToUser(ctx context.Context, userID int, title, body string, data map[string]string) {
	if s == nil || s.Client == nil {
		return
	}

	token, err := s.tokenByUserID(ctx, userID)
	if err != nil {
		log.Printf("push: token lookup for user %d: %v", userID, err)
		return
	}
	if token == "" {
		return
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	if _, err := s.Client.Send(ctx, message); err != nil {
		log.Printf("push: send to user %d: %v", userID, err)
	}
}

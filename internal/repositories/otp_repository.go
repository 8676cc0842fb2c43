package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tripgoBack/internal/models"
)

// OTPRepository keeps password-reset codes in redis so expiry falls out
// of the key TTL instead of a cleanup job.
type OTPRepository struct {
	RDB *redis.Client
}

func resetCodeKey(email string) string {
	return fmt.Sprintf("reset_code:%s", email)
}

func (r *OTPRepository) SetResetCode(ctx context.Context, email, code string, ttl time.Duration) error {
	return r.RDB.Set(ctx, resetCodeKey(email), code, ttl).Err()
}

func (r *OTPRepository) GetResetCode(ctx context.Context, email string) (string, error) {
	code, err := r.RDB.Get(ctx, resetCodeKey(email)).Result()
	if err == redis.Nil {
		return "", models.ErrResetCodeExpired
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (r *OTPRepository) DeleteResetCode(ctx context.Context, email string) error {
	return r.RDB.Del(ctx, resetCodeKey(email)).Err()
}

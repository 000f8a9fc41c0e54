package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type otpRedisRepository struct {
	client *redis.Client
}

func NewOTPRedisRepository(client *redis.Client) domain.OTPRepository {
	return &otpRedisRepository{client: client}
}

func otpKey(email string) string {
	return "otp:" + strings.ToLower(strings.TrimSpace(email))
}

// SavePendingUser stages the registration in Redis under the applicant's
// email. The row only moves to Postgres once the OTP checks out.
func (r *otpRedisRepository) SavePendingUser(ctx context.Context, otp string, pending domain.PendingUser, ttl time.Duration) error {
	payload, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to encode pending user: %w", err)
	}

	key := otpKey(pending.Email)
	data := map[string]string{
		"otp":     strings.TrimSpace(otp),
		"pending": string(payload),
	}

	if err := r.client.HSet(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("failed to stage pending user: %w", err)
	}
	if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set OTP expiry: %w", err)
	}
	return nil
}

func (r *otpRedisRepository) VerifyOTP(ctx context.Context, email, otp string) (*domain.PendingUser, bool, error) {
	vals, err := r.client.HGetAll(ctx, otpKey(email)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read OTP: %w", err)
	}
	if len(vals) == 0 {
		return nil, false, nil
	}

	if vals["otp"] != strings.TrimSpace(otp) {
		return nil, false, nil
	}

	var pending domain.PendingUser
	if err := json.Unmarshal([]byte(vals["pending"]), &pending); err != nil {
		return nil, false, fmt.Errorf("failed to decode pending user: %w", err)
	}
	return &pending, true, nil
}

func (r *otpRedisRepository) DeleteOTP(ctx context.Context, email string) error {
	return r.client.Del(ctx, otpKey(email)).Err()
}

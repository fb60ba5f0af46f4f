package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"math/rand"
	"time"

	"lottery-backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	VerificationKeyPrefix = "verify:"
	VerificationCodeTTL   = 5 * time.Minute
)

// VerificationService issues phone verification codes. No SMS gateway is
// wired; codes are kept in redis, when configured, for a later check.
type VerificationService struct {
	client *redis.Client
	code   func() string
}

func NewVerificationService(client *redis.Client) *VerificationService {
	return &VerificationService{
		client: client,
		code:   func() string { return fmt.Sprintf("%d", 1000+rand.Intn(9000)) },
	}
}

func (s *VerificationService) SendCode(ctx context.Context, country, phone string) error {
	code := s.code()
	if s.client != nil {
		if err := s.client.Set(ctx, verificationKey(country, phone), code, VerificationCodeTTL).Err(); err != nil {
			return fmt.Errorf("store verification code: %w", err)
		}
	}
	logger.Log.Info("Verification code issued", zap.String("country", country))
	return nil
}

// CheckCode reports whether code matches the last one issued for the number.
// A matching code is consumed.
func (s *VerificationService) CheckCode(ctx context.Context, country, phone, code string) (bool, error) {
	if s.client == nil {
		return false, nil
	}
	key := verificationKey(country, phone)
	stored, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}
	return true, s.client.Del(ctx, key).Err()
}

func verificationKey(country, phone string) string {
	return VerificationKeyPrefix + country + phone
}

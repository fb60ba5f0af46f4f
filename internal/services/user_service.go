package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lottery-backend/internal/models"
	"lottery-backend/internal/storage"
	"lottery-backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	UserCacheKeyPrefix = "user:"
	UserCacheDuration  = time.Hour
)

// UserCache serves user lookups from redis when available and from the
// store otherwise. Users have no update path, so entries never go stale.
type UserCache struct {
	store  storage.Storage
	client *redis.Client
}

func NewUserCache(store storage.Storage, client *redis.Client) *UserCache {
	return &UserCache{store: store, client: client}
}

// FindUserByID returns nil, nil when the user does not exist.
func (c *UserCache) FindUserByID(ctx context.Context, userID uint) (*models.User, error) {
	cacheKey := fmt.Sprintf("%s%d", UserCacheKeyPrefix, userID)
	if c.client != nil {
		val, err := c.client.Get(ctx, cacheKey).Result()
		if err == nil {
			var user cachedUser
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				u := user.toModel()
				return &u, nil
			}
		}
	}

	user, err := c.store.GetUser(ctx, userID)
	if err != nil || user == nil {
		return user, err
	}

	if c.client != nil {
		if data, err := json.Marshal(newCachedUser(*user)); err == nil {
			if err := c.client.Set(ctx, cacheKey, data, UserCacheDuration).Err(); err != nil {
				logger.Log.Warn("cache user", zap.Uint("user_id", userID), zap.Error(err))
			}
		}
	}
	return user, nil
}

// cachedUser mirrors models.User including the password hash, which the
// public JSON encoding drops.
type cachedUser struct {
	ID            uint    `json:"id"`
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	Phone         *string `json:"phone"`
	Points        int     `json:"points"`
	AccountNumber string  `json:"accountNumber"`
}

func newCachedUser(u models.User) cachedUser {
	return cachedUser{
		ID:            u.ID,
		Username:      u.Username,
		Password:      u.Password,
		Phone:         u.Phone,
		Points:        u.Points,
		AccountNumber: u.AccountNumber,
	}
}

func (c cachedUser) toModel() models.User {
	return models.User{
		ID:            c.ID,
		Username:      c.Username,
		Password:      c.Password,
		Phone:         c.Phone,
		Points:        c.Points,
		AccountNumber: c.AccountNumber,
	}
}

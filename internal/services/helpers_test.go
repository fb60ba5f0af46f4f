package services

import (
	"context"
	"testing"

	"lottery-backend/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func seededStore(t *testing.T) *storage.MemStorage {
	t.Helper()
	s := storage.NewMemStorage()
	require.NoError(t, storage.Seed(context.Background(), s))
	return s
}

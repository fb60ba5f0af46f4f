package services

import (
	"context"
	"sync"
	"testing"

	"lottery-backend/internal/models"
	"lottery-backend/internal/storage"
	"lottery-backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStorage()
	tokens := utils.NewTokenManager("test_secret")
	svc := NewAuthService(store, tokens)

	user, token, err := svc.RegisterUser(ctx, "alice", "secret123", models.StringPtr("0821234567"))
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	id, err := utils.UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	stored, err := store.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user.Password, stored.Password)

	_, _, err = svc.RegisterUser(ctx, "alice", "another1", nil)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	svc := NewAuthService(store, utils.NewTokenManager("test_secret"))

	_, _, err := svc.RegisterUser(ctx, "bob", "hunter22", nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "Hashed password", username: "bob", password: "hunter22"},
		{name: "Wrong password", username: "bob", password: "hunter23", wantErr: true},
		{name: "Unknown user", username: "carol", password: "hunter22", wantErr: true},
		{name: "Seeded plain text account", username: "demo_user", password: "password"},
		{name: "Seeded account wrong password", username: "demo_user", password: "passw0rd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, token, err := svc.LoginUser(ctx, tt.username, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, user.Username)
			assert.NotEmpty(t, token)
		})
	}
}

func TestIsBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, isBcryptHash(string(hash)))
	assert.False(t, isBcryptHash("password"))
	assert.False(t, isBcryptHash("$2a$short"))
}

func TestRegisterUserConcurrentSameUsername(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	svc := NewAuthService(store, utils.NewTokenManager("test_secret"))

	const workers = 8
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.RegisterUser(ctx, "alice", "secret123", nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	}
	assert.Equal(t, 1, succeeded)

	// Seeded demo user plus exactly one alice.
	for id := uint(1); id <= 3; id++ {
		u, err := store.GetUser(ctx, id)
		require.NoError(t, err)
		if id <= 2 {
			require.NotNil(t, u)
		} else {
			assert.Nil(t, u)
		}
	}
	_, _, err := svc.LoginUser(ctx, "alice", "secret123")
	assert.NoError(t, err)
}

// raceLostStore behaves like a shared database where another process inserted
// the username between the lookup and the insert.
type raceLostStore struct {
	storage.Storage
}

func (raceLostStore) GetUserByUsername(context.Context, string) (*models.User, error) {
	return nil, nil
}

func (raceLostStore) CreateUser(context.Context, models.UserInput) (*models.User, error) {
	return nil, storage.ErrDuplicateUsername
}

func TestRegisterUserDuplicateFromStore(t *testing.T) {
	svc := NewAuthService(raceLostStore{Storage: storage.NewMemStorage()}, utils.NewTokenManager("test_secret"))

	user, token, err := svc.RegisterUser(context.Background(), "alice", "secret123", nil)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

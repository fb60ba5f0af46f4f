package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"sync"

	"lottery-backend/internal/models"
	"lottery-backend/internal/storage"
	"lottery-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService registers and logs in users on top of the entity store.
// Passwords are hashed here; the store keeps whatever it is given.
type AuthService struct {
	store  storage.Storage
	tokens *utils.TokenManager

	// registerMu serializes the username check with the insert.
	registerMu sync.Mutex
}

func NewAuthService(store storage.Storage, tokens *utils.TokenManager) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

func (s *AuthService) RegisterUser(ctx context.Context, username, password string, phone *string) (*models.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.createUnique(ctx, username, string(hashedPassword), phone)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// createUnique inserts the user unless the username is taken. Stores shared
// between processes also reject duplicates through their unique index.
func (s *AuthService) createUnique(ctx context.Context, username, hashedPassword string, phone *string) (*models.User, error) {
	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	existing, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	user, err := s.store.CreateUser(ctx, models.UserInput{
		Username: &username,
		Password: &hashedPassword,
		Phone:    phone,
	})
	if errors.Is(err, storage.ErrDuplicateUsername) {
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) LoginUser(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !passwordMatches(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// passwordMatches accepts bcrypt hashes and, for seed accounts stored in
// plain text, an exact match.
func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

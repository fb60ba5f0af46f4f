// Package storage holds the entity store behind the HTTP layer.
//
// Lookups that find nothing return a nil record and a nil error. Only
// backends that talk to an external database ever return a non-nil error.
package storage

import (
	"context"
	"errors"

	"lottery-backend/internal/models"
)

// ErrDuplicateUsername is returned by backends that enforce unique usernames.
var ErrDuplicateUsername = errors.New("username already taken")

// WeeklyTicketLimit is the number of tickets returned by GetWeeklyTickets.
const WeeklyTicketLimit = 3

type Storage interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (*models.User, error)
	GetOrCreateDefaultUser(ctx context.Context) (*models.User, error)

	GetPromotions(ctx context.Context) ([]models.Promotion, error)
	CreatePromotion(ctx context.Context, in models.PromotionInput) (*models.Promotion, error)

	GetLotteryTickets(ctx context.Context) ([]models.LotteryTicket, error)
	GetLotteryTicketByID(ctx context.Context, id uint) (*models.LotteryTicket, error)
	// GetWeeklyTickets returns the first WeeklyTicketLimit tickets by insertion order.
	GetWeeklyTickets(ctx context.Context) ([]models.LotteryTicket, error)
	// GetSavedTickets returns every ticket.
	GetSavedTickets(ctx context.Context) ([]models.LotteryTicket, error)
	CreateLotteryTicket(ctx context.Context, in models.LotteryTicketInput) (*models.LotteryTicket, error)
	GetTotalWinnings(ctx context.Context) (int, error)
}

package services

import (
	"context"
	"math/rand"

	"lottery-backend/internal/models"
	"lottery-backend/internal/storage"
)

// MaxScanWinnings bounds the random potential winnings of a scanned ticket.
const MaxScanWinnings = 1000

// TicketScanner turns a scanned barcode into a stored ticket.
type TicketScanner struct {
	store    storage.Storage
	winnings func() int
}

func NewTicketScanner(store storage.Storage) *TicketScanner {
	return &TicketScanner{
		store:    store,
		winnings: func() int { return rand.Intn(MaxScanWinnings) },
	}
}

func (s *TicketScanner) Scan(ctx context.Context, barcode string) (*models.LotteryTicket, error) {
	return s.store.CreateLotteryTicket(ctx, models.LotteryTicketInput{
		Type:              models.StringPtr(models.DefaultTicketType),
		Status:            models.StringPtr(models.DefaultTicketStatus),
		PotentialWinnings: models.IntPtr(s.winnings()),
		Rating:            models.StringPtr("4.3"),
		Title:             models.StringPtr("New Scanned Ticket"),
		Points:            models.IntPtr(100),
		Available:         models.IntPtr(99),
		Barcode:           &barcode,
	})
}

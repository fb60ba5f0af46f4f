package storage

import (
	"context"
	"fmt"

	"lottery-backend/internal/models"
)

func seedPromotions() []models.PromotionInput {
	return []models.PromotionInput{
		{
			Title:    "Promotions",
			Image:    "https://images.unsplash.com/photo-1542838132-92c53300491e?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=200&h=150",
			Discount: models.IntPtr(25),
			BgColor:  models.StringPtr("purple"),
		},
		{
			Title:   "Speacials",
			Image:   "https://images.unsplash.com/photo-1534723328310-e82dad3ee43f?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=200&h=150",
			BgColor: models.StringPtr("blue"),
		},
	}
}

func seedTickets() []models.LotteryTicketInput {
	return []models.LotteryTicketInput{
		{
			Type:              models.StringPtr("Lotto Tickets"),
			Status:            models.StringPtr("Live Tickets"),
			PotentialWinnings: models.IntPtr(260),
			Discount:          models.IntPtr(25),
			Rating:            models.StringPtr("4.3"),
			Title:             models.StringPtr("R5.2 Million Reasons To Smile: Rustenburg Resident Claims Lotto Plus 2 Jackpot!"),
			Points:            models.IntPtr(1000),
			Available:         models.IntPtr(87),
		},
		{
			Type:              models.StringPtr("Lotto Tickets"),
			Status:            models.StringPtr("Live Tickets"),
			PotentialWinnings: models.IntPtr(180),
			Rating:            models.StringPtr("4.3"),
			Title:             models.StringPtr("Congratulations to our latest winner from Johannesburg!"),
			Points:            models.IntPtr(500),
			Available:         models.IntPtr(45),
		},
		{
			Type:              models.StringPtr("Powerball Tickets"),
			Status:            models.StringPtr("Live Tickets"),
			PotentialWinnings: models.IntPtr(350),
			Rating:            models.StringPtr("4.7"),
			Title:             models.StringPtr("Powerball rolls over to R100 Million!"),
			Points:            models.IntPtr(1500),
			Available:         models.IntPtr(120),
		},
	}
}

// Seed fills a store with the fixed promotions, tickets and demo user through
// the regular create operations. A store that already has promotions is left
// untouched so a persistent backend is not seeded twice.
func Seed(ctx context.Context, s Storage) error {
	existing, err := s.GetPromotions(ctx)
	if err != nil {
		return fmt.Errorf("check seed state: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, p := range seedPromotions() {
		if _, err := s.CreatePromotion(ctx, p); err != nil {
			return fmt.Errorf("seed promotion %q: %w", p.Title, err)
		}
	}
	for _, t := range seedTickets() {
		if _, err := s.CreateLotteryTicket(ctx, t); err != nil {
			return fmt.Errorf("seed ticket: %w", err)
		}
	}
	if _, err := s.GetOrCreateDefaultUser(ctx); err != nil {
		return fmt.Errorf("seed default user: %w", err)
	}
	return nil
}

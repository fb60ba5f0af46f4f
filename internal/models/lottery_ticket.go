package models

import (
	"fmt"
	"time"
)

const (
	DefaultTicketType   = "Lotto Tickets"
	DefaultTicketStatus = "Live Tickets"
	DefaultTicketRating = "4.0"

	// TimestampLayout matches JavaScript's Date.toISOString.
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

type LotteryTicket struct {
	ID                uint    `gorm:"primarykey" json:"id"`
	Type              string  `gorm:"not null" json:"type"`
	Status            string  `gorm:"not null" json:"status"`
	PotentialWinnings int     `gorm:"not null" json:"potentialWinnings"`
	Discount          *int    `json:"discount"`
	Rating            string  `gorm:"type:varchar(3);not null" json:"rating"`
	IsFavorite        bool    `gorm:"default:false" json:"isFavorite"`
	Title             *string `json:"title"`
	Points            int     `gorm:"default:0" json:"points"`
	Available         int     `gorm:"default:0" json:"available"`
	Barcode           *string `gorm:"index" json:"barcode"`
	CreatedAt         string  `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt         string  `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// LotteryTicketInput is the partial shape accepted by CreateLotteryTicket.
type LotteryTicketInput struct {
	Type              *string `json:"type"`
	Status            *string `json:"status"`
	PotentialWinnings *int    `json:"potentialWinnings"`
	Discount          *int    `json:"discount"`
	Rating            *string `json:"rating"`
	IsFavorite        *bool   `json:"isFavorite"`
	Title             *string `json:"title"`
	Points            *int    `json:"points"`
	Available         *int    `json:"available"`
	Barcode           *string `json:"barcode"`
}

// NewLotteryTicket applies ticket defaults and stamps both timestamps with now.
func NewLotteryTicket(id uint, in LotteryTicketInput, now time.Time) LotteryTicket {
	stamp := FormatTimestamp(now)
	isFavorite := in.IsFavorite != nil && *in.IsFavorite
	return LotteryTicket{
		ID:                id,
		Type:              stringOr(in.Type, DefaultTicketType),
		Status:            stringOr(in.Status, DefaultTicketStatus),
		PotentialWinnings: intOr(in.PotentialWinnings, 0),
		Discount:          nonZero(in.Discount),
		Rating:            stringOr(in.Rating, DefaultTicketRating),
		IsFavorite:        isFavorite,
		Title:             StringPtr(stringOr(in.Title, DefaultTicketTitle(id))),
		Points:            intOr(in.Points, 0),
		Available:         intOr(in.Available, 0),
		Barcode:           nonEmpty(in.Barcode),
		CreatedAt:         stamp,
		UpdatedAt:         stamp,
	}
}

func DefaultTicketTitle(id uint) string {
	return fmt.Sprintf("Ticket #%d", id)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

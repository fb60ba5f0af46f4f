package ticket

import (
	"strconv"

	"lottery-backend/internal/models"
)

// CreateTicketRequest mirrors the insertable ticket columns. Type, status,
// potential winnings and rating are mandatory; the rest fall back to defaults.
type CreateTicketRequest struct {
	Type              *string `json:"type" binding:"required"`
	Status            *string `json:"status" binding:"required"`
	PotentialWinnings *int    `json:"potentialWinnings" binding:"required,min=0"`
	Discount          *int    `json:"discount" binding:"omitempty,min=0,max=100"`
	Rating            *string `json:"rating" binding:"required,max=3"`
	IsFavorite        *bool   `json:"isFavorite"`
	Title             *string `json:"title"`
	Points            *int    `json:"points" binding:"omitempty,min=0"`
	Available         *int    `json:"available" binding:"omitempty,min=0"`
	Barcode           *string `json:"barcode"`
}

func (r CreateTicketRequest) toInput() models.LotteryTicketInput {
	return models.LotteryTicketInput{
		Type:              r.Type,
		Status:            r.Status,
		PotentialWinnings: r.PotentialWinnings,
		Discount:          r.Discount,
		Rating:            r.Rating,
		IsFavorite:        r.IsFavorite,
		Title:             r.Title,
		Points:            r.Points,
		Available:         r.Available,
		Barcode:           r.Barcode,
	}
}

// ScanTicketRequest takes the barcode as the scanner reports it, which may be
// a JSON string or number.
type ScanTicketRequest struct {
	Barcode any `json:"barcode"`
}

// barcode returns the barcode as text, or "" when it is missing, empty, zero
// or not a scalar.
func (r ScanTicketRequest) barcode() string {
	switch v := r.Barcode.(type) {
	case string:
		return v
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
	}
	return ""
}

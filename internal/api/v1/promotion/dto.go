package promotion

import "lottery-backend/internal/models"

type CreatePromotionRequest struct {
	Title    string  `json:"title" binding:"required"`
	Image    string  `json:"image" binding:"required"`
	Discount *int    `json:"discount" binding:"omitempty,min=0,max=100"`
	BgColor  *string `json:"bgColor"`
}

func (r CreatePromotionRequest) toInput() models.PromotionInput {
	return models.PromotionInput{
		Title:    r.Title,
		Image:    r.Image,
		Discount: r.Discount,
		BgColor:  r.BgColor,
	}
}

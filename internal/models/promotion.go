package models

const DefaultPromotionColor = "blue"

type Promotion struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Image    string `gorm:"not null" json:"image"`
	Discount *int   `json:"discount"`
	BgColor  string `gorm:"default:'blue'" json:"bgColor"`
}

type PromotionInput struct {
	Title    string
	Image    string
	Discount *int
	BgColor  *string
}

// NewPromotion applies promotion defaults.
func NewPromotion(id uint, in PromotionInput) Promotion {
	return Promotion{
		ID:       id,
		Title:    in.Title,
		Image:    in.Image,
		Discount: nonZero(in.Discount),
		BgColor:  stringOr(in.BgColor, DefaultPromotionColor),
	}
}

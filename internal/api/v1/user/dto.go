package user

import "lottery-backend/internal/models"

// UserResponse is the public view of a user. The password never leaves the server.
type UserResponse struct {
	ID            uint    `json:"id"`
	Username      string  `json:"username"`
	Phone         *string `json:"phone"`
	Points        int     `json:"points"`
	AccountNumber string  `json:"accountNumber"`
	Token         string  `json:"token,omitempty"`
}

func NewUserResponse(u *models.User, token string) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Phone:         u.Phone,
		Points:        u.Points,
		AccountNumber: u.AccountNumber,
		Token:         token,
	}
}

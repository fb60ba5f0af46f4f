package auth

type RegisterInput struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
	Phone    *string `json:"phone"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SendCodeInput struct {
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

type VerifyCodeInput struct {
	Country string `json:"country" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Code    string `json:"code" binding:"required,len=4,numeric"`
}

// CodeResponse answers the phone verification endpoints.
type CodeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

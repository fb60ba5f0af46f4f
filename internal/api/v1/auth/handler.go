package auth

import (
	"errors"
	"net/http"

	"lottery-backend/internal/api/v1/user"
	"lottery-backend/internal/services"
	"lottery-backend/internal/utils"
	"lottery-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	auth         *services.AuthService
	tokens       *utils.TokenManager
	denylist     *services.TokenDenylist
	verification *services.VerificationService
}

func NewHandler(auth *services.AuthService, tokens *utils.TokenManager, denylist *services.TokenDenylist, verification *services.VerificationService) *Handler {
	return &Handler{
		auth:         auth,
		tokens:       tokens,
		denylist:     denylist,
		verification: verification,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Register a new user with a username and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   RegisterInput  true  "Register Input"
// @Success 201 {object} user.UserResponse
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, token, err := h.auth.RegisterUser(c.Request.Context(), input.Username, input.Password, input.Phone)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			utils.RespondError(c, http.StatusConflict, err.Error())
			return
		}
		_ = c.Error(err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to register user due to an internal error")
		return
	}

	c.JSON(http.StatusCreated, user.NewUserResponse(u, token))
}

// Login godoc
// @Summary Log in a user
// @Description Log in a user with a username and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   LoginInput  true  "Login Input"
// @Success 200 {object} user.UserResponse
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, token, err := h.auth.LoginUser(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			_ = c.Error(err)
		}
		utils.RespondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	c.JSON(http.StatusOK, user.NewUserResponse(u, token))
}

// Logout godoc
// @Summary Log out a user
// @Description Invalidate the user's current token
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} CodeResponse
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /logout [post]
func (h *Handler) Logout(c *gin.Context) {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err.Error())
		return
	}

	// The auth middleware already validated the token.
	remaining := utils.TokenTTL
	if claims, err := h.tokens.ValidateToken(tokenString); err == nil {
		if d, err := utils.ExpiresIn(claims); err == nil {
			remaining = d
		}
	}

	if err := h.denylist.AddToDenylist(c.Request.Context(), tokenString, remaining); err != nil {
		_ = c.Error(err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to denylist token")
		return
	}

	c.JSON(http.StatusOK, CodeResponse{Success: true, Message: "Logged out successfully"})
}

// SendCode godoc
// @Summary Send a phone verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param input body SendCodeInput true "Phone number"
// @Success 200 {object} CodeResponse
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /auth/send-code [post]
func (h *Handler) SendCode(c *gin.Context) {
	var input SendCodeInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Country == "" || input.Phone == "" {
		utils.RespondError(c, http.StatusBadRequest, "Country and phone are required")
		return
	}

	if err := h.verification.SendCode(c.Request.Context(), input.Country, input.Phone); err != nil {
		logger.Log.Error("Failed to send verification code", zap.Error(err))
		utils.RespondError(c, http.StatusInternalServerError, "Failed to send verification code")
		return
	}

	c.JSON(http.StatusOK, CodeResponse{Success: true, Message: "Verification code sent"})
}

// VerifyCode godoc
// @Summary Check a phone verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param input body VerifyCodeInput true "Phone number and code"
// @Success 200 {object} CodeResponse
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /auth/verify-code [post]
func (h *Handler) VerifyCode(c *gin.Context) {
	var input VerifyCodeInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	ok, err := h.verification.CheckCode(c.Request.Context(), input.Country, input.Phone, input.Code)
	if err != nil {
		_ = c.Error(err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to verify code")
		return
	}
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or expired verification code")
		return
	}

	c.JSON(http.StatusOK, CodeResponse{Success: true, Message: "Phone number verified"})
}

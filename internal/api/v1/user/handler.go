package user

import (
	"net/http"

	"lottery-backend/internal/middleware"
	"lottery-backend/internal/models"
	"lottery-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUser godoc
// @Summary Get current user
// @Description Get the authenticated user's profile, points and account number
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} user.UserResponse
// @Failure 401 {object} utils.Response
// @Router /user [get]
func CurrentUser(c *gin.Context) {
	value, exists := c.Get(middleware.ContextUserKey)
	u, ok := value.(*models.User)
	if !exists || !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(u, ""))
}

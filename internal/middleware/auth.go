package middleware

import (
	"net/http"

	"lottery-backend/internal/services"
	"lottery-backend/internal/utils"
	"lottery-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextUserKey is where AuthMiddleware stores the authenticated *models.User.
const ContextUserKey = "user"

// AuthMiddleware rejects requests without a valid, unrevoked bearer token
// belonging to an existing user.
func AuthMiddleware(tokens *utils.TokenManager, denylist *services.TokenDenylist, users *services.UserCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err.Error())
			return
		}

		isDenylisted, err := denylist.IsDenylisted(c.Request.Context(), tokenString)
		if err != nil {
			logger.Log.Error("Failed to check token status", zap.Error(err))
			utils.RespondError(c, http.StatusInternalServerError, "Failed to check token status")
			return
		}
		if isDenylisted {
			utils.RespondError(c, http.StatusUnauthorized, "Token has been revoked")
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		userID, err := utils.UserIDFromClaims(claims)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid user ID in token")
			return
		}

		user, err := users.FindUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Log.Error("Failed to load user", zap.Uint("user_id", userID), zap.Error(err))
			utils.RespondError(c, http.StatusInternalServerError, "Failed to load user")
			return
		}
		if user == nil {
			utils.RespondError(c, http.StatusUnauthorized, "User not found")
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the session endpoints at the group root and the
// phone verification endpoints under /auth.
func RegisterRoutes(router *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/logout", authMiddleware, h.Logout)

	auth := router.Group("/auth")
	auth.POST("/send-code", h.SendCode)
	auth.POST("/verify-code", h.VerifyCode)
}

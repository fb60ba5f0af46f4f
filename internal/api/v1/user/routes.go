package user

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the profile endpoint behind the given auth middleware.
func RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	router.GET("/user", auth, CurrentUser)
}

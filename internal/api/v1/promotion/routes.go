package promotion

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	promotions := router.Group("/promotions")
	promotions.GET("", h.ListPromotions)
	promotions.POST("", h.CreatePromotion)
}

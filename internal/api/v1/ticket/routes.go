package ticket

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	tickets := router.Group("/tickets")
	tickets.GET("", h.ListTickets)
	tickets.GET("/weekly", h.WeeklyTickets)
	tickets.GET("/saved", h.SavedTickets)
	tickets.GET("/winnings", h.TotalWinnings)
	tickets.GET("/:id", h.GetTicket)
	tickets.POST("", h.CreateTicket)
	tickets.POST("/scan", h.ScanTicket)
}

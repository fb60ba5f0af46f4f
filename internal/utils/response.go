package utils

import "github.com/gin-gonic/gin"

// Response is the envelope used for error bodies and auth payloads.
// Entity reads and writes return the bare entity instead.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// NewErrorResponse creates an error Response; Data is always null.
func NewErrorResponse(status int, message string) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    nil,
	}
}

// RespondError writes an error envelope and stops the handler chain.
func RespondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewErrorResponse(status, message))
}

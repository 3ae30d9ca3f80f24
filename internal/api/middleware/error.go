package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"econlab/internal/api/models"
)

// ErrorHandler middleware recovers panics into the uniform error
// envelope.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		detail := models.ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "An unexpected error occurred",
		}
		if msg, ok := recovered.(string); ok {
			detail.Message = msg
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: detail})
		c.Abort()
	})
}

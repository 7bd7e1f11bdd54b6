package middleware

import (
	"net/http"

	"btc-backtest/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts handler panics into the uniform error body, so
// clients see the same shape for crashes as for validation failures.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			message = v
		case error:
			message = v.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}

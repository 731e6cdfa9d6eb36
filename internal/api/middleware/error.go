package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-payback/internal/api/models"
)

// ErrorHandler converts panics into the API's JSON error shape. Expected
// failures never reach this; the handlers map them to typed responses.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
		c.Abort()
	})
}

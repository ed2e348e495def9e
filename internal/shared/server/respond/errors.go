package respond

import (
	"github.com/gin-gonic/gin"

	"restaurant-backend/internal/shared/telemetry"
)

// ErrorBody is the error object returned to callers. Only the message goes
// over the wire; the code is kept for log correlation.
type ErrorBody struct {
	Message string `json:"message"`
}

// Error logs and sends a standardized error response.
func Error(c *gin.Context, status int, code, message string) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON endpoints answer with flat shapes: a payload on success, or
// {"error": "..."} on failure. The chat front-end depends on these.

// Success writes payload as-is with HTTP 200.
func Success(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error writes {"error": message} with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// BadRequest writes a 400 validation failure.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 for requests without a valid identity.
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "authentication required")
}

// ServerError writes a generic 500.
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}

package middleware

import (
	"net/http"
	"strings"

	"chatbox/response"
	"chatbox/services"

	"github.com/gin-gonic/gin"
)

// RequirePage gates browser routes: requests without a session are sent
// back to the login page.
func RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAPI gates JSON routes on a session cookie or a bearer token
// minted at login.
func RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); ok {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if info, err := services.ParseToken(tokenString); err == nil {
				c.Set("userID", info.UserID)
				c.Set("username", info.Username)
				c.Next()
				return
			}
		}

		response.Unauthorized(c)
		c.Abort()
	}
}

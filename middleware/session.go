package middleware

import (
	"chatbox/services"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "session_id"

// LoadSession resolves the session cookie into the request context so
// downstream handlers can read the caller's identity.
func LoadSession(store services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if err == nil && id != "" {
			if sess, ok, err := store.Get(c.Request.Context(), id); err == nil && ok {
				c.Set("session", sess)
				c.Set("userID", sess.UserID)
				c.Set("username", sess.Username)
			}
		}

		c.Next()
	}
}

// CurrentSession returns the session loaded for this request, if any.
func CurrentSession(c *gin.Context) (services.Session, bool) {
	v, ok := c.Get("session")
	if !ok {
		return services.Session{}, false
	}
	sess, ok := v.(services.Session)
	return sess, ok
}

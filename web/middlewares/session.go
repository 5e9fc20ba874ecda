package middlewares

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hrmslite.com/hrms/security"
)

const (
	SessionCookie = "hrms.session"
	sessionKey    = "session_id"
)

// Session makes sure every request carries a session id, issuing a signed
// cookie for a fresh one when the request has none or an invalid one.
func Session(secret []byte, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			if id, err := security.ParseSessionToken(cookie, secret); err == nil {
				c.Set(sessionKey, id)
				c.Next()
				return
			}
		}

		id := uuid.NewString()
		token, err := security.CreateSessionToken(id, secret, ttl)
		if err != nil {
			log.Printf("session: %v", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", false, true)
		c.Set(sessionKey, id)
		c.Next()
	}
}

// SessionID returns the id set by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// middlewares/session_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the bearer token to a live in-memory session
// and puts it on the context. Expired sessions (past local midnight) read
// the same as unknown ones.
func SessionMiddleware(store *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// websocket clients can't set headers
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
			return
		}

		sid, err := utils.ParseSessionToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			return
		}

		sess, ok := store.Get(sid)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or unknown"})
			return
		}

		c.Set("session", sess)
		c.Next()
	}
}

// CurrentSession pulls the session set by SessionMiddleware.
func CurrentSession(c *gin.Context) *services.Session {
	return c.MustGet("session").(*services.Session)
}

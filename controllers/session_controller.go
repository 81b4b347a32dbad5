package controllers

import (
	"net/http"
	"time"

	"backend/metrics"
	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Store *services.SessionStore
}

func NewSessionController(store *services.SessionStore) *SessionController {
	return &SessionController{Store: store}
}

// Create opens a fresh session with an empty daily log. The token expires at
// local midnight together with the session.
func (sc *SessionController) Create(c *gin.Context) {
	sess := sc.Store.Create(time.Now())

	token, err := utils.GenerateSessionToken(sess.ID, sess.ExpiresAt)
	if err != nil {
		sc.Store.Remove(sess.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.IncSessionCreated()

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sess.ID,
		"token":      token,
		"expires_at": sess.ExpiresAt,
	})
}

// ResetLog clears the day's entries but keeps the session and profile.
func (sc *SessionController) ResetLog(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	sess.ResetLog()
	c.Status(http.StatusNoContent)
}

// Close discards the whole session.
func (sc *SessionController) Close(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	sc.Store.Remove(sess.ID)
	c.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns totals, targets and remaining deltas for the session's
// day. Totals are folded from the entry list on every call, never cached.
func GetDashboard(c *gin.Context) {
	sess := middlewares.CurrentSession(c)

	snap, err := services.BuildDashboard(sess.Profile(), sess.Totals(), sess.LogDate())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

package controllers

import (
	"net/http"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type HydrationController struct {
	Logs *services.LogService
}

func NewHydrationController(logs *services.LogService) *HydrationController {
	return &HydrationController{Logs: logs}
}

type logHydrationRequest struct {
	AmountML float64 `json:"amount_ml" binding:"required"`
}

func (hc *HydrationController) LogHydration(c *gin.Context) {
	sess := middlewares.CurrentSession(c)

	var req logHydrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := hc.Logs.LogHydration(sess, req.AmountML)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

package controllers

import (
	"errors"
	"net/http"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CoachController struct {
	Coach *services.CoachService
}

func NewCoachController(coach *services.CoachService) *CoachController {
	return &CoachController{Coach: coach}
}

func (cc *CoachController) GetAdvice(c *gin.Context) {
	sess := middlewares.CurrentSession(c)

	advice, err := cc.Coach.DailyAdvice(c.Request.Context(), sess)
	if err != nil {
		if errors.Is(err, services.ErrNoMealsLogged) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

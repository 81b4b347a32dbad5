package controllers

import (
	"net/http"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Logs *services.LogService
}

func NewWorkoutController(logs *services.LogService) *WorkoutController {
	return &WorkoutController{Logs: logs}
}

type logWorkoutRequest struct {
	Description string `json:"description" binding:"required"`
}

func (wc *WorkoutController) LogWorkout(c *gin.Context) {
	sess := middlewares.CurrentSession(c)

	var req logWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := wc.Logs.LogWorkout(c.Request.Context(), sess, req.Description)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (wc *WorkoutController) ListWorkouts(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	_, workouts, _ := sess.Entries()
	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

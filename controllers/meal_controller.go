package controllers

import (
	"net/http"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Logs *services.LogService
}

func NewMealController(logs *services.LogService) *MealController {
	return &MealController{Logs: logs}
}

type logMealRequest struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// LogMeal sends the free-text description to the estimator and appends the
// resulting entry. Estimation failure appends nothing.
func (mc *MealController) LogMeal(c *gin.Context) {
	sess := middlewares.CurrentSession(c)

	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := mc.Logs.LogMeal(c.Request.Context(), sess, req.Type, req.Description)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (mc *MealController) ListMeals(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	meals, _, _ := sess.Entries()
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

package controllers

import (
	"net/http"

	"backend/middlewares"
	"backend/models"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	c.JSON(http.StatusOK, sess.Profile())
}

func UpdateProfile(c *gin.Context) {
	sess := middlewares.CurrentSession(c)

	var input models.Profile
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	sess.SetProfile(input)
	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}

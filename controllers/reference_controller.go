package controllers

import (
	"net/http"

	"github.com/alvinwquach/macronutrient-calculator/services"

	"github.com/gin-gonic/gin"
)

// GetActivityLevels returns the selectable activity levels with their TDEE
// multipliers, in display order, for front-ends rendering the form.
func GetActivityLevels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activity_levels": services.ActivityLevels})
}

// GetGoals returns the selectable weight-change goals with their calorie
// multipliers, in display order.
func GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"goals": services.GoalOptions})
}

package controllers

import (
	"net/http"

	"github.com/alvinwquach/macronutrient-calculator/models"
	"github.com/alvinwquach/macronutrient-calculator/services"
	"github.com/alvinwquach/macronutrient-calculator/utils"

	"github.com/gin-gonic/gin"
)

// Estimate handles POST /api/estimate. Binding does all input validation
// (required fields, ranges, enum membership), so the estimator itself never
// sees out-of-domain values.
func Estimate(c *gin.Context) {
	var input models.EstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !services.ValidActivityLevel(input.ActivityLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activityLevel must be one of 1.2, 1.375, 1.55, 1.725, 1.9"})
		return
	}

	result := services.Estimate(input)
	c.JSON(http.StatusOK, gin.H{
		"result":  result,
		"display": utils.RoundForDisplay(result),
	})
}

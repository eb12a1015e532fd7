package routes

import (
	"github.com/alvinwquach/macronutrient-calculator/controllers"
	"github.com/alvinwquach/macronutrient-calculator/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	r.GET("/health", controllers.Health)

	api := r.Group("/api")
	{
		api.POST("/estimate", controllers.Estimate)

		ref := api.Group("/reference")
		{
			ref.GET("/activity-levels", controllers.GetActivityLevels)
			ref.GET("/goals", controllers.GetGoals)
		}
	}

	return r
}

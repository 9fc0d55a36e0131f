package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raphaeljcm/daily-diet-api/controllers"
	"github.com/raphaeljcm/daily-diet-api/middlewares"
	"github.com/raphaeljcm/daily-diet-api/services"
	"github.com/raphaeljcm/daily-diet-api/store"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	st := store.NewGormStore(db)
	mealCtl := controllers.NewMealController(services.NewMealService(st))
	metricsCtl := controllers.NewMetricsController(services.NewMetricsService(st))

	meals := r.Group("/meals")
	{
		// Create is the only operation allowed to self-issue an identity.
		meals.POST("", middlewares.ResolveIdentity(), mealCtl.CreateMeal)

		meals.GET("", middlewares.RequireIdentity(), mealCtl.ListMeals)
		meals.GET("/metrics", middlewares.RequireIdentity(), metricsCtl.GetMetrics)
		meals.GET("/:id", middlewares.RequireIdentity(), mealCtl.GetMeal)
		meals.PUT("/:id", middlewares.RequireIdentity(), mealCtl.UpdateMeal)
		meals.DELETE("/:id", middlewares.RequireIdentity(), mealCtl.DeleteMeal)
	}

	return r
}

package routes

import (
	"concierge/internal/controllers"
	"concierge/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterLifestyleRoutes(router *gin.Engine, lifestyleController *controllers.LifestyleController) {
	lifestyleRoutes := router.Group("/api")
	lifestyleRoutes.Use(middleware.AuthMiddleware())
	{
		lifestyleRoutes.GET("/lifestyle-profile", lifestyleController.GetProfile)
		lifestyleRoutes.POST("/lifestyle-profile", lifestyleController.SaveProfile)
		lifestyleRoutes.PUT("/lifestyle-profile", lifestyleController.SaveProfile)
		lifestyleRoutes.DELETE("/lifestyle-profile", lifestyleController.DeleteProfile)
		lifestyleRoutes.GET("/lifestyle-catalogs", lifestyleController.GetCatalogs)
	}
}

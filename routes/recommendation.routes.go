package routes

import (
	"concierge/internal/controllers"
	"concierge/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecommendationRoutes(router *gin.Engine, recommendationController *controllers.RecommendationController) {
	recommendationRoutes := router.Group("/api")
	recommendationRoutes.Use(middleware.AuthMiddleware())
	{
		recommendationRoutes.GET("/lifestyle-recommendations", recommendationController.GetRecommendations)
		recommendationRoutes.POST("/lifestyle-recommendations/refresh", recommendationController.RefreshRecommendations)
		recommendationRoutes.POST("/recommendations/:id/dismiss", recommendationController.DismissRecommendation)
	}
}

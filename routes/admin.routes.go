package routes

import (
	"concierge/internal/controllers"
	"concierge/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(router *gin.Engine, adminController *controllers.AdminController, checker middleware.AdminChecker) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware(checker))
	{
		adminRoutes.GET("/requests", adminController.GetRequests)
		adminRoutes.GET("/requests/:id", adminController.GetRequest)
		adminRoutes.PUT("/requests/:id/status", adminController.UpdateRequestStatus)
	}
}

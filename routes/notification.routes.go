package routes

import (
	"concierge/internal/controllers"
	"concierge/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterNotificationRoutes(router *gin.Engine, notificationController *controllers.NotificationController) {
	notificationRoutes := router.Group("/api/notifications")
	notificationRoutes.Use(middleware.AuthMiddleware())
	{
		notificationRoutes.GET("/", notificationController.GetNotifications)
		notificationRoutes.GET("/unread-count", notificationController.GetUnreadCount)
		notificationRoutes.POST("/mark-read", notificationController.MarkAllRead)
		notificationRoutes.DELETE("/:id", notificationController.DeleteNotification)
	}
}

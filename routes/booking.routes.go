package routes

import (
	"concierge/internal/controllers"
	"concierge/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterBookingRoutes(router *gin.Engine, bookingController *controllers.BookingController) {
	bookingRoutes := router.Group("/api/bookings")
	bookingRoutes.Use(middleware.AuthMiddleware())
	{
		bookingRoutes.POST("/", bookingController.CreateBooking)
		bookingRoutes.GET("/", bookingController.GetBookings)
		bookingRoutes.GET("/:id", bookingController.GetBooking)
	}
}

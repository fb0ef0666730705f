package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"concierge/internal/models"
	"concierge/internal/pricing"
	"concierge/internal/repository"
	"concierge/internal/services"
	"concierge/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingController struct {
	bookingRepo repository.BookingRepository
	worker      *services.NotificationWorker
}

func NewBookingController(bookingRepo repository.BookingRepository, worker *services.NotificationWorker) *BookingController {
	return &BookingController{
		bookingRepo: bookingRepo,
		worker:      worker,
	}
}

type createBookingRequest struct {
	ServiceType string         `json:"service_type" binding:"required,oneof='Hotel Booking' 'Flight Booking' 'Car Booking' 'Technician Booking' 'Courier Booking'"`
	Details     models.JSONMap `json:"details" binding:"required"`
}

func detailFloat(details models.JSONMap, key string, fallback float64) float64 {
	raw, ok := details[key]
	if !ok {
		return fallback
	}
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func detailInt(details models.JSONMap, key string, fallback int) int {
	return int(detailFloat(details, key, float64(fallback)))
}

// computeTotals derives the server-side price breakdown from the booking
// details. Client-supplied totals are never trusted.
func computeTotals(serviceType string, details models.JSONMap) (pricing.Breakdown, error) {
	switch serviceType {
	case "Hotel Booking":
		return pricing.HotelTotal(
			detailFloat(details, "price_per_night", 0),
			detailInt(details, "nights", 1),
			detailInt(details, "rooms", 1),
		), nil
	case "Car Booking":
		return pricing.CarTotal(
			detailFloat(details, "base_price_per_day", 0),
			detailInt(details, "days", 1),
		), nil
	case "Courier Booking":
		return pricing.CourierTotal(
			detailFloat(details, "price_per_kg", 0),
			detailFloat(details, "weight_kg", 0.1),
		), nil
	case "Technician Booking":
		return pricing.TechnicianTotal(
			detailFloat(details, "base_fee", 0),
			detailFloat(details, "hours", 1),
		), nil
	case "Flight Booking":
		return pricing.FlightTotal(
			detailFloat(details, "base_fare", 0),
			detailInt(details, "passengers", 1),
		), nil
	default:
		return pricing.Breakdown{}, fmt.Errorf("unknown service type: %s", serviceType)
	}
}

// CreateBooking godoc
// @Summary Create a booking request
// @Description Create a service request with server-computed GST totals
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createBookingRequest true "Booking details"
// @Success 201 {object} map[string]interface{} "Booking created"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to create booking"
// @Router /api/bookings [post]
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	breakdown, err := computeTotals(req.ServiceType, req.Details)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	request := models.ServiceRequest{
		UserID:      userID.(uint),
		ServiceType: req.ServiceType,
		BookingRef:  utils.GenerateBookingRef(),
		Status:      models.RequestStatusPending,
		Details:     req.Details,
		Subtotal:    breakdown.Subtotal,
		Tax:         breakdown.Tax,
		Total:       breakdown.Total,
	}

	if err := bc.bookingRepo.Create(&request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create booking",
			"error":   err.Error(),
		})
		return
	}

	if bc.worker != nil {
		event := models.BookingEvent{
			EventID:     uuid.New().String(),
			Kind:        "booking.created",
			UserID:      request.UserID,
			RequestID:   request.ID,
			ServiceType: request.ServiceType,
			BookingRef:  request.BookingRef,
			Status:      request.Status,
			OccurredAt:  time.Now(),
		}
		if err := bc.worker.Enqueue(event); err != nil {
			// Booking is already saved; the notification is best effort.
			log.Printf("failed to enqueue booking event %s: %v", event.EventID, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Booking created",
		"data":    request,
	})
}

// GetBookings godoc
// @Summary List the user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max rows (default 50)"
// @Success 200 {object} map[string]interface{} "Bookings"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/bookings [get]
func (bc *BookingController) GetBookings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	requests, err := bc.bookingRepo.FindAllByUserID(userID.(uint), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch bookings",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Bookings retrieved",
		"data":    requests,
	})
}

// GetBooking godoc
// @Summary Get one booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} map[string]interface{} "Booking"
// @Failure 400 {object} map[string]interface{} "Invalid booking ID"
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Router /api/bookings/{id} [get]
func (bc *BookingController) GetBooking(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid booking ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	request, err := bc.bookingRepo.FindByID(uint(id))
	if err != nil || request.UserID != userID.(uint) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Booking not found",
			"error":   "No booking with that ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Booking retrieved",
		"data":    request,
	})
}

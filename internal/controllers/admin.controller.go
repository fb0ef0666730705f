package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"concierge/internal/models"
	"concierge/internal/repository"
	"concierge/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminController struct {
	bookingRepo repository.BookingRepository
	worker      *services.NotificationWorker
}

func NewAdminController(bookingRepo repository.BookingRepository, worker *services.NotificationWorker) *AdminController {
	return &AdminController{
		bookingRepo: bookingRepo,
		worker:      worker,
	}
}

// GetRequests godoc
// @Summary List all service requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending/approved/completed/rejected)"
// @Param limit query int false "Max rows (default 100)"
// @Success 200 {object} map[string]interface{} "Requests"
// @Failure 403 {object} map[string]interface{} "Admin access required"
// @Router /admin/requests [get]
func (ac *AdminController) GetRequests(c *gin.Context) {
	status := c.Query("status")
	switch status {
	case "", models.RequestStatusPending, models.RequestStatusApproved,
		models.RequestStatusCompleted, models.RequestStatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid status filter",
			"error":   "Status must be one of: pending, approved, completed, rejected",
		})
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	requests, err := ac.bookingRepo.FindAll(status, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch requests",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Requests retrieved",
		"data":    requests,
	})
}

// GetRequest godoc
// @Summary Get one service request
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} map[string]interface{} "Request"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Router /admin/requests/{id} [get]
func (ac *AdminController) GetRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	request, err := ac.bookingRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Request not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Request retrieved",
		"data":    request,
	})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved completed rejected"`
}

// UpdateRequestStatus godoc
// @Summary Change a request's status
// @Description Update booking status and notify the owning user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body updateStatusRequest true "New status"
// @Success 200 {object} map[string]interface{} "Status updated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Router /admin/requests/{id}/status [put]
func (ac *AdminController) UpdateRequestStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	request, err := ac.bookingRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Request not found",
			"error":   err.Error(),
		})
		return
	}

	if err := ac.bookingRepo.UpdateStatus(uint(id), req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update status",
			"error":   err.Error(),
		})
		return
	}

	if ac.worker != nil {
		event := models.BookingEvent{
			EventID:     uuid.New().String(),
			Kind:        "booking.status_changed",
			UserID:      request.UserID,
			RequestID:   request.ID,
			ServiceType: request.ServiceType,
			BookingRef:  request.BookingRef,
			Status:      req.Status,
			OccurredAt:  time.Now(),
		}
		if err := ac.worker.Enqueue(event); err != nil {
			log.Printf("failed to enqueue booking event %s: %v", event.EventID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Status updated",
	})
}

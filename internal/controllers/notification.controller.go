package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"concierge/internal/cache"
	"concierge/internal/repository"

	"github.com/gin-gonic/gin"
)

const unreadCountTTL = 5 * time.Minute

type NotificationController struct {
	notificationRepo repository.NotificationRepository
	redisClient      *cache.RedisClient
}

func NewNotificationController(notificationRepo repository.NotificationRepository, redisClient *cache.RedisClient) *NotificationController {
	return &NotificationController{
		notificationRepo: notificationRepo,
		redisClient:      redisClient,
	}
}

// GetNotifications godoc
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max rows (default 50)"
// @Success 200 {object} map[string]interface{} "Notifications"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/notifications [get]
func (nc *NotificationController) GetNotifications(c *gin.Context) {
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

	notifications, err := nc.notificationRepo.FindAllByUserID(userID.(uint), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch notifications",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notifications retrieved",
		"data":    notifications,
	})
}

// MarkAllRead godoc
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Notifications marked read"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/notifications/mark-read [post]
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	if err := nc.notificationRepo.MarkAllRead(userID.(uint)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to mark notifications read",
			"error":   err.Error(),
		})
		return
	}

	if nc.redisClient != nil {
		if err := nc.redisClient.InvalidateUnreadCount(userID.(uint)); err != nil {
			log.Printf("failed to invalidate unread count for user %d: %v", userID.(uint), err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notifications marked read",
	})
}

// GetUnreadCount godoc
// @Summary Get unread notification count
// @Description Count served from Redis when warm, Postgres otherwise
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Unread count"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/notifications/unread-count [get]
func (nc *NotificationController) GetUnreadCount(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	if nc.redisClient != nil {
		if count, hit, err := nc.redisClient.GetUnreadCount(userID.(uint)); err == nil && hit {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Unread count retrieved",
				"data":    gin.H{"unread_count": count},
			})
			return
		}
	}

	count, err := nc.notificationRepo.CountUnread(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch unread count",
			"error":   err.Error(),
		})
		return
	}

	if nc.redisClient != nil {
		if err := nc.redisClient.StoreUnreadCount(userID.(uint), count, unreadCountTTL); err != nil {
			log.Printf("failed to cache unread count for user %d: %v", userID.(uint), err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Unread count retrieved",
		"data":    gin.H{"unread_count": count},
	})
}

// DeleteNotification godoc
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]interface{} "Notification deleted"
// @Failure 400 {object} map[string]interface{} "Invalid notification ID"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Router /api/notifications/{id} [delete]
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
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
			"message": "Invalid notification ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := nc.notificationRepo.Delete(userID.(uint), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Notification not found",
			"error":   err.Error(),
		})
		return
	}

	if nc.redisClient != nil {
		_ = nc.redisClient.InvalidateUnreadCount(userID.(uint))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notification deleted",
	})
}

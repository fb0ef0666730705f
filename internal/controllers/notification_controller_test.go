package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"concierge/internal/controllers"
	"concierge/internal/mocks"
	"concierge/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupNotificationRouter(userID uint) (*gin.Engine, *mocks.MockNotificationRepository) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockNotificationRepo := new(mocks.MockNotificationRepository)
	controller := controllers.NewNotificationController(mockNotificationRepo, nil)

	group := router.Group("/api/notifications", fakeAuth(userID))
	group.GET("/", controller.GetNotifications)
	group.GET("/unread-count", controller.GetUnreadCount)
	group.POST("/mark-read", controller.MarkAllRead)
	group.DELETE("/:id", controller.DeleteNotification)
	return router, mockNotificationRepo
}

func TestGetNotifications(t *testing.T) {
	router, mockNotificationRepo := setupNotificationRouter(1)

	notifications := []models.Notification{
		{ID: 1, UserID: 1, Title: "Booking Received"},
		{ID: 2, UserID: 1, Title: "Booking Approved"},
	}
	mockNotificationRepo.On("FindAllByUserID", uint(1), 50).Return(notifications, nil)

	w := performJSON(router, http.MethodGet, "/api/notifications/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["data"], 2)
}

func TestGetUnreadCount(t *testing.T) {
	router, mockNotificationRepo := setupNotificationRouter(1)
	mockNotificationRepo.On("CountUnread", uint(1)).Return(int64(3), nil)

	w := performJSON(router, http.MethodGet, "/api/notifications/unread-count", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["unread_count"])
}

func TestMarkAllRead(t *testing.T) {
	router, mockNotificationRepo := setupNotificationRouter(1)
	mockNotificationRepo.On("MarkAllRead", uint(1)).Return(nil)

	w := performJSON(router, http.MethodPost, "/api/notifications/mark-read", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	mockNotificationRepo.AssertExpectations(t)
}

func TestDeleteNotification(t *testing.T) {
	t.Run("deletes owned notification", func(t *testing.T) {
		router, mockNotificationRepo := setupNotificationRouter(1)
		mockNotificationRepo.On("Delete", uint(1), uint(7)).Return(nil)

		w := performJSON(router, http.MethodDelete, "/api/notifications/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing notification yields 404", func(t *testing.T) {
		router, mockNotificationRepo := setupNotificationRouter(1)
		mockNotificationRepo.On("Delete", uint(1), uint(8)).Return(gorm.ErrRecordNotFound)

		w := performJSON(router, http.MethodDelete, "/api/notifications/8", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

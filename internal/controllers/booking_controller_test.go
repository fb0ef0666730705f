package controllers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"concierge/internal/controllers"
	"concierge/internal/mocks"
	"concierge/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupBookingRouter(userID uint) (*gin.Engine, *mocks.MockBookingRepository) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockBookingRepo := new(mocks.MockBookingRepository)
	controller := controllers.NewBookingController(mockBookingRepo, nil)

	group := router.Group("/api/bookings", fakeAuth(userID))
	group.POST("/", controller.CreateBooking)
	group.GET("/", controller.GetBookings)
	group.GET("/:id", controller.GetBooking)
	return router, mockBookingRepo
}

func TestCreateBooking(t *testing.T) {
	t.Run("hotel booking computes GST totals server side", func(t *testing.T) {
		router, mockBookingRepo := setupBookingRouter(1)

		var created *models.ServiceRequest
		mockBookingRepo.On("Create", mock.AnythingOfType("*models.ServiceRequest")).
			Run(func(args mock.Arguments) {
				created = args.Get(0).(*models.ServiceRequest)
			}).Return(nil)

		body := map[string]interface{}{
			"service_type": "Hotel Booking",
			"details": map[string]interface{}{
				"price_per_night": 2500,
				"nights":          2,
				"rooms":           1,
				"city":            "Mumbai",
			},
		}
		w := performJSON(router, http.MethodPost, "/api/bookings/", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotNil(t, created)
		assert.Equal(t, uint(1), created.UserID)
		assert.Equal(t, models.RequestStatusPending, created.Status)
		assert.Equal(t, 5000.0, created.Subtotal)
		assert.Equal(t, 900.0, created.Tax)
		assert.Equal(t, 5900.0, created.Total)
		assert.True(t, strings.HasPrefix(created.BookingRef, "CNG-"))
	})

	t.Run("courier booking clamps weight", func(t *testing.T) {
		router, mockBookingRepo := setupBookingRouter(1)

		var created *models.ServiceRequest
		mockBookingRepo.On("Create", mock.AnythingOfType("*models.ServiceRequest")).
			Run(func(args mock.Arguments) {
				created = args.Get(0).(*models.ServiceRequest)
			}).Return(nil)

		body := map[string]interface{}{
			"service_type": "Courier Booking",
			"details": map[string]interface{}{
				"price_per_kg": 150,
				"weight_kg":    2.5,
			},
		}
		w := performJSON(router, http.MethodPost, "/api/bookings/", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 375.0, created.Subtotal)
		assert.Equal(t, 67.5, created.Tax)
	})

	t.Run("unknown service type rejected", func(t *testing.T) {
		router, _ := setupBookingRouter(1)

		body := map[string]interface{}{
			"service_type": "Yacht Booking",
			"details":      map[string]interface{}{},
		}
		w := performJSON(router, http.MethodPost, "/api/bookings/", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBookings(t *testing.T) {
	router, mockBookingRepo := setupBookingRouter(1)

	requests := []models.ServiceRequest{
		{ID: 1, UserID: 1, ServiceType: "Hotel Booking"},
		{ID: 2, UserID: 1, ServiceType: "Courier Booking"},
	}
	mockBookingRepo.On("FindAllByUserID", uint(1), 50).Return(requests, nil)

	w := performJSON(router, http.MethodGet, "/api/bookings/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["data"], 2)
}

func TestGetBooking(t *testing.T) {
	t.Run("owner can read booking", func(t *testing.T) {
		router, mockBookingRepo := setupBookingRouter(1)
		mockBookingRepo.On("FindByID", uint(5)).Return(&models.ServiceRequest{ID: 5, UserID: 1}, nil)

		w := performJSON(router, http.MethodGet, "/api/bookings/5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other user's booking is hidden", func(t *testing.T) {
		router, mockBookingRepo := setupBookingRouter(1)
		mockBookingRepo.On("FindByID", uint(5)).Return(&models.ServiceRequest{ID: 5, UserID: 9}, nil)

		w := performJSON(router, http.MethodGet, "/api/bookings/5", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing booking yields 404", func(t *testing.T) {
		router, mockBookingRepo := setupBookingRouter(1)
		mockBookingRepo.On("FindByID", uint(5)).Return(nil, gorm.ErrRecordNotFound)

		w := performJSON(router, http.MethodGet, "/api/bookings/5", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"concierge/internal/controllers"
	"concierge/internal/mocks"
	"concierge/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthRouter() (*gin.Engine, *mocks.MockUserRepository) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockUserRepo := new(mocks.MockUserRepository)
	controller := controllers.NewAuthController(mockUserRepo, nil)
	router.POST("/auth/register", controller.Register)
	router.POST("/auth/login", controller.Login)
	return router, mockUserRepo
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"name":     "Priya Nair",
				"email":    "priya@example.com",
				"password": "supersecret1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByEmail", "priya@example.com").Return(nil, gorm.ErrRecordNotFound)
				userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "User registered successfully",
		},
		{
			name: "duplicate email",
			requestBody: map[string]interface{}{
				"name":     "Priya Nair",
				"email":    "priya@example.com",
				"password": "supersecret1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.On("FindByEmail", "priya@example.com").Return(&models.User{Email: "priya@example.com"}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Email already registered",
		},
		{
			name: "password too short",
			requestBody: map[string]interface{}{
				"name":     "Priya Nair",
				"email":    "priya@example.com",
				"password": "short",
			},
			setupMocks:     func(userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockUserRepo := setupAuthRouter()
			tt.setupMocks(mockUserRepo)

			w := performJSON(router, http.MethodPost, "/auth/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response["message"])
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	hashed, err := bcrypt.GenerateFromPassword([]byte("correcthorse"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &models.User{
		Model:    gorm.Model{ID: 7},
		Name:     "Arjun Mehta",
		Email:    "arjun@example.com",
		Password: string(hashed),
	}

	t.Run("successful login returns token", func(t *testing.T) {
		router, mockUserRepo := setupAuthRouter()
		mockUserRepo.On("FindByEmail", "arjun@example.com").Return(user, nil)

		w := performJSON(router, http.MethodPost, "/auth/login", map[string]interface{}{
			"email":    "arjun@example.com",
			"password": "correcthorse",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data := response["data"].(map[string]interface{})
		assert.NotEmpty(t, data["token"])
		assert.Equal(t, float64(7), data["user_id"])
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		router, mockUserRepo := setupAuthRouter()
		mockUserRepo.On("FindByEmail", "arjun@example.com").Return(user, nil)

		w := performJSON(router, http.MethodPost, "/auth/login", map[string]interface{}{
			"email":    "arjun@example.com",
			"password": "wrongpassword",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		router, mockUserRepo := setupAuthRouter()
		mockUserRepo.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		w := performJSON(router, http.MethodPost, "/auth/login", map[string]interface{}{
			"email":    "ghost@example.com",
			"password": "correcthorse",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

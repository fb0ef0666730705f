// Package mocks holds shared testify mocks for the repository interfaces.
package mocks

import (
	"time"

	"concierge/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(email, hashedPassword string) error {
	args := m.Called(email, hashedPassword)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) IsAdmin(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type MockLifestyleProfileRepository struct {
	mock.Mock
}

func (m *MockLifestyleProfileRepository) FindByUserID(userID uint) (*models.LifestyleProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LifestyleProfile), args.Error(1)
}

func (m *MockLifestyleProfileRepository) Save(profile *models.LifestyleProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockLifestyleProfileRepository) GetProfileUpdatedAt(userID uint) (*time.Time, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockLifestyleProfileRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetInterestSlugs(userID uint) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPreferenceRepository) GetPreferredServiceSlugs(userID uint) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPreferenceRepository) ReplaceInterests(userID uint, slugs []string) error {
	args := m.Called(userID, slugs)
	return args.Error(0)
}

func (m *MockPreferenceRepository) ReplacePreferredServices(userID uint, slugs []string) error {
	args := m.Called(userID, slugs)
	return args.Error(0)
}

func (m *MockPreferenceRepository) ListInterestTypes() ([]models.InterestType, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InterestType), args.Error(1)
}

func (m *MockPreferenceRepository) ListServiceTypes() ([]models.ServiceType, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceType), args.Error(1)
}

type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) FindActiveByUserID(userID uint) ([]models.Recommendation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) ReplaceForUser(userID uint, recs []models.Recommendation) error {
	args := m.Called(userID, recs)
	return args.Error(0)
}

func (m *MockRecommendationRepository) Dismiss(userID, recommendationID uint) error {
	args := m.Called(userID, recommendationID)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(request *models.ServiceRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(id uint) (*models.ServiceRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceRequest), args.Error(1)
}

func (m *MockBookingRepository) FindAllByUserID(userID uint, limit int) ([]models.ServiceRequest, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceRequest), args.Error(1)
}

func (m *MockBookingRepository) FindAll(status string, limit int) ([]models.ServiceRequest, error) {
	args := m.Called(status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceRequest), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CountByServiceType(userID uint) (map[string]int, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(notification *models.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindAllByUserID(userID uint, limit int) ([]models.Notification, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) CountUnread(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Delete(userID, notificationID uint) error {
	args := m.Called(userID, notificationID)
	return args.Error(0)
}

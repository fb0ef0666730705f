package recommend

import (
	"errors"
	"testing"
	"time"

	"concierge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockProfileStore struct {
	mock.Mock
}

func (m *mockProfileStore) FindByUserID(userID uint) (*models.LifestyleProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LifestyleProfile), args.Error(1)
}

type mockPreferenceStore struct {
	mock.Mock
}

func (m *mockPreferenceStore) GetInterestSlugs(userID uint) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockPreferenceStore) GetPreferredServiceSlugs(userID uint) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockRecommendationStore struct {
	mock.Mock
}

func (m *mockRecommendationStore) FindActiveByUserID(userID uint) ([]models.Recommendation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recommendation), args.Error(1)
}

func (m *mockRecommendationStore) ReplaceForUser(userID uint, recs []models.Recommendation) error {
	args := m.Called(userID, recs)
	return args.Error(0)
}

type mockBookingHistory struct {
	mock.Mock
}

func (m *mockBookingHistory) CountByServiceType(userID uint) (map[string]int, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func newTestService() (*Service, *mockProfileStore, *mockPreferenceStore, *mockRecommendationStore, *mockBookingHistory) {
	profiles := new(mockProfileStore)
	preferences := new(mockPreferenceStore)
	recommendations := new(mockRecommendationStore)
	history := new(mockBookingHistory)
	service := NewService(profiles, preferences, recommendations, history, "").
		WithClock(func() time.Time { return neutralTime })
	return service, profiles, preferences, recommendations, history
}

func freshProfile(updatedAt time.Time) *models.LifestyleProfile {
	profile := comfortProfile()
	profile.ProfileUpdatedAt = updatedAt
	return profile
}

func TestRecomputeMissingProfile(t *testing.T) {
	service, profiles, _, _, _ := newTestService()
	profiles.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)

	result, err := service.Recompute(1, false)

	assert.NoError(t, err)
	assert.False(t, result.HasProfile)
	assert.Equal(t, SourceGenerated, result.Source)
	assert.Empty(t, result.Recommendations)
	assert.Nil(t, result.ProfileUpdatedAt)
	assert.Equal(t, DefaultAlgorithmVersion, result.AlgorithmVersion)
}

func TestRecomputeProfileReadError(t *testing.T) {
	service, profiles, _, _, _ := newTestService()
	profiles.On("FindByUserID", uint(1)).Return(nil, errors.New("connection refused"))

	result, err := service.Recompute(1, false)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRecomputeServesFreshCache(t *testing.T) {
	service, profiles, _, recommendations, _ := newTestService()

	updatedAt := neutralTime.Add(-time.Hour)
	generatedAt := neutralTime.Add(-30 * time.Minute)
	profiles.On("FindByUserID", uint(1)).Return(freshProfile(updatedAt), nil)

	cached := []models.Recommendation{
		{
			ServiceType:            ServiceHotel,
			MatchScore:             90,
			GeneratedAt:            generatedAt,
			SourceProfileUpdatedAt: &updatedAt,
			AlgorithmVersion:       DefaultAlgorithmVersion,
		},
	}
	recommendations.On("FindActiveByUserID", uint(1)).Return(cached, nil)

	result, err := service.Recompute(1, false)

	assert.NoError(t, err)
	assert.True(t, result.HasProfile)
	assert.Equal(t, SourceDatabase, result.Source)
	assert.Len(t, result.Recommendations, 1)
	assert.Equal(t, generatedAt, *result.GeneratedAt)
	assert.Equal(t, DefaultAlgorithmVersion, result.AlgorithmVersion)
	recommendations.AssertNotCalled(t, "ReplaceForUser", mock.Anything, mock.Anything)
}

func TestRecomputeRegeneratesOnStaleCache(t *testing.T) {
	service, profiles, preferences, recommendations, history := newTestService()

	updatedAt := neutralTime.Add(-time.Hour)
	staleSource := updatedAt.Add(-time.Minute)
	profiles.On("FindByUserID", uint(1)).Return(freshProfile(updatedAt), nil)

	// One row generated against an older profile invalidates the whole set.
	cached := []models.Recommendation{
		{ServiceType: ServiceHotel, SourceProfileUpdatedAt: &updatedAt},
		{ServiceType: ServiceCourier, SourceProfileUpdatedAt: &staleSource},
	}
	recommendations.On("FindActiveByUserID", uint(1)).Return(cached, nil)
	preferences.On("GetInterestSlugs", uint(1)).Return([]string{"fine_dining", "shopping"}, nil)
	preferences.On("GetPreferredServiceSlugs", uint(1)).Return([]string{SlugHotel}, nil)
	history.On("CountByServiceType", uint(1)).Return(map[string]int{}, nil)
	recommendations.On("ReplaceForUser", uint(1), mock.Anything).Return(nil)

	result, err := service.Recompute(1, false)

	assert.NoError(t, err)
	assert.Equal(t, SourceGenerated, result.Source)
	assert.Len(t, result.Recommendations, 1)
	assert.Equal(t, ServiceHotel, result.Recommendations[0].ServiceType)
	assert.Equal(t, uint(1), result.Recommendations[0].UserID)
	assert.Equal(t, updatedAt, *result.Recommendations[0].SourceProfileUpdatedAt)
	assert.Equal(t, neutralTime, result.Recommendations[0].GeneratedAt)
	recommendations.AssertCalled(t, "ReplaceForUser", uint(1), mock.Anything)
}

func TestRecomputeForceSkipsCache(t *testing.T) {
	service, profiles, preferences, recommendations, history := newTestService()

	updatedAt := neutralTime.Add(-time.Hour)
	profiles.On("FindByUserID", uint(1)).Return(freshProfile(updatedAt), nil)
	preferences.On("GetInterestSlugs", uint(1)).Return([]string{}, nil)
	preferences.On("GetPreferredServiceSlugs", uint(1)).Return([]string{SlugHotel}, nil)
	history.On("CountByServiceType", uint(1)).Return(map[string]int{}, nil)
	recommendations.On("ReplaceForUser", uint(1), mock.Anything).Return(nil)

	result, err := service.Recompute(1, true)

	assert.NoError(t, err)
	assert.Equal(t, SourceGenerated, result.Source)
	recommendations.AssertNotCalled(t, "FindActiveByUserID", mock.Anything)
}

func TestRecomputeDegradesOnAuxiliaryFailures(t *testing.T) {
	service, profiles, preferences, recommendations, history := newTestService()

	updatedAt := neutralTime.Add(-time.Hour)
	profiles.On("FindByUserID", uint(1)).Return(freshProfile(updatedAt), nil)
	recommendations.On("FindActiveByUserID", uint(1)).Return(nil, errors.New("cache table missing"))
	preferences.On("GetInterestSlugs", uint(1)).Return(nil, errors.New("join failed"))
	preferences.On("GetPreferredServiceSlugs", uint(1)).Return([]string{SlugHotel}, nil)
	history.On("CountByServiceType", uint(1)).Return(nil, errors.New("history failed"))
	recommendations.On("ReplaceForUser", uint(1), mock.Anything).Return(errors.New("insert failed"))

	result, err := service.Recompute(1, false)

	// Every failure beyond the profile read degrades instead of erroring.
	assert.NoError(t, err)
	assert.True(t, result.HasProfile)
	assert.Equal(t, SourceGenerated, result.Source)
	assert.Len(t, result.Recommendations, 1)
}

func TestCacheFreshness(t *testing.T) {
	now := neutralTime
	older := now.Add(-time.Minute)

	fresh, _ := cacheFreshness(nil, now)
	assert.False(t, fresh)

	fresh, _ = cacheFreshness([]models.Recommendation{{SourceProfileUpdatedAt: nil}}, now)
	assert.False(t, fresh)

	fresh, _ = cacheFreshness([]models.Recommendation{{SourceProfileUpdatedAt: &older}}, now)
	assert.False(t, fresh)

	fresh, meta := cacheFreshness([]models.Recommendation{
		{SourceProfileUpdatedAt: &now, GeneratedAt: now, AlgorithmVersion: "v1"},
	}, now)
	assert.True(t, fresh)
	assert.Equal(t, "v1", meta.algorithmVersion)
	assert.Equal(t, now, *meta.generatedAt)
}

package recommend

import (
	"errors"
	"log"
	"time"

	"concierge/internal/models"

	"gorm.io/gorm"
)

// Result sources.
const (
	SourceDatabase  = "database"
	SourceGenerated = "generated"
)

// DefaultAlgorithmVersion tags cached rows so future scoring changes can
// force recomputation independently of profile updates.
const DefaultAlgorithmVersion = "v1"

// ProfileStore loads the lifestyle profile that drives scoring.
type ProfileStore interface {
	FindByUserID(userID uint) (*models.LifestyleProfile, error)
}

// PreferenceStore reads normalized interest and preferred-service slugs.
type PreferenceStore interface {
	GetInterestSlugs(userID uint) ([]string, error)
	GetPreferredServiceSlugs(userID uint) ([]string, error)
}

// RecommendationStore persists the recommendation cache.
type RecommendationStore interface {
	FindActiveByUserID(userID uint) ([]models.Recommendation, error)
	ReplaceForUser(userID uint, recs []models.Recommendation) error
}

// BookingHistory exposes past booking counts per service type.
type BookingHistory interface {
	CountByServiceType(userID uint) (map[string]int, error)
}

// Result is the outcome of one Recompute call.
type Result struct {
	HasProfile       bool                    `json:"has_profile"`
	Source           string                  `json:"source"`
	Recommendations  []models.Recommendation `json:"recommendations"`
	ProfileUpdatedAt *time.Time              `json:"profile_updated_at"`
	GeneratedAt      *time.Time              `json:"generated_at"`
	AlgorithmVersion string                  `json:"algorithm_version"`
}

// Service orchestrates the recommendation cache: it serves persisted rows
// while they are fresh against the profile timestamp and regenerates them
// otherwise.
type Service struct {
	profiles         ProfileStore
	preferences      PreferenceStore
	recommendations  RecommendationStore
	history          BookingHistory
	algorithmVersion string
	clock            func() time.Time
}

func NewService(
	profiles ProfileStore,
	preferences PreferenceStore,
	recommendations RecommendationStore,
	history BookingHistory,
	algorithmVersion string,
) *Service {
	if algorithmVersion == "" {
		algorithmVersion = DefaultAlgorithmVersion
	}
	return &Service{
		profiles:         profiles,
		preferences:      preferences,
		recommendations:  recommendations,
		history:          history,
		algorithmVersion: algorithmVersion,
		clock:            time.Now,
	}
}

// WithClock overrides the time source. Tests use this to pin dynamic pricing.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

// Recompute returns the user's recommendations, regenerating when the cache
// is stale or force is set. A cached set is fresh only when every row was
// generated against a profile timestamp at least as new as the current one.
// Persistence failures degrade to computed-but-not-cached; only a failure to
// read the profile itself is an error.
func (s *Service) Recompute(userID uint, force bool) (*Result, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Result{
				HasProfile:       false,
				Source:           SourceGenerated,
				Recommendations:  []models.Recommendation{},
				AlgorithmVersion: s.algorithmVersion,
			}, nil
		}
		return nil, err
	}

	profileUpdatedAt := profile.ProfileUpdatedAt

	if !force {
		cached, err := s.recommendations.FindActiveByUserID(userID)
		if err != nil {
			log.Printf("recommendation cache read failed for user %d: %v", userID, err)
		} else if fresh, meta := cacheFreshness(cached, profileUpdatedAt); fresh {
			return &Result{
				HasProfile:       true,
				Source:           SourceDatabase,
				Recommendations:  cached,
				ProfileUpdatedAt: &profileUpdatedAt,
				GeneratedAt:      meta.generatedAt,
				AlgorithmVersion: meta.algorithmVersion,
			}, nil
		}
	}

	interests, err := s.preferences.GetInterestSlugs(userID)
	if err != nil {
		log.Printf("interest lookup failed for user %d: %v", userID, err)
		interests = nil
	}
	preferredServices, err := s.preferences.GetPreferredServiceSlugs(userID)
	if err != nil {
		log.Printf("preferred service lookup failed for user %d: %v", userID, err)
		preferredServices = nil
	}

	pastCounts, err := s.history.CountByServiceType(userID)
	if err != nil {
		log.Printf("booking history lookup failed for user %d: %v", userID, err)
		pastCounts = map[string]int{}
	}

	now := s.clock()
	recs := Generate(profile, interests, preferredServices, pastCounts, now)
	for i := range recs {
		recs[i].UserID = userID
		recs[i].GeneratedAt = now
		recs[i].SourceProfileUpdatedAt = &profileUpdatedAt
		recs[i].AlgorithmVersion = s.algorithmVersion
	}

	if err := s.recommendations.ReplaceForUser(userID, recs); err != nil {
		// The response is still correct for this call; it just won't be
		// served from cache next time.
		log.Printf("failed to persist recommendations for user %d: %v", userID, err)
	}

	return &Result{
		HasProfile:       true,
		Source:           SourceGenerated,
		Recommendations:  recs,
		ProfileUpdatedAt: &profileUpdatedAt,
		GeneratedAt:      &now,
		AlgorithmVersion: s.algorithmVersion,
	}, nil
}

type cacheMeta struct {
	generatedAt      *time.Time
	algorithmVersion string
}

// cacheFreshness checks that every cached row carries a source profile
// timestamp no older than the profile's current one. A single missing or
// stale row invalidates the whole set.
func cacheFreshness(cached []models.Recommendation, profileUpdatedAt time.Time) (bool, cacheMeta) {
	if len(cached) == 0 {
		return false, cacheMeta{}
	}

	meta := cacheMeta{}
	for i := range cached {
		row := &cached[i]
		if row.SourceProfileUpdatedAt == nil || row.SourceProfileUpdatedAt.Before(profileUpdatedAt) {
			return false, cacheMeta{}
		}
		if meta.generatedAt == nil && !row.GeneratedAt.IsZero() {
			generatedAt := row.GeneratedAt
			meta.generatedAt = &generatedAt
		}
		if meta.algorithmVersion == "" {
			meta.algorithmVersion = row.AlgorithmVersion
		}
	}
	return true, meta
}

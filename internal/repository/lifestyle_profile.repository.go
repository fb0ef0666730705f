package repository

import (
	"time"

	"concierge/internal/models"

	"gorm.io/gorm"
)

type LifestyleProfileRepository interface {
	FindByUserID(userID uint) (*models.LifestyleProfile, error)
	// Save upserts the profile and bumps ProfileUpdatedAt, invalidating any
	// cached recommendations generated against the previous version.
	Save(profile *models.LifestyleProfile) error
	GetProfileUpdatedAt(userID uint) (*time.Time, error)
	DeleteByUserID(userID uint) error
}

type lifestyleProfileRepository struct {
	db *gorm.DB
}

func NewLifestyleProfileRepository(db *gorm.DB) LifestyleProfileRepository {
	return &lifestyleProfileRepository{db}
}

func (r *lifestyleProfileRepository) FindByUserID(userID uint) (*models.LifestyleProfile, error) {
	var profile models.LifestyleProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *lifestyleProfileRepository) Save(profile *models.LifestyleProfile) error {
	profile.ProfileUpdatedAt = time.Now()

	var existing models.LifestyleProfile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.db.Create(profile).Error
		}
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}

func (r *lifestyleProfileRepository) GetProfileUpdatedAt(userID uint) (*time.Time, error) {
	var profile models.LifestyleProfile
	err := r.db.Select("profile_updated_at").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile.ProfileUpdatedAt, nil
}

func (r *lifestyleProfileRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.LifestyleProfile{}).Error
}

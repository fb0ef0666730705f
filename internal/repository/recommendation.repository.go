package repository

import (
	"concierge/internal/models"

	"gorm.io/gorm"
)

type RecommendationRepository interface {
	// FindActiveByUserID returns non-dismissed cached rows, highest score first.
	FindActiveByUserID(userID uint) ([]models.Recommendation, error)
	// ReplaceForUser atomically swaps the user's cached set for a new one.
	// Rows are never partially updated.
	ReplaceForUser(userID uint, recs []models.Recommendation) error
	Dismiss(userID, recommendationID uint) error
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db}
}

func (r *recommendationRepository) FindActiveByUserID(userID uint) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	err := r.db.Where("user_id = ? AND is_dismissed = ?", userID, false).
		Order("match_score DESC").
		Find(&recs).Error
	return recs, err
}

func (r *recommendationRepository) ReplaceForUser(userID uint, recs []models.Recommendation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Recommendation{}).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		return tx.Create(&recs).Error
	})
}

func (r *recommendationRepository) Dismiss(userID, recommendationID uint) error {
	result := r.db.Model(&models.Recommendation{}).
		Where("id = ? AND user_id = ?", recommendationID, userID).
		Update("is_dismissed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

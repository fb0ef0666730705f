package repository

import (
	"strings"

	"concierge/internal/models"

	"gorm.io/gorm"
)

// InterestCatalog and ServiceCatalog are the fixed slug/label enumerations
// seeded into the catalog tables at migration time.
var InterestCatalog = []models.InterestType{
	{Slug: "hiking", Label: "Hiking"},
	{Slug: "fine_dining", Label: "Fine Dining"},
	{Slug: "spa", Label: "Spa & Wellness"},
	{Slug: "shopping", Label: "Shopping"},
	{Slug: "cinema", Label: "Cinema"},
	{Slug: "sports", Label: "Sports"},
	{Slug: "tech", Label: "Technology"},
	{Slug: "fitness", Label: "Fitness"},
	{Slug: "music", Label: "Music"},
	{Slug: "art", Label: "Art & Culture"},
}

var ServiceCatalog = []models.ServiceType{
	{Slug: "hotel", Label: "Hotels"},
	{Slug: "flight", Label: "Flights"},
	{Slug: "cab", Label: "Cabs"},
	{Slug: "technician", Label: "Technicians"},
	{Slug: "courier", Label: "Courier"},
}

type PreferenceRepository interface {
	GetInterestSlugs(userID uint) ([]string, error)
	GetPreferredServiceSlugs(userID uint) ([]string, error)
	ReplaceInterests(userID uint, slugs []string) error
	ReplacePreferredServices(userID uint, slugs []string) error
	ListInterestTypes() ([]models.InterestType, error)
	ListServiceTypes() ([]models.ServiceType, error)
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db}
}

// NormalizeSlugs lowercases and trims a slug list, dropping empties. Accepts
// either individual values or comma-joined legacy strings.
func NormalizeSlugs(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			slug := strings.ToLower(strings.TrimSpace(part))
			if slug != "" {
				out = append(out, slug)
			}
		}
	}
	return out
}

func (r *preferenceRepository) GetInterestSlugs(userID uint) ([]string, error) {
	var slugs []string
	err := r.db.Model(&models.UserInterest{}).
		Select("lifestyle_interest_types.slug").
		Joins("JOIN lifestyle_interest_types ON lifestyle_interest_types.id = user_lifestyle_interests.interest_type_id").
		Where("user_lifestyle_interests.user_id = ?", userID).
		Order("lifestyle_interest_types.slug").
		Scan(&slugs).Error
	return slugs, err
}

func (r *preferenceRepository) GetPreferredServiceSlugs(userID uint) ([]string, error) {
	var slugs []string
	err := r.db.Model(&models.UserPreferredService{}).
		Select("lifestyle_service_types.slug").
		Joins("JOIN lifestyle_service_types ON lifestyle_service_types.id = user_lifestyle_preferred_services.service_type_id").
		Where("user_lifestyle_preferred_services.user_id = ?", userID).
		Order("lifestyle_service_types.slug").
		Scan(&slugs).Error
	return slugs, err
}

func (r *preferenceRepository) ReplaceInterests(userID uint, slugs []string) error {
	slugs = NormalizeSlugs(slugs)
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserInterest{}).Error; err != nil {
			return err
		}
		if len(slugs) == 0 {
			return nil
		}
		var types []models.InterestType
		if err := tx.Where("slug IN ?", slugs).Find(&types).Error; err != nil {
			return err
		}
		rows := make([]models.UserInterest, 0, len(types))
		for _, t := range types {
			rows = append(rows, models.UserInterest{UserID: userID, InterestTypeID: t.ID})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *preferenceRepository) ReplacePreferredServices(userID uint, slugs []string) error {
	slugs = NormalizeSlugs(slugs)
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserPreferredService{}).Error; err != nil {
			return err
		}
		if len(slugs) == 0 {
			return nil
		}
		var types []models.ServiceType
		if err := tx.Where("slug IN ?", slugs).Find(&types).Error; err != nil {
			return err
		}
		rows := make([]models.UserPreferredService, 0, len(types))
		for _, t := range types {
			rows = append(rows, models.UserPreferredService{UserID: userID, ServiceTypeID: t.ID})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *preferenceRepository) ListInterestTypes() ([]models.InterestType, error) {
	var types []models.InterestType
	err := r.db.Where("is_active = ?", true).Order("slug").Find(&types).Error
	return types, err
}

func (r *preferenceRepository) ListServiceTypes() ([]models.ServiceType, error) {
	var types []models.ServiceType
	err := r.db.Where("is_active = ?", true).Order("slug").Find(&types).Error
	return types, err
}

package repository

import (
	"concierge/internal/models"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(request *models.ServiceRequest) error
	FindByID(id uint) (*models.ServiceRequest, error)
	FindAllByUserID(userID uint, limit int) ([]models.ServiceRequest, error)
	FindAll(status string, limit int) ([]models.ServiceRequest, error)
	UpdateStatus(id uint, status string) error
	// CountByServiceType feeds the recommendation engine's history bonus.
	CountByServiceType(userID uint) (map[string]int, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db}
}

func (r *bookingRepository) Create(request *models.ServiceRequest) error {
	return r.db.Create(request).Error
}

func (r *bookingRepository) FindByID(id uint) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	err := r.db.First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *bookingRepository) FindAllByUserID(userID uint, limit int) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&requests).Error
	return requests, err
}

func (r *bookingRepository) FindAll(status string, limit int) ([]models.ServiceRequest, error) {
	var requests []models.ServiceRequest
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&requests).Error
	return requests, err
}

func (r *bookingRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&models.ServiceRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookingRepository) CountByServiceType(userID uint) (map[string]int, error) {
	type row struct {
		ServiceType string
		Count       int
	}
	var rows []row
	err := r.db.Model(&models.ServiceRequest{}).
		Select("service_type, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("service_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.ServiceType] = r.Count
	}
	return counts, nil
}

package models

import "time"

// InterestType is a catalog row for a lifestyle interest (fine_dining, spa, ...).
type InterestType struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Slug      string    `gorm:"unique;not null" json:"slug" example:"fine_dining"`
	Label     string    `gorm:"not null" json:"label" example:"Fine Dining"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

func (InterestType) TableName() string {
	return "lifestyle_interest_types"
}

// ServiceType is a catalog row for a bookable service category (hotel, cab, ...).
type ServiceType struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Slug      string    `gorm:"unique;not null" json:"slug" example:"hotel"`
	Label     string    `gorm:"not null" json:"label" example:"Hotels"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

func (ServiceType) TableName() string {
	return "lifestyle_service_types"
}

// UserInterest joins users to interest catalog rows.
type UserInterest struct {
	UserID         uint      `gorm:"primaryKey" json:"user_id"`
	InterestTypeID uint      `gorm:"primaryKey;index" json:"interest_type_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (UserInterest) TableName() string {
	return "user_lifestyle_interests"
}

// UserPreferredService joins users to the service categories they opted into.
// The recommendation engine never emits a service missing from this set.
type UserPreferredService struct {
	UserID        uint      `gorm:"primaryKey" json:"user_id"`
	ServiceTypeID uint      `gorm:"primaryKey;index" json:"service_type_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (UserPreferredService) TableName() string {
	return "user_lifestyle_preferred_services"
}

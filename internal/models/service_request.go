package models

import (
	"time"

	"gorm.io/gorm"
)

// Service request statuses.
const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusCompleted = "completed"
	RequestStatusRejected  = "rejected"
)

// ServiceRequest is a booking request for one of the concierge services.
// Details carries the per-service form payload (dates, routes, addresses);
// totals are computed server side from the pricing rules.
type ServiceRequest struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID      uint           `gorm:"index" json:"user_id" example:"1"`
	User        User           `gorm:"foreignKey:UserID" json:"-" swaggerignore:"true"`
	ServiceType string         `gorm:"index" json:"service_type" example:"Hotel Booking"`
	BookingRef  string         `gorm:"unique" json:"booking_ref" example:"CNG-3F2A9C1D"`
	Status      string         `gorm:"default:pending" json:"status" example:"pending"`
	Details     JSONMap        `gorm:"type:jsonb" json:"details" swaggertype:"object"`
	Subtotal    float64        `json:"subtotal" example:"5000"`
	Tax         float64        `json:"tax" example:"900"`
	Total       float64        `json:"total" example:"5900"`
}

func (ServiceRequest) TableName() string {
	return "requests"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID    uint           `gorm:"index" json:"user_id" example:"1"`
	Title     string         `json:"title" example:"Booking Confirmed"`
	Message   string         `json:"message" example:"Your hotel booking CNG-3F2A9C1D has been approved."`
	Icon      string         `gorm:"default:notifications" json:"icon" example:"hotel"`
	Type      string         `gorm:"default:info" json:"type" example:"success"`
	IsRead    bool           `gorm:"default:false" json:"is_read"`
}

// BookingEvent is the payload queued to the notification worker when a
// booking is created or changes status. It is also what gets published to the
// events exchange.
type BookingEvent struct {
	EventID     string    `json:"event_id"`
	Kind        string    `json:"kind"` // booking.created | booking.status_changed
	UserID      uint      `json:"user_id"`
	RequestID   uint      `json:"request_id"`
	ServiceType string    `json:"service_type"`
	BookingRef  string    `json:"booking_ref"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

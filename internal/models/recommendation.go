package models

import (
	"time"

	"gorm.io/gorm"
)

// Recommendation is one cached row of the rule engine's output. The full set
// for a user is replaced (delete + reinsert) on every recompute.
// SourceProfileUpdatedAt freezes the profile timestamp the row was generated
// against; the cached set is valid only while every row's value is >= the
// profile's current ProfileUpdatedAt.
type Recommendation struct {
	ID                     uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt              time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt              time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID                 uint           `gorm:"index" json:"user_id" example:"1"`
	User                   User           `gorm:"foreignKey:UserID" json:"-" swaggerignore:"true"`
	ServiceType            string         `json:"service_type" example:"Hotel Booking"`
	Title                  string         `json:"title" example:"Hotel Booking"`
	Description            string         `json:"description" example:"Perfect for frequent traveler, luxury lifestyle."`
	Reason                 string         `json:"reason" example:"Perfect for frequent traveler, luxury lifestyle."`
	MatchScore             int            `json:"match_score" example:"85"`
	Metadata               JSONMap        `gorm:"type:jsonb" json:"metadata" swaggertype:"object"`
	IsDismissed            bool           `gorm:"default:false" json:"-"`
	GeneratedAt            time.Time      `json:"generated_at" example:"2023-01-01T00:00:00Z"`
	SourceProfileUpdatedAt *time.Time     `json:"source_profile_updated_at" example:"2023-01-01T00:00:00Z"`
	AlgorithmVersion       string         `json:"algorithm_version" example:"v1"`
}

func (Recommendation) TableName() string {
	return "ai_recommendations"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// LifestyleProfile holds one lifestyle questionnaire per user. ProfileUpdatedAt
// is bumped on every save and acts as the staleness key for cached
// recommendations.
type LifestyleProfile struct {
	ID               uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt        time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt        time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID           uint           `gorm:"unique" json:"user_id" example:"1"`
	AgeGroup         string         `json:"age_group" example:"young_adult"`
	Profession       string         `json:"profession" example:"working"`
	MonthlyBudget    string         `json:"monthly_budget" example:"medium"`
	LifestyleType    string         `json:"lifestyle_type" example:"comfort"`
	TravelFrequency  string         `json:"travel_frequency" example:"monthly"`
	TravelStyle      string         `json:"travel_style" example:"comfort"`
	TypicalGroupSize int            `json:"typical_group_size" example:"2"`
	PreferredCabType string         `json:"preferred_cab_type" example:"sedan"`
	DietaryPref      string         `json:"dietary_pref" example:"none"`
	City             string         `json:"city" example:"Mumbai"`
	Area             string         `json:"area" example:"Andheri"`
	HomeOwner        bool           `json:"home_owner" example:"false"`

	// Legacy comma-joined preference strings. Kept only as input for the
	// one-time startup backfill into the join tables; never read at
	// recommendation time.
	LegacyInterests         string `gorm:"column:interests" json:"-" swaggerignore:"true"`
	LegacyPreferredServices string `gorm:"column:preferred_services" json:"-" swaggerignore:"true"`

	ProfileUpdatedAt time.Time `json:"profile_updated_at" example:"2023-01-01T00:00:00Z"`
}

func (LifestyleProfile) TableName() string {
	return "lifestyle_profiles"
}

// GroupSize clamps TypicalGroupSize to at least one traveler.
func (p *LifestyleProfile) GroupSize() int {
	if p.TypicalGroupSize < 1 {
		return 1
	}
	return p.TypicalGroupSize
}

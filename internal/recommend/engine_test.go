package recommend

import (
	"testing"
	"time"

	"concierge/internal/models"

	"github.com/stretchr/testify/assert"
)

// neutralTime is a Wednesday at noon, when no dynamic pricing rule fires.
var neutralTime = time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)

func comfortProfile() *models.LifestyleProfile {
	return &models.LifestyleProfile{
		UserID:           1,
		AgeGroup:         "young_adult",
		Profession:       "working",
		MonthlyBudget:    "medium",
		LifestyleType:    "comfort",
		TravelFrequency:  "monthly",
		TravelStyle:      "comfort",
		TypicalGroupSize: 2,
		PreferredCabType: "sedan",
		City:             "Mumbai",
		HomeOwner:        false,
	}
}

func luxuryProfile() *models.LifestyleProfile {
	return &models.LifestyleProfile{
		UserID:           2,
		AgeGroup:         "adult",
		Profession:       "business",
		MonthlyBudget:    "premium",
		LifestyleType:    "luxury",
		TravelFrequency:  "frequent",
		TravelStyle:      "luxury",
		TypicalGroupSize: 3,
		PreferredCabType: "luxury",
		City:             "Bangalore",
		HomeOwner:        true,
	}
}

func serviceTypes(recs []models.Recommendation) []string {
	types := make([]string, 0, len(recs))
	for _, rec := range recs {
		types = append(types, rec.ServiceType)
	}
	return types
}

func TestGenerateHotelOnly(t *testing.T) {
	recs := Generate(
		comfortProfile(),
		[]string{"fine_dining", "shopping"},
		[]string{SlugHotel},
		map[string]int{},
		neutralTime,
	)

	assert.Equal(t, []string{ServiceHotel}, serviceTypes(recs))
	assert.Equal(t, 90, recs[0].MatchScore)
	assert.Equal(t, "Comfort Hotels", recs[0].Metadata["hotel_type"])
	assert.Equal(t, "Mumbai", recs[0].Metadata["location"])
	assert.Equal(t, 2, recs[0].Metadata["guests"])
	assert.Equal(t, 1, recs[0].Metadata["rooms_suggested"])
	assert.Equal(t, "₹5,000-16,500", recs[0].Metadata["estimated_trip_cost"])
	assert.Equal(t, "₹2,500-5,500/night", recs[0].Metadata["price"])
}

func TestGenerateHotelAndCourierOnly(t *testing.T) {
	profile := &models.LifestyleProfile{
		UserID:           3,
		Profession:       "business",
		MonthlyBudget:    "high",
		LifestyleType:    "luxury",
		TravelFrequency:  "weekly",
		TravelStyle:      "business",
		TypicalGroupSize: 1,
		PreferredCabType: "luxury",
		City:             "Delhi",
	}

	recs := Generate(
		profile,
		[]string{"fine_dining", "tech"},
		[]string{SlugHotel, SlugCourier},
		map[string]int{},
		neutralTime,
	)

	types := serviceTypes(recs)
	assert.Equal(t, []string{ServiceHotel, ServiceCourier}, types)
	assert.NotContains(t, types, ServiceFlight)
	assert.NotContains(t, types, ServiceCar)
	assert.Equal(t, 95, recs[0].MatchScore)
	assert.Equal(t, 80, recs[1].MatchScore)
	assert.Equal(t, "Express Delivery", recs[1].Metadata["delivery"])
}

func TestGenerateAllServices(t *testing.T) {
	recs := Generate(
		luxuryProfile(),
		[]string{"fine_dining", "spa", "tech"},
		[]string{SlugHotel, SlugFlight, SlugCab, SlugTechnician, SlugCourier},
		map[string]int{},
		neutralTime,
	)

	assert.Len(t, recs, 5)
	assert.Equal(t, []string{ServiceHotel, ServiceTechnician, ServiceCourier, ServiceFlight, ServiceCar}, serviceTypes(recs))

	// Scores are capped per service and sorted highest first.
	assert.Equal(t, []int{95, 90, 80, 70, 55}, []int{
		recs[0].MatchScore, recs[1].MatchScore, recs[2].MatchScore, recs[3].MatchScore, recs[4].MatchScore,
	})
	assert.Equal(t, "Business Class", recs[3].Metadata["class"])
	assert.Equal(t, "Luxury Cabs (BMW/Merc)", recs[4].Metadata["vehicle"])
}

func TestGenerateNeverSuggestsUnselectedServices(t *testing.T) {
	// Strong signals for everything, but only flight is opted in.
	recs := Generate(
		luxuryProfile(),
		[]string{"fine_dining", "spa", "tech", "shopping"},
		[]string{SlugFlight},
		map[string]int{ServiceHotel: 10, ServiceCar: 10},
		neutralTime,
	)

	assert.Equal(t, []string{ServiceFlight}, serviceTypes(recs))
}

func TestGenerateEmptySelectionYieldsNothing(t *testing.T) {
	recs := Generate(
		comfortProfile(),
		[]string{"fine_dining"},
		nil,
		map[string]int{},
		neutralTime,
	)

	assert.Empty(t, recs)
}

func TestGenerateLowBudgetGatesLuxury(t *testing.T) {
	profile := comfortProfile()
	profile.MonthlyBudget = "low"
	profile.LifestyleType = "luxury"
	profile.TravelFrequency = "rare"

	recs := Generate(
		profile,
		nil,
		[]string{SlugHotel, SlugFlight},
		map[string]int{},
		neutralTime,
	)

	// Both candidates are disqualified, so the selection falls back to flat
	// static rows in selection order.
	assert.Equal(t, []string{ServiceHotel, ServiceFlight}, serviceTypes(recs))
	for _, rec := range recs {
		assert.Equal(t, 70, rec.MatchScore)
		assert.Equal(t, "Based on your service preference", rec.Reason)
	}
	assert.Equal(t, "₹3,000-15,000/night", recs[0].Metadata["price"])
}

func TestGenerateTechnicianRequiresHomeOwner(t *testing.T) {
	profile := comfortProfile()
	profile.HomeOwner = false

	recs := Generate(profile, []string{"tech"}, []string{SlugTechnician}, map[string]int{}, neutralTime)
	// No technician candidate and no other recs, so the fallback row appears
	// instead of a scored one.
	assert.Equal(t, []string{ServiceTechnician}, serviceTypes(recs))
	assert.Equal(t, 70, recs[0].MatchScore)

	profile.HomeOwner = true
	recs = Generate(profile, []string{"tech"}, []string{SlugTechnician}, map[string]int{}, neutralTime)
	assert.Equal(t, []string{ServiceTechnician}, serviceTypes(recs))
	assert.Equal(t, 90, recs[0].MatchScore)
}

func TestGenerateHistoryBonusIsCapped(t *testing.T) {
	recs := Generate(
		comfortProfile(),
		[]string{"fine_dining", "shopping"},
		[]string{SlugHotel},
		map[string]int{ServiceHotel: 2},
		neutralTime,
	)

	// 90 base plus a 20 point history bonus, capped at the hotel ceiling.
	assert.Equal(t, 95, recs[0].MatchScore)
}

func TestHistoryBonus(t *testing.T) {
	assert.Equal(t, 15, historyBonus(1))
	assert.Equal(t, 25, historyBonus(3))
	assert.Equal(t, 30, historyBonus(4))
	assert.Equal(t, 30, historyBonus(50))
}

func TestGenerateDefaultsMissingProfileFields(t *testing.T) {
	profile := &models.LifestyleProfile{UserID: 9}

	recs := Generate(profile, nil, []string{SlugHotel}, map[string]int{}, neutralTime)

	// Defaults (monthly, comfort, medium) score 25+20+25 = 70.
	assert.Equal(t, []string{ServiceHotel}, serviceTypes(recs))
	assert.Equal(t, 70, recs[0].MatchScore)
	assert.Equal(t, "Major Cities", recs[0].Metadata["location"])
}

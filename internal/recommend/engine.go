package recommend

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"concierge/internal/models"
)

// Canonical service type names, matching the service_type column on requests
// and ai_recommendations.
const (
	ServiceHotel      = "Hotel Booking"
	ServiceFlight     = "Flight Booking"
	ServiceCar        = "Car Booking"
	ServiceTechnician = "Technician Booking"
	ServiceCourier    = "Courier Booking"
)

// Preference slugs as stored in the service catalog.
const (
	SlugHotel      = "hotel"
	SlugFlight     = "flight"
	SlugCab        = "cab"
	SlugTechnician = "technician"
	SlugCourier    = "courier"
)

const maxRecommendations = 5

// Per-service score caps.
const (
	capHotel      = 95
	capFlight     = 90
	capCar        = 85
	capTechnician = 90
	capCourier    = 80
)

const scoreThreshold = 40

// historyBonus grows with past bookings of the same service, capped at 30.
func historyBonus(count int) int {
	bonus := 10 + count*5
	if bonus > 30 {
		return 30
	}
	return bonus
}

func capScore(score, cap int) int {
	if score > cap {
		return cap
	}
	return score
}

func joinReasons(reasons []string, limit int) string {
	if limit > 0 && len(reasons) > limit {
		reasons = reasons[:limit]
	}
	return strings.Join(reasons, ", ")
}

// Generate scores the five candidate services against a lifestyle profile and
// returns at most five recommendations, highest match first. A service is
// only ever emitted when its slug is present in preferredServices; the
// engine must not suggest something the user did not opt into, no matter how
// strong the other signals are. The caller injects now so results are
// deterministic.
func Generate(
	profile *models.LifestyleProfile,
	interests []string,
	preferredServices []string,
	pastServiceCounts map[string]int,
	now time.Time,
) []models.Recommendation {
	travelFrequency := defaultStr(profile.TravelFrequency, "monthly")
	travelStyle := defaultStr(profile.TravelStyle, "comfort")
	lifestyleType := defaultStr(profile.LifestyleType, "comfort")
	monthlyBudget := defaultStr(profile.MonthlyBudget, "medium")
	groupSize := profile.GroupSize()
	cabType := defaultStr(profile.PreferredCabType, "sedan")

	recs := make([]models.Recommendation, 0, maxRecommendations)

	if rec, ok := scoreHotel(profile, interests, preferredServices, pastServiceCounts, now,
		travelFrequency, lifestyleType, monthlyBudget, travelStyle, groupSize); ok {
		recs = append(recs, rec)
	}
	if rec, ok := scoreFlight(profile, preferredServices, pastServiceCounts, now,
		travelFrequency, travelStyle, lifestyleType, monthlyBudget, groupSize); ok {
		recs = append(recs, rec)
	}
	if rec, ok := scoreCar(preferredServices, pastServiceCounts, now,
		cabType, lifestyleType, monthlyBudget, groupSize); ok {
		recs = append(recs, rec)
	}
	if rec, ok := scoreTechnician(profile, interests, preferredServices, pastServiceCounts, now); ok {
		recs = append(recs, rec)
	}
	if rec, ok := scoreCourier(profile, preferredServices, pastServiceCounts, now,
		travelStyle, monthlyBudget); ok {
		recs = append(recs, rec)
	}

	// Every explicitly selected service still yields something even when no
	// candidate cleared its threshold. These are flat, unpriced fallbacks.
	if len(recs) == 0 && len(preferredServices) > 0 {
		recs = fallbackRecommendations(preferredServices)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func scoreHotel(
	profile *models.LifestyleProfile,
	interests, preferredServices []string,
	pastServiceCounts map[string]int,
	now time.Time,
	travelFrequency, lifestyleType, monthlyBudget, travelStyle string,
	groupSize int,
) (models.Recommendation, bool) {
	score := 0
	var reasons []string

	if travelFrequency == "monthly" || travelFrequency == "weekly" || travelFrequency == "frequent" {
		score += 25
		reasons = append(reasons, "frequent traveler")
	}

	switch lifestyleType {
	case "luxury":
		score += 30
		reasons = append(reasons, "luxury lifestyle")
	case "comfort":
		score += 20
	}

	var matched []string
	for _, interest := range []string{"fine_dining", "spa", "shopping", "fitness"} {
		if slices.Contains(interests, interest) {
			matched = append(matched, interest)
		}
	}
	if len(matched) > 0 {
		score += len(matched) * 10
		reasons = append(reasons, "interests: "+strings.Join(matched, ", "))
	}

	if slices.Contains(preferredServices, SlugHotel) {
		score += 25
		reasons = append(reasons, "preferred service")
	}

	if count := pastServiceCounts[ServiceHotel]; count > 0 {
		score += historyBonus(count)
		reasons = append(reasons, fmt.Sprintf("booked %d times", count))
	}

	budgetOK := true
	var baseMin, baseMax, maxNights int
	var hotelType string

	// Budget tiers track the lifestyle form: low caps out around Rs 2,500 a
	// night and never gets luxury inventory.
	switch monthlyBudget {
	case "low":
		if lifestyleType == "luxury" || travelStyle == "luxury" {
			budgetOK = false
		}
		baseMin, baseMax = 1200, 2500
		hotelType = "Economy Hotels"
		maxNights = 2
	case "medium":
		if lifestyleType == "luxury" && !slices.Contains(interests, "fine_dining") {
			score -= 20
		}
		baseMin, baseMax = 2500, 5500
		hotelType = "Comfort Hotels"
		maxNights = 3
	case "high":
		if score > 0 {
			score += 15
			reasons = append(reasons, "premium budget")
		}
		baseMin, baseMax = 6000, 15000
		hotelType = "Premium Hotels"
		maxNights = 5
	default: // premium
		if score > 0 {
			score += 20
			reasons = append(reasons, "unlimited budget")
		}
		baseMin, baseMax = 15000, 45000
		hotelType = "Ultra-Luxury Resorts"
		maxNights = 10
	}

	if !slices.Contains(preferredServices, SlugHotel) || score < scoreThreshold || !budgetOK {
		return models.Recommendation{}, false
	}

	priceStr, priceReason := PriceInfo(ServiceHotel, baseMin, baseMax, now)

	// Roughly two guests per room, two nights minimum.
	roomsNeeded := (groupSize + 1) / 2
	if roomsNeeded < 1 {
		roomsNeeded = 1
	}
	tripMin := baseMin * roomsNeeded * 2
	tripMax := baseMax * roomsNeeded * maxNights

	location := profile.City
	if location == "" {
		location = "Major Cities"
	}

	reason := "Perfect for " + joinReasons(reasons, 2) + "."
	return models.Recommendation{
		ServiceType: ServiceHotel,
		Title:       ServiceHotel,
		Description: reason,
		Reason:      reason,
		MatchScore:  capScore(score, capHotel),
		Metadata: models.JSONMap{
			"price":                  priceStr,
			"price_reason":           priceReason,
			"hotel_type":             hotelType,
			"location":               location,
			"amenities":              "Matched to your preferences",
			"guests":                 groupSize,
			"rooms_suggested":        roomsNeeded,
			"max_nights_recommended": maxNights,
			"estimated_trip_cost":    "₹" + formatINR(tripMin) + "-" + formatINR(tripMax),
		},
	}, true
}

func scoreFlight(
	_ *models.LifestyleProfile,
	preferredServices []string,
	pastServiceCounts map[string]int,
	now time.Time,
	travelFrequency, travelStyle, lifestyleType, monthlyBudget string,
	groupSize int,
) (models.Recommendation, bool) {
	score := 0
	var reasons []string

	switch travelFrequency {
	case "weekly", "frequent":
		score += 40
		reasons = append(reasons, "frequent flyer")
	case "monthly":
		score += 25
		reasons = append(reasons, "monthly traveler")
	}

	if slices.Contains(preferredServices, SlugFlight) {
		score += 30
		reasons = append(reasons, "preferred service")
	}

	if count := pastServiceCounts[ServiceFlight]; count > 0 {
		score += historyBonus(count)
		reasons = append(reasons, fmt.Sprintf("booked %d times", count))
	}

	if travelStyle == "business" {
		score += 20
		reasons = append(reasons, "business travel")
	}

	budgetOK := true
	if monthlyBudget == "low" {
		if travelStyle == "business" || travelStyle == "luxury" || lifestyleType == "luxury" {
			score -= 40
			budgetOK = false
		}
	} else if monthlyBudget == "medium" && lifestyleType == "luxury" {
		score -= 10
	}

	if !slices.Contains(preferredServices, SlugFlight) || score < scoreThreshold || !budgetOK {
		return models.Recommendation{}, false
	}

	var travelClass string
	var baseMin, baseMax int
	premiumBudget := monthlyBudget == "high" || monthlyBudget == "premium"
	switch {
	case premiumBudget && (travelStyle == "business" || lifestyleType == "luxury"):
		travelClass = "Business Class"
		baseMin, baseMax = 12000, 35000
	case monthlyBudget == "medium" || monthlyBudget == "high" || travelStyle == "comfort":
		travelClass = "Premium Economy"
		baseMin, baseMax = 6000, 12000
	default:
		travelClass = "Economy"
		baseMin, baseMax = 2500, 6000
	}

	priceStr, priceReason := PriceInfo(ServiceFlight, baseMin, baseMax, now)
	reason := "Ideal for " + joinReasons(reasons, 2) + "."
	return models.Recommendation{
		ServiceType: ServiceFlight,
		Title:       ServiceFlight,
		Description: reason,
		Reason:      reason,
		MatchScore:  capScore(score, capFlight),
		Metadata: models.JSONMap{
			"price":        priceStr,
			"price_reason": priceReason,
			"class":        travelClass,
			"routes":       "Domestic & International",
			"passengers":   groupSize,
		},
	}, true
}

func scoreCar(
	preferredServices []string,
	pastServiceCounts map[string]int,
	now time.Time,
	cabType, lifestyleType, monthlyBudget string,
	groupSize int,
) (models.Recommendation, bool) {
	score := 0
	var reasons []string

	if groupSize > 3 {
		score += 25
		reasons = append(reasons, fmt.Sprintf("group of %d", groupSize))
	}

	if cabType == "luxury" || lifestyleType == "luxury" {
		score += 30
		reasons = append(reasons, "luxury preference")
	} else if cabType == "suv" || cabType == "sedan" {
		score += 20
		reasons = append(reasons, cabType+" preference")
	}

	if slices.Contains(preferredServices, SlugCab) {
		score += 25
		reasons = append(reasons, "preferred service")
	}

	if count := pastServiceCounts[ServiceCar]; count > 0 {
		score += historyBonus(count)
		reasons = append(reasons, fmt.Sprintf("booked %d times", count))
	}

	budgetOK := true
	if monthlyBudget == "low" {
		if cabType == "luxury" || lifestyleType == "luxury" {
			score -= 40
			budgetOK = false
		}
	} else if monthlyBudget == "medium" && cabType == "luxury" {
		score -= 10
	}

	if !slices.Contains(preferredServices, SlugCab) || score < scoreThreshold || !budgetOK {
		return models.Recommendation{}, false
	}

	var vehicle string
	var baseMin, baseMax int
	premiumBudget := monthlyBudget == "high" || monthlyBudget == "premium"
	switch {
	case premiumBudget && (cabType == "luxury" || lifestyleType == "luxury"):
		vehicle = "Luxury Cabs (BMW/Merc)"
		baseMin, baseMax = 3000, 7000
	case monthlyBudget != "low" && (cabType == "suv" || groupSize > 3):
		vehicle = "Premium SUV"
		baseMin, baseMax = 1800, 3500
	case monthlyBudget == "low":
		vehicle = "Budget Sedan"
		baseMin, baseMax = 400, 1000
	default:
		vehicle = "Comfort Sedan"
		baseMin, baseMax = 800, 1800
	}

	capacity := groupSize
	if capacity < 4 {
		capacity = 4
	}

	priceStr, priceReason := PriceInfo(ServiceCar, baseMin, baseMax, now)
	reason := "Best for " + joinReasons(reasons, 0) + "."
	return models.Recommendation{
		ServiceType: ServiceCar,
		Title:       ServiceCar,
		Description: reason,
		Reason:      reason,
		MatchScore:  capScore(score, capCar),
		Metadata: models.JSONMap{
			"price":        priceStr,
			"price_reason": priceReason,
			"vehicle":      vehicle,
			"capacity":     fmt.Sprintf("Up to %d passengers", capacity),
		},
	}, true
}

func scoreTechnician(
	profile *models.LifestyleProfile,
	interests, preferredServices []string,
	pastServiceCounts map[string]int,
	now time.Time,
) (models.Recommendation, bool) {
	// Technicians only make sense for home owners; the base score of 60
	// already clears the threshold once that gate passes.
	if !slices.Contains(preferredServices, SlugTechnician) || !profile.HomeOwner {
		return models.Recommendation{}, false
	}

	score := 60
	reasons := []string{"home owner"}

	for _, interest := range []string{"tech", "fitness", "music", "art"} {
		if slices.Contains(interests, interest) {
			score += 15
			reasons = append(reasons, "home maintenance needs")
			break
		}
	}

	score += 20
	reasons = append(reasons, "preferred service")

	if count := pastServiceCounts[ServiceTechnician]; count > 0 {
		score += historyBonus(count)
		reasons = append(reasons, fmt.Sprintf("booked %d times", count))
	}

	priceStr, priceReason := PriceInfo(ServiceTechnician, 500, 2000, now)
	reason := "Essential for " + joinReasons(reasons, 0) + "."
	return models.Recommendation{
		ServiceType: ServiceTechnician,
		Title:       ServiceTechnician,
		Description: reason,
		Reason:      reason,
		MatchScore:  capScore(score, capTechnician),
		Metadata: models.JSONMap{
			"price":        priceStr,
			"price_reason": priceReason,
			"availability": "Same-day & Emergency",
			"services":     "AC, Plumbing, Electrical, Carpentry",
		},
	}, true
}

func scoreCourier(
	profile *models.LifestyleProfile,
	preferredServices []string,
	pastServiceCounts map[string]int,
	now time.Time,
	travelStyle, monthlyBudget string,
) (models.Recommendation, bool) {
	score := 0
	var reasons []string

	if slices.Contains(preferredServices, SlugCourier) {
		score += 40
		reasons = append(reasons, "preferred service")
	}

	profession := strings.ToLower(profile.Profession)
	if travelStyle == "business" || profession == "business" || profession == "working" || profession == "freelancer" {
		score += 25
		reasons = append(reasons, profile.Profession+" needs")
	}

	delivery := "Standard Delivery"
	baseMin, baseMax := 100, 300
	switch monthlyBudget {
	case "high", "premium":
		score += 15
		reasons = append(reasons, "express delivery budget")
		delivery = "Express Delivery"
		baseMin, baseMax = 300, 800
	case "medium":
		delivery = "Standard/Express"
		baseMin, baseMax = 150, 500
	}

	if count := pastServiceCounts[ServiceCourier]; count > 0 {
		score += historyBonus(count)
		reasons = append(reasons, fmt.Sprintf("booked %d times", count))
	}

	if !slices.Contains(preferredServices, SlugCourier) || score < scoreThreshold {
		return models.Recommendation{}, false
	}

	priceStr, priceReason := PriceInfo(ServiceCourier, baseMin, baseMax, now)
	reason := "Useful for " + joinReasons(reasons, 0) + "."
	return models.Recommendation{
		ServiceType: ServiceCourier,
		Title:       ServiceCourier,
		Description: reason,
		Reason:      reason,
		MatchScore:  capScore(score, capCourier),
		Metadata: models.JSONMap{
			"price":        priceStr,
			"price_reason": priceReason,
			"delivery":     delivery,
			"tracking":     "Real-time GPS Tracking",
		},
	}, true
}

// fallbackRecommendations emits one flat-score row per selected service with
// static catalog text. These deliberately skip dynamic pricing.
func fallbackRecommendations(preferredServices []string) []models.Recommendation {
	const fallbackScore = 70
	const fallbackReason = "Based on your service preference"

	var recs []models.Recommendation
	for _, service := range preferredServices {
		switch service {
		case SlugHotel:
			recs = append(recs, models.Recommendation{
				ServiceType: ServiceHotel,
				Title:       ServiceHotel,
				Description: "Great for weekend getaways and business trips",
				Reason:      fallbackReason,
				MatchScore:  fallbackScore,
				Metadata: models.JSONMap{
					"price":     "₹3,000-15,000/night",
					"location":  "Popular Destinations",
					"amenities": "Basic to Premium",
				},
			})
		case SlugFlight:
			recs = append(recs, models.Recommendation{
				ServiceType: ServiceFlight,
				Title:       ServiceFlight,
				Description: "Perfect for domestic and international travel",
				Reason:      fallbackReason,
				MatchScore:  fallbackScore,
				Metadata: models.JSONMap{
					"price":  "₹2,500-12,000/person",
					"class":  "Economy to Business",
					"routes": "All destinations",
				},
			})
		case SlugCab:
			recs = append(recs, models.Recommendation{
				ServiceType: ServiceCar,
				Title:       ServiceCar,
				Description: "Convenient for local travel and airport transfers",
				Reason:      fallbackReason,
				MatchScore:  fallbackScore,
				Metadata: models.JSONMap{
					"price":    "₹800-3,000/trip",
					"vehicle":  "Standard to Luxury",
					"capacity": "Up to 4 passengers",
				},
			})
		case SlugTechnician:
			recs = append(recs, models.Recommendation{
				ServiceType: ServiceTechnician,
				Title:       ServiceTechnician,
				Description: "Home repair and maintenance services",
				Reason:      fallbackReason,
				MatchScore:  fallbackScore,
				Metadata: models.JSONMap{
					"price":        "₹500-2,000/service",
					"availability": "Same-day available",
					"services":     "AC, Plumbing, Electrical",
				},
			})
		case SlugCourier:
			recs = append(recs, models.Recommendation{
				ServiceType: ServiceCourier,
				Title:       ServiceCourier,
				Description: "Fast and reliable package delivery",
				Reason:      fallbackReason,
				MatchScore:  fallbackScore,
				Metadata: models.JSONMap{
					"price":    "₹150-500/package",
					"delivery": "Standard/Express",
					"tracking": "Real-time tracking",
				},
			})
		}
	}
	return recs
}

func defaultStr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

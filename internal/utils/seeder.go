package utils

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"concierge/internal/models"
	"concierge/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultNumUsers = 50

var seedCities = []string{"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Pune", "Kolkata"}
var seedBudgets = []string{"low", "medium", "high", "premium"}
var seedLifestyles = []string{"budget", "comfort", "luxury"}
var seedFrequencies = []string{"rare", "monthly", "weekly", "frequent"}
var seedCabTypes = []string{"sedan", "suv", "luxury"}
var seedProfessions = []string{"working", "business", "freelancer", "student"}

// SeedDemoUsers creates demo users with lifestyle profiles and normalized
// preferences so the recommendation endpoints have data to work with.
func SeedDemoUsers(db *gorm.DB, numUsers int) error {
	if numUsers <= 0 {
		numUsers = DefaultNumUsers
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("DemoPassword123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	prefs := repository.NewPreferenceRepository(db)
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= numUsers; i++ {
		user := models.User{
			Name:     fmt.Sprintf("Demo User %d", i),
			Email:    fmt.Sprintf("demouser%d@example.com", i),
			Password: string(hashed),
			Phone:    fmt.Sprintf("98%08d", r.Intn(100000000)),
		}
		if err := db.Where("email = ?", user.Email).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %d: %w", i, err)
		}

		profile := models.LifestyleProfile{
			UserID:           user.ID,
			AgeGroup:         "young_adult",
			Profession:       seedProfessions[r.Intn(len(seedProfessions))],
			MonthlyBudget:    seedBudgets[r.Intn(len(seedBudgets))],
			LifestyleType:    seedLifestyles[r.Intn(len(seedLifestyles))],
			TravelFrequency:  seedFrequencies[r.Intn(len(seedFrequencies))],
			TravelStyle:      seedLifestyles[r.Intn(len(seedLifestyles))],
			TypicalGroupSize: 1 + r.Intn(5),
			PreferredCabType: seedCabTypes[r.Intn(len(seedCabTypes))],
			DietaryPref:      "none",
			City:             seedCities[r.Intn(len(seedCities))],
			HomeOwner:        r.Intn(2) == 0,
			ProfileUpdatedAt: time.Now(),
		}
		if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile for user %d: %w", user.ID, err)
		}

		interests := pickRandom(r, repository.InterestCatalog, 1+r.Intn(4))
		services := pickRandomServices(r, 1+r.Intn(3))
		if err := prefs.ReplaceInterests(user.ID, interests); err != nil {
			return err
		}
		if err := prefs.ReplacePreferredServices(user.ID, services); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d demo users with profiles and preferences", numUsers)
	return nil
}

func pickRandom(r *rand.Rand, catalog []models.InterestType, n int) []string {
	perm := r.Perm(len(catalog))
	if n > len(catalog) {
		n = len(catalog)
	}
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, catalog[idx].Slug)
	}
	return out
}

func pickRandomServices(r *rand.Rand, n int) []string {
	catalog := repository.ServiceCatalog
	perm := r.Perm(len(catalog))
	if n > len(catalog) {
		n = len(catalog)
	}
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, catalog[idx].Slug)
	}
	return out
}

// CleanupDemoUsers removes seeded demo accounts.
func CleanupDemoUsers(db *gorm.DB) error {
	result := db.Where("email LIKE ?", "demouser%@example.com").Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	log.Printf("Deleted %d demo users", result.RowsAffected)
	return nil
}

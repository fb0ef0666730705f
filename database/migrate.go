package database

import (
	"log"

	"concierge/internal/models"
	"concierge/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MigrateDatabase creates the schema, seeds the preference catalogs and runs
// the one-time backfill of legacy comma-string preferences into the join
// tables. It fails fast: a broken schema is a startup error, not something to
// retry on every request.
func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.LifestyleProfile{},
		&models.InterestType{},
		&models.ServiceType{},
		&models.UserInterest{},
		&models.UserPreferredService{},
		&models.Recommendation{},
		&models.ServiceRequest{},
		&models.Notification{},
		&models.ResetPassword{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	if err := SeedCatalogs(DB); err != nil {
		log.Printf("Error seeding preference catalogs: %v", err)
		return err
	}

	if err := BackfillLegacyPreferences(DB); err != nil {
		log.Printf("Error backfilling legacy preferences: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedCatalogs upserts the fixed interest and service enumerations, updating
// labels in place when they change.
func SeedCatalogs(db *gorm.DB) error {
	for _, interest := range repository.InterestCatalog {
		row := models.InterestType{Slug: interest.Slug, Label: interest.Label, IsActive: true}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"label"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	for _, service := range repository.ServiceCatalog {
		row := models.ServiceType{Slug: service.Slug, Label: service.Label, IsActive: true}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"label"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// BackfillLegacyPreferences migrates comma-joined preference strings from
// lifestyle_profiles into the normalized join tables. Profiles that already
// have join rows are left alone, so the backfill is idempotent and only does
// work the first time it sees a legacy-only profile.
func BackfillLegacyPreferences(db *gorm.DB) error {
	var profiles []models.LifestyleProfile
	if err := db.Where("interests <> '' OR preferred_services <> ''").Find(&profiles).Error; err != nil {
		return err
	}
	if len(profiles) == 0 {
		return nil
	}

	prefs := repository.NewPreferenceRepository(db)
	migrated := 0
	for i := range profiles {
		profile := &profiles[i]

		existingInterests, err := prefs.GetInterestSlugs(profile.UserID)
		if err != nil {
			return err
		}
		existingServices, err := prefs.GetPreferredServiceSlugs(profile.UserID)
		if err != nil {
			return err
		}
		if len(existingInterests) > 0 || len(existingServices) > 0 {
			continue
		}

		if err := prefs.ReplaceInterests(profile.UserID, []string{profile.LegacyInterests}); err != nil {
			return err
		}
		if err := prefs.ReplacePreferredServices(profile.UserID, []string{profile.LegacyPreferredServices}); err != nil {
			return err
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("Backfilled legacy preferences for %d profile(s)", migrated)
	}
	return nil
}

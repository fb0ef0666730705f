package controllers

import (
	"net/http"

	"concierge/internal/cache"
	"concierge/internal/models"
	"concierge/internal/recommend"
	"concierge/internal/repository"

	"github.com/gin-gonic/gin"
)

type LifestyleController struct {
	profileRepo repository.LifestyleProfileRepository
	prefRepo    repository.PreferenceRepository
	redisClient *cache.RedisClient
}

func NewLifestyleController(
	profileRepo repository.LifestyleProfileRepository,
	prefRepo repository.PreferenceRepository,
	redisClient *cache.RedisClient,
) *LifestyleController {
	return &LifestyleController{
		profileRepo: profileRepo,
		prefRepo:    prefRepo,
		redisClient: redisClient,
	}
}

type lifestyleProfileRequest struct {
	AgeGroup          string   `json:"age_group"`
	Profession        string   `json:"profession"`
	MonthlyBudget     string   `json:"monthly_budget" binding:"omitempty,oneof=low medium high premium"`
	LifestyleType     string   `json:"lifestyle_type" binding:"omitempty,oneof=budget comfort luxury"`
	TravelFrequency   string   `json:"travel_frequency" binding:"omitempty,oneof=rare monthly weekly frequent"`
	TravelStyle       string   `json:"travel_style"`
	TypicalGroupSize  int      `json:"typical_group_size"`
	PreferredCabType  string   `json:"preferred_cab_type"`
	DietaryPref       string   `json:"dietary_pref"`
	City              string   `json:"city"`
	Area              string   `json:"area"`
	HomeOwner         bool     `json:"home_owner"`
	Interests         []string `json:"interests"`
	PreferredServices []string `json:"preferred_services"`
}

// GetProfile godoc
// @Summary Get lifestyle profile
// @Description Retrieve the authenticated user's lifestyle profile with preferences
// @Tags lifestyle
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /api/lifestyle-profile [get]
func (lc *LifestyleController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	profile, err := lc.profileRepo.FindByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No lifestyle profile exists for this user",
		})
		return
	}

	interests, _ := lc.prefRepo.GetInterestSlugs(userID.(uint))
	services, _ := lc.prefRepo.GetPreferredServiceSlugs(userID.(uint))

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data": gin.H{
			"profile":            profile,
			"interests":          interests,
			"preferred_services": services,
		},
	})
}

// SaveProfile godoc
// @Summary Create or update lifestyle profile
// @Description Save the lifestyle form, replace normalized preferences and bump the profile timestamp, invalidating cached recommendations
// @Tags lifestyle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body lifestyleProfileRequest true "Lifestyle form data"
// @Success 200 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/lifestyle-profile [put]
func (lc *LifestyleController) SaveProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var req lifestyleProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	groupSize := req.TypicalGroupSize
	if groupSize < 1 {
		groupSize = 1
	}

	profile := models.LifestyleProfile{
		UserID:           userID.(uint),
		AgeGroup:         req.AgeGroup,
		Profession:       req.Profession,
		MonthlyBudget:    req.MonthlyBudget,
		LifestyleType:    req.LifestyleType,
		TravelFrequency:  req.TravelFrequency,
		TravelStyle:      req.TravelStyle,
		TypicalGroupSize: groupSize,
		PreferredCabType: req.PreferredCabType,
		DietaryPref:      req.DietaryPref,
		City:             req.City,
		Area:             req.Area,
		HomeOwner:        req.HomeOwner,
	}

	if err := lc.profileRepo.Save(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	if err := lc.prefRepo.ReplaceInterests(userID.(uint), req.Interests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save interests",
			"error":   err.Error(),
		})
		return
	}
	if err := lc.prefRepo.ReplacePreferredServices(userID.(uint), req.PreferredServices); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save preferred services",
			"error":   err.Error(),
		})
		return
	}

	// Drop the hot cache; the DB cache invalidates itself via the bumped
	// profile timestamp.
	if lc.redisClient != nil {
		_ = lc.redisClient.InvalidateRecommendations(userID.(uint), recommend.DefaultAlgorithmVersion)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data":    profile,
	})
}

// DeleteProfile godoc
// @Summary Delete lifestyle profile
// @Description Remove the authenticated user's lifestyle profile
// @Tags lifestyle
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/lifestyle-profile [delete]
func (lc *LifestyleController) DeleteProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	if err := lc.profileRepo.DeleteByUserID(userID.(uint)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete profile",
			"error":   err.Error(),
		})
		return
	}

	if lc.redisClient != nil {
		_ = lc.redisClient.InvalidateRecommendations(userID.(uint), recommend.DefaultAlgorithmVersion)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile deleted successfully",
	})
}

// GetCatalogs godoc
// @Summary List preference catalogs
// @Description Fixed interest and service enumerations for the lifestyle form
// @Tags lifestyle
// @Produce json
// @Success 200 {object} map[string]interface{} "Catalogs retrieved successfully"
// @Router /api/lifestyle-catalogs [get]
func (lc *LifestyleController) GetCatalogs(c *gin.Context) {
	interests, err := lc.prefRepo.ListInterestTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load catalogs",
			"error":   err.Error(),
		})
		return
	}
	services, err := lc.prefRepo.ListServiceTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load catalogs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Catalogs retrieved successfully",
		"data": gin.H{
			"interests": interests,
			"services":  services,
		},
	})
}

package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"concierge/internal/cache"
	"concierge/internal/recommend"

	"github.com/gin-gonic/gin"
)

const recommendationCacheTTL = 10 * time.Minute

type RecommendationController struct {
	service     *recommend.Service
	redisClient *cache.RedisClient
	dismisser   Dismisser
}

// Dismisser is the slice of the recommendation repository this controller
// needs beyond the recompute service.
type Dismisser interface {
	Dismiss(userID, recommendationID uint) error
}

func NewRecommendationController(service *recommend.Service, redisClient *cache.RedisClient, dismisser Dismisser) *RecommendationController {
	return &RecommendationController{
		service:     service,
		redisClient: redisClient,
		dismisser:   dismisser,
	}
}

type recommendationResponse struct {
	Success bool `json:"success"`
	recommend.Result
}

// GetRecommendations godoc
// @Summary Get lifestyle recommendations
// @Description Return the user's recommendations, serving the cached set while it is fresh against the profile timestamp
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Recommendations"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to compute recommendations"
// @Router /api/lifestyle-recommendations [get]
func (rc *RecommendationController) GetRecommendations(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	if rc.redisClient != nil {
		var cached recommendationResponse
		hit, err := rc.redisClient.GetRecommendationResult(userID.(uint), recommend.DefaultAlgorithmVersion, &cached)
		if err != nil {
			log.Printf("redis recommendation cache read failed for user %d: %v", userID.(uint), err)
		} else if hit {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	result, err := rc.service.Recompute(userID.(uint), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute recommendations",
			"error":   err.Error(),
		})
		return
	}

	response := recommendationResponse{Success: true, Result: *result}
	if rc.redisClient != nil && result.HasProfile {
		if err := rc.redisClient.StoreRecommendationResult(userID.(uint), recommend.DefaultAlgorithmVersion, response, recommendationCacheTTL); err != nil {
			log.Printf("redis recommendation cache write failed for user %d: %v", userID.(uint), err)
		}
	}

	c.JSON(http.StatusOK, response)
}

// RefreshRecommendations godoc
// @Summary Force recommendation recompute
// @Description Regenerate recommendations ignoring both cache layers
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Recommendations regenerated"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to compute recommendations"
// @Router /api/lifestyle-recommendations/refresh [post]
func (rc *RecommendationController) RefreshRecommendations(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	if rc.redisClient != nil {
		_ = rc.redisClient.InvalidateRecommendations(userID.(uint), recommend.DefaultAlgorithmVersion)
	}

	result, err := rc.service.Recompute(userID.(uint), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute recommendations",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, recommendationResponse{Success: true, Result: *result})
}

// DismissRecommendation godoc
// @Summary Dismiss a recommendation
// @Description Hide a recommendation row from future cached reads
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recommendation ID"
// @Success 200 {object} map[string]interface{} "Recommendation dismissed"
// @Failure 400 {object} map[string]interface{} "Invalid recommendation ID"
// @Failure 404 {object} map[string]interface{} "Recommendation not found"
// @Router /api/recommendations/{id}/dismiss [post]
func (rc *RecommendationController) DismissRecommendation(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recommendation ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := rc.dismisser.Dismiss(userID.(uint), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recommendation not found",
			"error":   err.Error(),
		})
		return
	}

	if rc.redisClient != nil {
		_ = rc.redisClient.InvalidateRecommendations(userID.(uint), recommend.DefaultAlgorithmVersion)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recommendation dismissed",
	})
}

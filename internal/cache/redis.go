package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func recommendationKey(userID uint, algorithmVersion string) string {
	return fmt.Sprintf("recommendations:%s:%d", algorithmVersion, userID)
}

// StoreRecommendationResult caches the serialized recommendation response so
// repeat reads skip Postgres entirely.
func (r *RedisClient) StoreRecommendationResult(userID uint, algorithmVersion string, result interface{}, duration time.Duration) error {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	err = r.client.Set(r.ctx, recommendationKey(userID, algorithmVersion), jsonData, duration).Err()
	if err != nil {
		return fmt.Errorf("failed to store result in Redis: %w", err)
	}

	return nil
}

// GetRecommendationResult fetches a cached response into dest. The second
// return value reports a hit; a miss is not an error.
func (r *RedisClient) GetRecommendationResult(userID uint, algorithmVersion string, dest interface{}) (bool, error) {
	data, err := r.client.Get(r.ctx, recommendationKey(userID, algorithmVersion)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get result from Redis: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return true, nil
}

// InvalidateRecommendations drops the cached response after a profile save or
// forced refresh.
func (r *RedisClient) InvalidateRecommendations(userID uint, algorithmVersion string) error {
	return r.client.Del(r.ctx, recommendationKey(userID, algorithmVersion)).Err()
}

func unreadCountKey(userID uint) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}

func (r *RedisClient) StoreUnreadCount(userID uint, count int64, duration time.Duration) error {
	return r.client.Set(r.ctx, unreadCountKey(userID), count, duration).Err()
}

func (r *RedisClient) GetUnreadCount(userID uint) (int64, bool, error) {
	count, err := r.client.Get(r.ctx, unreadCountKey(userID)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get unread count from Redis: %w", err)
	}
	return count, true, nil
}

func (r *RedisClient) InvalidateUnreadCount(userID uint) error {
	return r.client.Del(r.ctx, unreadCountKey(userID)).Err()
}

// GetStatus reports connection pool health for the debug endpoint.
func (r *RedisClient) GetStatus() (map[string]interface{}, error) {
	info, err := r.client.Info(r.ctx).Result()
	if err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
		"redis_info":   info,
	}, nil
}

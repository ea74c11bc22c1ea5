package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chestAnalyzer/domain"

	"github.com/redis/go-redis/v9"
)

const analysisKeyPrefix = "chest:analysis:"

// AnalysisCache stores completed user analyses, keyed by user id.
type AnalysisCache struct {
	client *redis.Client
}

func NewAnalysisCache(client *redis.Client) *AnalysisCache {
	return &AnalysisCache{client: client}
}

// Get retrieves a cached analysis; a nil result with nil error means no
// entry exists.
func (r *AnalysisCache) Get(ctx context.Context, userID string) (*domain.UserAnalysis, error) {
	val, err := r.client.Get(ctx, analysisKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis from Redis: %w", err)
	}

	var result domain.UserAnalysis
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached analysis: %w", err)
	}
	return &result, nil
}

func (r *AnalysisCache) Store(ctx context.Context, result domain.UserAnalysis, ttl time.Duration) error {
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	if err := r.client.Set(ctx, analysisKeyPrefix+result.UserID, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store analysis in Redis: %w", err)
	}
	return nil
}

func (r *AnalysisCache) Clear(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, analysisKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to delete analysis from Redis: %w", err)
	}
	return nil
}

func (r *AnalysisCache) ClearAll(ctx context.Context) error {
	return deleteByPattern(ctx, r.client, analysisKeyPrefix+"*")
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kotaicode/gpx-analyzer/internal/domain"
	"github.com/kotaicode/gpx-analyzer/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// surfaceWaysKey строит ключ кеша для bbox. Координаты квантуются до
// 4 знаков (~11 метров), чтобы близкие запросы попадали в один ключ.
func surfaceWaysKey(bbox domain.BoundingBox) string {
	return fmt.Sprintf("surfaceways:%.4f:%.4f:%.4f:%.4f",
		bbox.MinLat, bbox.MinLon, bbox.MaxLat, bbox.MaxLon)
}

// GetSurfaceWays получает закешированный ответ геоданных для bbox
func (r *cacheRepository) GetSurfaceWays(ctx context.Context, bbox domain.BoundingBox) ([]domain.TaggedWay, error) {
	data, err := r.Get(ctx, surfaceWaysKey(bbox))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var ways []domain.TaggedWay
	if err := json.Unmarshal(data, &ways); err != nil {
		r.logger.Error("Failed to unmarshal surface ways from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal surface ways: %w", err)
	}

	return ways, nil
}

// SetSurfaceWays сохраняет ответ геоданных для bbox
func (r *cacheRepository) SetSurfaceWays(ctx context.Context, bbox domain.BoundingBox, ways []domain.TaggedWay, ttl time.Duration) error {
	data, err := json.Marshal(ways)
	if err != nil {
		r.logger.Error("Failed to marshal surface ways", zap.Error(err))
		return fmt.Errorf("marshal surface ways: %w", err)
	}

	return r.Set(ctx, surfaceWaysKey(bbox), data, ttl)
}

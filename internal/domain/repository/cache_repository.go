package repository

import (
	"context"
	"time"

	"github.com/kotaicode/gpx-analyzer/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetSurfaceWays получает закешированный ответ геоданных для bbox.
	// nil без ошибки означает cache miss.
	GetSurfaceWays(ctx context.Context, bbox domain.BoundingBox) ([]domain.TaggedWay, error)

	// SetSurfaceWays сохраняет ответ геоданных для bbox
	SetSurfaceWays(ctx context.Context, bbox domain.BoundingBox, ways []domain.TaggedWay, ttl time.Duration) error
}

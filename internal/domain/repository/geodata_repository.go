package repository

import (
	"context"

	"github.com/kotaicode/gpx-analyzer/internal/domain"
)

// GeodataRepository определяет методы для получения геометрий дорог
// с тегом покрытия из внешнего источника геоданных.
type GeodataRepository interface {
	// GetSurfaceWays возвращает все way с тегом surface внутри bbox.
	// Пустой результат - валидный ответ (регион без размеченных дорог).
	GetSurfaceWays(ctx context.Context, bbox domain.BoundingBox) ([]domain.TaggedWay, error)
}

package usecase

import (
	"math"

	"github.com/kotaicode/gpx-analyzer/internal/domain"
)

// ComputeElevation вычисляет суммарный набор и потерю высоты трека.
// Точки без высоты пропускаются: следующая валидная точка сравнивается
// с последней использованной, а не с соседней по индексу. Перепады
// меньше noiseMeters считаются GPS-шумом и отбрасываются, при этом
// опорная высота продвигается, чтобы медленный дрейф сенсора не
// накапливался в набор.
func ComputeElevation(points []domain.Trackpoint, noiseMeters float64) domain.ElevationResult {
	var up, down float64

	var last float64
	seen := false
	for _, p := range points {
		if p.Elevation == nil {
			continue
		}
		elevation := *p.Elevation

		if !seen {
			last = elevation
			seen = true
			continue
		}

		delta := elevation - last
		last = elevation

		if math.Abs(delta) < noiseMeters {
			continue
		}
		if delta > 0 {
			up += delta
		} else {
			down += -delta
		}
	}

	return domain.ElevationResult{
		Up:   round2(up),
		Down: round2(down),
	}
}

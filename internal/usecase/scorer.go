package usecase

import (
	"math"

	"github.com/kotaicode/gpx-analyzer/internal/domain"
)

// ComputeSuitability вычисляет оценки пригодности маршрута как
// взвешенное по длине среднее весов покрытий из
// domain.SuitabilityWeights. Покрытия без веса (включая unknown)
// дают нулевой вклад. Для трека нулевой длины обе оценки равны нулю.
func ComputeSuitability(lengths domain.SurfaceLengthMap) domain.SuitabilityScores {
	total := lengths.TotalLength()
	if total == 0 {
		return domain.SuitabilityScores{}
	}

	var roadbike, gravelbike float64
	for surface, length := range lengths {
		weight := domain.SuitabilityWeights[surface]
		roadbike += (length / total) * weight.Roadbike
		gravelbike += (length / total) * weight.Gravelbike
	}

	return domain.SuitabilityScores{
		Roadbike:   round2(roadbike),
		Gravelbike: round2(gravelbike),
	}
}

// round2 округляет до двух знаков - формат значений внешнего API
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

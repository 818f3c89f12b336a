package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kotaicode/gpx-analyzer/internal/domain"
	"github.com/kotaicode/gpx-analyzer/internal/usecase"
)

func TestComputeSuitability(t *testing.T) {
	t.Run("empty map yields zero scores", func(t *testing.T) {
		scores := usecase.ComputeSuitability(domain.SurfaceLengthMap{})
		assert.Equal(t, domain.SuitabilityScores{}, scores)
	})

	t.Run("pure asphalt is ideal for both", func(t *testing.T) {
		scores := usecase.ComputeSuitability(domain.SurfaceLengthMap{
			domain.SurfaceAsphalt: 1000,
		})
		assert.Equal(t, 1.0, scores.Roadbike)
		assert.Equal(t, 1.0, scores.Gravelbike)
	})

	t.Run("unknown contributes nothing", func(t *testing.T) {
		scores := usecase.ComputeSuitability(domain.SurfaceLengthMap{
			domain.SurfaceUnknown: 1000,
		})
		assert.Equal(t, 0.0, scores.Roadbike)
		assert.Equal(t, 0.0, scores.Gravelbike)
	})

	t.Run("length-weighted mix", func(t *testing.T) {
		scores := usecase.ComputeSuitability(domain.SurfaceLengthMap{
			domain.SurfaceAsphalt: 500,
			domain.SurfaceGravel:  500,
		})
		assert.Equal(t, 0.5, scores.Roadbike)
		assert.Equal(t, 1.0, scores.Gravelbike)
	})

	t.Run("unknown dilutes the score", func(t *testing.T) {
		scores := usecase.ComputeSuitability(domain.SurfaceLengthMap{
			domain.SurfaceAsphalt: 750,
			domain.SurfaceUnknown: 250,
		})
		assert.Equal(t, 0.75, scores.Roadbike)
		assert.Equal(t, 0.75, scores.Gravelbike)
	})

	t.Run("scores are rounded to two decimals", func(t *testing.T) {
		scores := usecase.ComputeSuitability(domain.SurfaceLengthMap{
			domain.SurfaceAsphalt: 1,
			domain.SurfaceGravel:  2,
		})
		assert.Equal(t, 0.33, scores.Roadbike)
		assert.Equal(t, 1.0, scores.Gravelbike)
	})
}

func TestSuitabilityWeights(t *testing.T) {
	// Таблица весов - единственный носитель доменной оценки,
	// проверяем опорные значения независимо от скорера
	assert.Equal(t, domain.SuitabilityWeight{Roadbike: 1.0, Gravelbike: 1.0},
		domain.SuitabilityWeights[domain.SurfaceAsphalt])
	assert.Equal(t, domain.SuitabilityWeight{Roadbike: 0.0, Gravelbike: 1.0},
		domain.SuitabilityWeights[domain.SurfaceGravel])
	assert.Equal(t, domain.SuitabilityWeight{Roadbike: 0.4, Gravelbike: 1.0},
		domain.SuitabilityWeights[domain.SurfaceCompacted])

	// unknown намеренно отсутствует в таблице - нулевой вклад
	_, ok := domain.SuitabilityWeights[domain.SurfaceUnknown]
	assert.False(t, ok)

	for surface, weight := range domain.SuitabilityWeights {
		assert.GreaterOrEqual(t, weight.Roadbike, 0.0, surface)
		assert.LessOrEqual(t, weight.Roadbike, 1.0, surface)
		assert.GreaterOrEqual(t, weight.Gravelbike, 0.0, surface)
		assert.LessOrEqual(t, weight.Gravelbike, 1.0, surface)
	}
}

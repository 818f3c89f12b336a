package usecase_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotaicode/gpx-analyzer/internal/domain"
	"github.com/kotaicode/gpx-analyzer/internal/usecase"
)

func equatorTrack() []domain.Trackpoint {
	return []domain.Trackpoint{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.001},
		{Lat: 0, Lon: 0.002},
	}
}

func TestMatchSegments(t *testing.T) {
	tolerance := 50.0

	t.Run("classifies segments by the covering way", func(t *testing.T) {
		index := usecase.NewSurfaceIndex([]domain.TaggedWay{
			{
				Geometry:   []domain.Point{{Lat: 0, Lon: -0.0005}, {Lat: 0, Lon: 0.0025}},
				RawSurface: "asphalt",
			},
		}, tolerance)

		segments := domain.Segments(equatorTrack())
		classes := usecase.MatchSegments(index, segments, tolerance, 1)

		require.Len(t, classes, 2)
		for _, class := range classes {
			assert.Equal(t, domain.SurfaceAsphalt, class.Surface)
			assert.InDelta(t, 111.2, class.LengthM, 0.5)
		}
	})

	t.Run("no way in range yields unknown", func(t *testing.T) {
		index := usecase.NewSurfaceIndex(nil, tolerance)

		classes := usecase.MatchSegments(index, domain.Segments(equatorTrack()), tolerance, 1)

		require.Len(t, classes, 2)
		for _, class := range classes {
			assert.Equal(t, domain.SurfaceUnknown, class.Surface)
		}
	})

	t.Run("unrecognized raw tag falls back to unknown", func(t *testing.T) {
		index := usecase.NewSurfaceIndex([]domain.TaggedWay{
			{
				Geometry:   []domain.Point{{Lat: 0, Lon: -0.0005}, {Lat: 0, Lon: 0.0025}},
				RawSurface: "chocolate",
			},
		}, tolerance)

		classes := usecase.MatchSegments(index, domain.Segments(equatorTrack()), tolerance, 1)

		require.Len(t, classes, 2)
		assert.Equal(t, domain.SurfaceUnknown, classes[0].Surface)
	})

	t.Run("fewer than two points yields no segments", func(t *testing.T) {
		index := usecase.NewSurfaceIndex(nil, tolerance)

		classes := usecase.MatchSegments(index, domain.Segments([]domain.Trackpoint{{Lat: 0, Lon: 0}}), tolerance, 1)
		assert.Empty(t, classes)

		classes = usecase.MatchSegments(index, domain.Segments(nil), tolerance, 1)
		assert.Empty(t, classes)
	})

	t.Run("parallel matching equals serial matching", func(t *testing.T) {
		// Длинный трек вдоль экватора поверх асфальтового way
		var points []domain.Trackpoint
		for i := 0; i <= 500; i++ {
			points = append(points, domain.Trackpoint{Lat: 0, Lon: float64(i) * 0.0001})
		}
		index := usecase.NewSurfaceIndex([]domain.TaggedWay{
			{
				Geometry:   []domain.Point{{Lat: 0, Lon: -0.001}, {Lat: 0, Lon: 0.051}},
				RawSurface: "asphalt",
			},
		}, tolerance)

		segments := domain.Segments(points)
		serial := usecase.MatchSegments(index, segments, tolerance, 1)
		parallel := usecase.MatchSegments(index, segments, tolerance, 8)

		assert.Equal(t, serial, parallel)
	})
}

func TestAggregateLengths(t *testing.T) {
	t.Run("sums lengths per surface", func(t *testing.T) {
		classes := []usecase.SegmentClass{
			{LengthM: 100, Surface: domain.SurfaceAsphalt},
			{LengthM: 50, Surface: domain.SurfaceGravel},
			{LengthM: 25, Surface: domain.SurfaceAsphalt},
			{LengthM: 10, Surface: domain.SurfaceUnknown},
		}

		lengths := usecase.AggregateLengths(classes)

		assert.Equal(t, domain.SurfaceLengthMap{
			domain.SurfaceAsphalt: 125,
			domain.SurfaceGravel:  50,
			domain.SurfaceUnknown: 10,
		}, lengths)
	})

	t.Run("is order independent", func(t *testing.T) {
		classes := []usecase.SegmentClass{
			{LengthM: 100, Surface: domain.SurfaceAsphalt},
			{LengthM: 50, Surface: domain.SurfaceGravel},
			{LengthM: 25, Surface: domain.SurfaceAsphalt},
			{LengthM: 75, Surface: domain.SurfaceDirt},
		}

		expected := usecase.AggregateLengths(classes)

		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 20; i++ {
			shuffled := make([]usecase.SegmentClass, len(classes))
			copy(shuffled, classes)
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			assert.Equal(t, expected, usecase.AggregateLengths(shuffled))
		}
	})

	t.Run("sum of values equals total track length", func(t *testing.T) {
		index := usecase.NewSurfaceIndex([]domain.TaggedWay{
			{
				Geometry:   []domain.Point{{Lat: 0, Lon: -0.0005}, {Lat: 0, Lon: 0.0011}},
				RawSurface: "asphalt",
			},
		}, 50)

		segments := domain.Segments(equatorTrack())
		classes := usecase.MatchSegments(index, segments, 50, 1)
		lengths := usecase.AggregateLengths(classes)

		var trackLength float64
		for _, class := range classes {
			trackLength += class.LengthM
		}

		assert.InEpsilon(t, trackLength, lengths.TotalLength(), 1e-3)
		assert.InDelta(t, 222.4, lengths.TotalLength(), 1.0)
	})
}

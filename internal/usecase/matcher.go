package usecase

import (
	"sync"

	"github.com/kotaicode/gpx-analyzer/internal/domain"
	"github.com/kotaicode/gpx-analyzer/internal/pkg/utils"
)

// SegmentClass - классификация одного сегмента трека: его длина и
// назначенное покрытие
type SegmentClass struct {
	LengthM float64
	Surface domain.Surface
}

// MatchSegments классифицирует каждый сегмент трека по ближайшему way
// из индекса. Результат сохраняет порядок сегментов. Сегменты независимы,
// поэтому классификация распределяется по workers горутинам; индекс после
// построения только читается.
func MatchSegments(index *SurfaceIndex, segments []domain.TrackSegment, toleranceMeters float64, workers int) []SegmentClass {
	if len(segments) == 0 {
		return nil
	}

	classes := make([]SegmentClass, len(segments))

	if workers < 2 || len(segments) < workers {
		for i, segment := range segments {
			classes[i] = classifySegment(index, segment, toleranceMeters)
		}
		return classes
	}

	var wg sync.WaitGroup
	chunk := (len(segments) + workers - 1) / workers
	for start := 0; start < len(segments); start += chunk {
		end := start + chunk
		if end > len(segments) {
			end = len(segments)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				classes[i] = classifySegment(index, segments[i], toleranceMeters)
			}
		}(start, end)
	}
	wg.Wait()

	return classes
}

func classifySegment(index *SurfaceIndex, segment domain.TrackSegment, toleranceMeters float64) SegmentClass {
	length := utils.HaversineDistance(
		segment.Start.Lat, segment.Start.Lon,
		segment.End.Lat, segment.End.Lon,
	)

	surface := domain.SurfaceUnknown
	if way, ok := index.NearestWay(segment.Midpoint(), toleranceMeters); ok {
		surface = way.Surface()
	}

	return SegmentClass{LengthM: length, Surface: surface}
}

// AggregateLengths сворачивает классификацию сегментов в карту длин по
// покрытиям. Редукция коммутативна: порядок сегментов на результат не
// влияет.
func AggregateLengths(classes []SegmentClass) domain.SurfaceLengthMap {
	lengths := make(domain.SurfaceLengthMap)
	for _, class := range classes {
		lengths[class.Surface] += class.LengthM
	}
	return lengths
}

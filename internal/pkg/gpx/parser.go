package gpx

import (
	"fmt"
	"io"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/kotaicode/gpx-analyzer/internal/domain"
)

// ParseTrackpoints читает GPX-контейнер и возвращает упорядоченную
// последовательность точек трека. Точки всех треков и сегментов файла
// склеиваются в порядке следования в контейнере.
func ParseTrackpoints(r io.Reader) ([]domain.Trackpoint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read gpx data: %w", err)
	}

	parsed, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gpx: %w", err)
	}

	var points []domain.Trackpoint
	for _, track := range parsed.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				tp := domain.Trackpoint{
					Lat: p.Latitude,
					Lon: p.Longitude,
				}
				if p.Elevation.NotNull() {
					elevation := p.Elevation.Value()
					tp.Elevation = &elevation
				}
				points = append(points, tp)
			}
		}
	}

	return points, nil
}

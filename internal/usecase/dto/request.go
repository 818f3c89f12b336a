package dto

import "github.com/kotaicode/gpx-analyzer/internal/domain"

// TrackpointDTO - точка трека во входном JSON
type TrackpointDTO struct {
	Lat       float64  `json:"lat" validate:"min=-90,max=90"`
	Lon       float64  `json:"lon" validate:"min=-180,max=180"`
	Elevation *float64 `json:"elevation,omitempty"`
}

// AnalyzePointsRequest - запрос анализа по уже распарсенным точкам трека
type AnalyzePointsRequest struct {
	Points []TrackpointDTO `json:"points" validate:"required,min=1,dive"`
}

// ToDomain конвертирует запрос в доменные точки трека
func (r *AnalyzePointsRequest) ToDomain() []domain.Trackpoint {
	points := make([]domain.Trackpoint, 0, len(r.Points))
	for _, p := range r.Points {
		points = append(points, domain.Trackpoint{
			Lat:       p.Lat,
			Lon:       p.Lon,
			Elevation: p.Elevation,
		})
	}
	return points
}

package dto

import "github.com/kotaicode/gpx-analyzer/internal/domain"

// AnalyzeResponse - результат анализа в формате внешнего API.
// Имена полей и единицы зафиксированы существующими потребителями.
type AnalyzeResponse struct {
	SurfaceLengthsKm  map[string]float64   `json:"surface_lengths_km"`
	SuitabilityScores SuitabilityScoresDTO `json:"suitability_scores"`
	Elevation         ElevationDTO         `json:"elevation"`
}

type SuitabilityScoresDTO struct {
	Roadbike   float64 `json:"roadbike"`
	Gravelbike float64 `json:"gravelbike"`
}

type ElevationDTO struct {
	ElevationUp   float64 `json:"elevation_up"`
	ElevationDown float64 `json:"elevation_down"`
}

// FromAnalysisResult конвертирует доменный результат в ответ API
func FromAnalysisResult(result *domain.AnalysisResult) AnalyzeResponse {
	lengths := make(map[string]float64, len(result.SurfaceLengthsKm))
	for surface, km := range result.SurfaceLengthsKm {
		lengths[string(surface)] = km
	}

	return AnalyzeResponse{
		SurfaceLengthsKm: lengths,
		SuitabilityScores: SuitabilityScoresDTO{
			Roadbike:   result.Suitability.Roadbike,
			Gravelbike: result.Suitability.Gravelbike,
		},
		Elevation: ElevationDTO{
			ElevationUp:   result.Elevation.Up,
			ElevationDown: result.Elevation.Down,
		},
	}
}

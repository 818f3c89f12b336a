package domain

// ElevationResult - суммарный набор и потеря высоты в метрах.
// Оба значения неотрицательны.
type ElevationResult struct {
	Up   float64 `json:"elevation_up"`
	Down float64 `json:"elevation_down"`
}

// SuitabilityScores - оценки пригодности маршрута для шоссейного и
// гравийного велосипеда, 0.0 - 1.0.
type SuitabilityScores struct {
	Roadbike   float64 `json:"roadbike"`
	Gravelbike float64 `json:"gravelbike"`
}

// AnalysisResult - итог одного анализа трека. Имена полей и единицы
// измерения зафиксированы внешними потребителями API.
type AnalysisResult struct {
	SurfaceLengthsKm map[Surface]float64 `json:"surface_lengths_km"`
	Suitability      SuitabilityScores   `json:"suitability_scores"`
	Elevation        ElevationResult     `json:"elevation"`
}

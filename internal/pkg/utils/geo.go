package utils

import "math"

const (
	earthRadiusM = 6371000.0

	// metersPerDegree - длина одного градуса широты в метрах
	metersPerDegree = 111320.0
)

// HaversineDistance вычисляет расстояние между двумя точками в метрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// PointToSegmentDistance вычисляет кратчайшее расстояние в метрах от точки
// (lat, lon) до отрезка (lat1, lon1)-(lat2, lon2). Отрезок проецируется в
// локальную плоскость вокруг точки; на дистанциях веломаршрута (десятки
// метров допуска) погрешность проекции пренебрежима.
func PointToSegmentDistance(lat, lon, lat1, lon1, lat2, lon2 float64) float64 {
	cosLat := math.Cos(lat * math.Pi / 180.0)

	x1 := (lon1 - lon) * cosLat * metersPerDegree
	y1 := (lat1 - lat) * metersPerDegree
	x2 := (lon2 - lon) * cosLat * metersPerDegree
	y2 := (lat2 - lat) * metersPerDegree

	dx := x2 - x1
	dy := y2 - y1

	segLenSq := dx*dx + dy*dy
	if segLenSq == 0 {
		// Вырожденный отрезок - расстояние до его начала
		return math.Hypot(x1, y1)
	}

	// Проекция начала координат (самой точки) на отрезок
	t := -(x1*dx + y1*dy) / segLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return math.Hypot(x1+t*dx, y1+t*dy)
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

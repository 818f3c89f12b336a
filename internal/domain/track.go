package domain

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Trackpoint - одна записанная позиция маршрута. Elevation может
// отсутствовать (устройства без барометра/без данных высоты).
type Trackpoint struct {
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
	Elevation *float64 `json:"elevation,omitempty"`
}

// TrackSegment - пара последовательных точек трека. Не хранится,
// вычисляется на лету при классификации.
type TrackSegment struct {
	Start Trackpoint
	End   Trackpoint
}

// Midpoint возвращает середину сегмента. Для сегментов длиной в
// десятки метров арифметическое среднее координат достаточно точно.
func (s TrackSegment) Midpoint() Point {
	return Point{
		Lat: (s.Start.Lat + s.End.Lat) / 2,
		Lon: (s.Start.Lon + s.End.Lon) / 2,
	}
}

// Segments строит последовательность сегментов трека.
// Трек из менее чем двух точек дает пустую последовательность.
func Segments(points []Trackpoint) []TrackSegment {
	if len(points) < 2 {
		return nil
	}
	segments := make([]TrackSegment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		segments = append(segments, TrackSegment{Start: points[i-1], End: points[i]})
	}
	return segments
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// TrackBoundingBox вычисляет минимальный прямоугольник, покрывающий
// все точки трека. Для пустого трека возвращает ok=false.
func TrackBoundingBox(points []Trackpoint) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	bbox := BoundingBox{
		MinLat: points[0].Lat,
		MinLon: points[0].Lon,
		MaxLat: points[0].Lat,
		MaxLon: points[0].Lon,
	}
	for _, p := range points[1:] {
		if p.Lat < bbox.MinLat {
			bbox.MinLat = p.Lat
		}
		if p.Lat > bbox.MaxLat {
			bbox.MaxLat = p.Lat
		}
		if p.Lon < bbox.MinLon {
			bbox.MinLon = p.Lon
		}
		if p.Lon > bbox.MaxLon {
			bbox.MaxLon = p.Lon
		}
	}
	return bbox, true
}

// Pad расширяет bbox на заданное количество градусов с каждой стороны,
// чтобы захватить дороги рядом с краем трека.
func (b BoundingBox) Pad(deg float64) BoundingBox {
	return BoundingBox{
		MinLat: b.MinLat - deg,
		MinLon: b.MinLon - deg,
		MaxLat: b.MaxLat + deg,
		MaxLon: b.MaxLon + deg,
	}
}

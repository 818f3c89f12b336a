package usecase

import (
	"math"
	"sort"

	"github.com/kotaicode/gpx-analyzer/internal/domain"
	"github.com/kotaicode/gpx-analyzer/internal/pkg/utils"
)

const (
	// metersPerDegreeLat - длина одного градуса широты в метрах
	metersPerDegreeLat = 111320.0

	// distanceTieEpsilonM - допуск при сравнении расстояний до way.
	// Равноудаленные way разрешаются в пользу меньшего индекса загрузки.
	distanceTieEpsilonM = 1e-6
)

type cellKey struct {
	x, y int
}

// SurfaceIndex - пространственный индекс way-геометрий одного анализа.
// Строится один раз, после построения только читается, поэтому безопасен
// для конкурентных запросов без блокировок. Сетка с ячейкой размером с
// допуск совпадения: кандидаты в радиусе r лежат в пределах
// ceil(r/cellSizeM) ячеек от ячейки точки.
type SurfaceIndex struct {
	ways        []domain.TaggedWay
	cells       map[cellKey][]int
	cellSizeM   float64
	cellSizeLat float64
	cellSizeLon float64
}

// NewSurfaceIndex строит индекс по списку way. Порядок ways фиксирует
// порядок загрузки и используется для детерминированного tie-break.
// toleranceMeters задает размер ячейки; ячейка не меньше метра, чтобы
// нулевой допуск не вырождал сетку.
func NewSurfaceIndex(ways []domain.TaggedWay, toleranceMeters float64) *SurfaceIndex {
	cellSizeM := toleranceMeters
	if cellSizeM < 1 {
		cellSizeM = 1
	}
	cellSizeLat := cellSizeM / metersPerDegreeLat

	// Масштаб долготы по опорной широте региона; у полюсов ограничиваем,
	// чтобы размер ячейки оставался конечным
	cosLat := 1.0
	if len(ways) > 0 && len(ways[0].Geometry) > 0 {
		cosLat = math.Cos(ways[0].Geometry[0].Lat * math.Pi / 180.0)
		if cosLat < 0.01 {
			cosLat = 0.01
		}
	}

	idx := &SurfaceIndex{
		ways:        ways,
		cells:       make(map[cellKey][]int),
		cellSizeM:   cellSizeM,
		cellSizeLat: cellSizeLat,
		cellSizeLon: cellSizeLat / cosLat,
	}

	for wayIdx, way := range ways {
		idx.insert(wayIdx, way)
	}

	return idx
}

// insert добавляет way во все ячейки, которые пересекает bbox каждого
// его сегмента
func (idx *SurfaceIndex) insert(wayIdx int, way domain.TaggedWay) {
	geometry := way.Geometry
	if len(geometry) == 1 {
		key := idx.cell(geometry[0])
		idx.addToCell(key, wayIdx)
		return
	}

	for i := 1; i < len(geometry); i++ {
		a, b := geometry[i-1], geometry[i]

		minX := int(math.Floor(math.Min(a.Lon, b.Lon) / idx.cellSizeLon))
		maxX := int(math.Floor(math.Max(a.Lon, b.Lon) / idx.cellSizeLon))
		minY := int(math.Floor(math.Min(a.Lat, b.Lat) / idx.cellSizeLat))
		maxY := int(math.Floor(math.Max(a.Lat, b.Lat) / idx.cellSizeLat))

		for x := minX; x <= maxX; x++ {
			for y := minY; y <= maxY; y++ {
				idx.addToCell(cellKey{x: x, y: y}, wayIdx)
			}
		}
	}
}

func (idx *SurfaceIndex) addToCell(key cellKey, wayIdx int) {
	bucket := idx.cells[key]
	if len(bucket) > 0 && bucket[len(bucket)-1] == wayIdx {
		return // сегменты одного way часто попадают в одну ячейку
	}
	idx.cells[key] = append(idx.cells[key], wayIdx)
}

func (idx *SurfaceIndex) cell(p domain.Point) cellKey {
	return cellKey{
		x: int(math.Floor(p.Lon / idx.cellSizeLon)),
		y: int(math.Floor(p.Lat / idx.cellSizeLat)),
	}
}

// NearestWay возвращает way с минимальным расстоянием до точки, если
// оно не превышает maxDistanceMeters. Радиус запроса может превышать
// допуск построения: охват соседних ячеек выводится из радиуса. Среди
// равноудаленных (в пределах distanceTieEpsilonM) побеждает way с
// меньшим индексом загрузки.
func (idx *SurfaceIndex) NearestWay(p domain.Point, maxDistanceMeters float64) (domain.TaggedWay, bool) {
	if len(idx.ways) == 0 {
		return domain.TaggedWay{}, false
	}

	center := idx.cell(p)

	reach := int(math.Ceil(maxDistanceMeters / idx.cellSizeM))
	if reach < 1 {
		reach = 1
	}

	seen := make(map[int]struct{})
	var candidates []int
	for x := center.x - reach; x <= center.x+reach; x++ {
		for y := center.y - reach; y <= center.y+reach; y++ {
			for _, wayIdx := range idx.cells[cellKey{x: x, y: y}] {
				if _, ok := seen[wayIdx]; ok {
					continue
				}
				seen[wayIdx] = struct{}{}
				candidates = append(candidates, wayIdx)
			}
		}
	}

	// Обход кандидатов в порядке загрузки дает стабильный tie-break
	sort.Ints(candidates)

	bestIdx := -1
	bestDist := math.Inf(1)
	for _, wayIdx := range candidates {
		d := wayDistance(p, idx.ways[wayIdx])
		if d < bestDist-distanceTieEpsilonM {
			bestDist = d
			bestIdx = wayIdx
		}
	}

	if bestIdx < 0 || bestDist > maxDistanceMeters {
		return domain.TaggedWay{}, false
	}

	return idx.ways[bestIdx], true
}

// wayDistance вычисляет минимальное расстояние в метрах от точки до
// геометрии way
func wayDistance(p domain.Point, way domain.TaggedWay) float64 {
	geometry := way.Geometry
	if len(geometry) == 1 {
		return utils.HaversineDistance(p.Lat, p.Lon, geometry[0].Lat, geometry[0].Lon)
	}

	minDist := math.Inf(1)
	for i := 1; i < len(geometry); i++ {
		d := utils.PointToSegmentDistance(
			p.Lat, p.Lon,
			geometry[i-1].Lat, geometry[i-1].Lon,
			geometry[i].Lat, geometry[i].Lon,
		)
		if d < minDist {
			minDist = d
		}
	}
	return minDist
}

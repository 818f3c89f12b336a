package domain

// Surface - каноническая классификация покрытия. Значения совпадают с
// тегом surface в OSM; все нераспознанные теги сводятся к SurfaceUnknown.
type Surface string

const (
	SurfaceAsphalt      Surface = "asphalt"
	SurfaceConcrete     Surface = "concrete"
	SurfacePavingStones Surface = "paving_stones"
	SurfaceSett         Surface = "sett"
	SurfaceCobblestone  Surface = "cobblestone"
	SurfaceMetal        Surface = "metal"
	SurfaceWood         Surface = "wood"
	SurfaceGravel       Surface = "gravel"
	SurfaceFineGravel   Surface = "fine_gravel"
	SurfaceDirt         Surface = "dirt"
	SurfaceEarth        Surface = "earth"
	SurfaceGrass        Surface = "grass"
	SurfaceSand         Surface = "sand"
	SurfaceMud          Surface = "mud"
	SurfaceCompacted    Surface = "compacted"
	SurfaceClay         Surface = "clay"
	SurfaceSnow         Surface = "snow"
	SurfaceIce          Surface = "ice"
	SurfaceUnknown      Surface = "unknown"
)

// SuitabilityWeight - вклад покрытия в пригодность маршрута для каждого
// типа велосипеда (0.0 - непроходимо, 1.0 - идеально).
type SuitabilityWeight struct {
	Roadbike   float64
	Gravelbike float64
}

// SuitabilityWeights - таблица весов покрытий. Единственное место,
// кодирующее доменную оценку; используется скорером как есть.
// Отсутствующее покрытие (в т.ч. unknown) дает нулевой вклад.
var SuitabilityWeights = map[Surface]SuitabilityWeight{
	SurfaceAsphalt:      {Roadbike: 1.0, Gravelbike: 1.0},
	SurfaceConcrete:     {Roadbike: 1.0, Gravelbike: 1.0},
	SurfacePavingStones: {Roadbike: 0.8, Gravelbike: 1.0},
	SurfaceSett:         {Roadbike: 0.6, Gravelbike: 1.0},
	SurfaceCobblestone:  {Roadbike: 0.5, Gravelbike: 1.0},
	SurfaceMetal:        {Roadbike: 0.6, Gravelbike: 0.8},
	SurfaceWood:         {Roadbike: 0.5, Gravelbike: 0.8},
	SurfaceGravel:       {Roadbike: 0.0, Gravelbike: 1.0},
	SurfaceFineGravel:   {Roadbike: 0.0, Gravelbike: 1.0},
	SurfaceDirt:         {Roadbike: 0.0, Gravelbike: 1.0},
	SurfaceEarth:        {Roadbike: 0.0, Gravelbike: 1.0},
	SurfaceGrass:        {Roadbike: 0.0, Gravelbike: 0.8},
	SurfaceSand:         {Roadbike: 0.0, Gravelbike: 0.6},
	SurfaceMud:          {Roadbike: 0.0, Gravelbike: 0.5},
	SurfaceCompacted:    {Roadbike: 0.4, Gravelbike: 1.0},
	SurfaceClay:         {Roadbike: 0.0, Gravelbike: 0.8},
	SurfaceSnow:         {Roadbike: 0.0, Gravelbike: 0.2},
	SurfaceIce:          {Roadbike: 0.0, Gravelbike: 0.1},
}

// CanonicalSurface приводит сырой тег surface из геоданных к
// каноническому словарю. Все, чего нет в таблице весов, считается unknown.
func CanonicalSurface(raw string) Surface {
	s := Surface(raw)
	if _, ok := SuitabilityWeights[s]; ok {
		return s
	}
	return SurfaceUnknown
}

// TaggedWay - линейная геометрия из геоданных с тегом покрытия.
// Неизменяема на протяжении одного анализа.
type TaggedWay struct {
	Geometry   []Point `json:"geometry"`
	RawSurface string  `json:"surface"`
}

// Surface возвращает каноническое покрытие way.
func (w TaggedWay) Surface() Surface {
	return CanonicalSurface(w.RawSurface)
}

// SurfaceLengthMap - накопленная длина в метрах по каждому покрытию.
// Ключи появляются только для реально встреченных покрытий.
type SurfaceLengthMap map[Surface]float64

// TotalLength возвращает суммарную длину всех покрытий в метрах.
func (m SurfaceLengthMap) TotalLength() float64 {
	var total float64
	for _, length := range m {
		total += length
	}
	return total
}

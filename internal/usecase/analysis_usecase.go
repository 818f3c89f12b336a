package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kotaicode/gpx-analyzer/internal/config"
	"github.com/kotaicode/gpx-analyzer/internal/domain"
	"github.com/kotaicode/gpx-analyzer/internal/domain/repository"
	"github.com/kotaicode/gpx-analyzer/internal/pkg/errors"
	"github.com/kotaicode/gpx-analyzer/internal/pkg/utils"
)

// AnalysisUseCase - оркестратор анализа трека: bbox -> геоданные ->
// индекс -> классификация сегментов + высотный профиль -> итог.
// Каждый вызов Analyze владеет собственным индексом и аккумуляторами,
// между запросами разделяемого изменяемого состояния нет.
type AnalysisUseCase struct {
	geodataRepo repository.GeodataRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cfg         config.AnalysisConfig
	cacheTTL    time.Duration
}

// NewAnalysisUseCase создает новый AnalysisUseCase. cacheRepo может быть
// nil - кеширование ответов геоданных выключено.
func NewAnalysisUseCase(
	geodataRepo repository.GeodataRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cfg config.AnalysisConfig,
	cacheTTL time.Duration,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		geodataRepo: geodataRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cfg:         cfg,
		cacheTTL:    cacheTTL,
	}
}

// Analyze выполняет полный анализ трека
func (uc *AnalysisUseCase) Analyze(ctx context.Context, points []domain.Trackpoint) (*domain.AnalysisResult, error) {
	if len(points) == 0 {
		return nil, errors.ErrEmptyTrack
	}
	for _, p := range points {
		if !utils.ValidateCoordinates(p.Lat, p.Lon) {
			return nil, errors.ErrInvalidCoordinates
		}
	}

	bbox, _ := domain.TrackBoundingBox(points)
	bbox = bbox.Pad(uc.cfg.BBoxPaddingDeg)

	ways, err := uc.fetchWays(ctx, bbox)
	if err != nil {
		if !uc.cfg.DegradeOnGeodataFailure {
			uc.logger.Error("Geodata fetch failed", zap.Error(err))
			return nil, errors.ErrGeodataUnavailable
		}
		// Политика деградации: регион без геоданных, весь трек unknown
		uc.logger.Warn("Geodata fetch failed, classifying track as unknown", zap.Error(err))
		ways = nil
	}

	segments := domain.Segments(points)

	// Классификация покрытия и высотный профиль независимы
	var (
		classes   []SegmentClass
		elevation domain.ElevationResult
		wg        sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		index := NewSurfaceIndex(ways, uc.cfg.MatchToleranceMeters)
		classes = MatchSegments(index, segments, uc.cfg.MatchToleranceMeters, uc.cfg.MatchWorkers)
	}()
	go func() {
		defer wg.Done()
		elevation = ComputeElevation(points, uc.cfg.ElevationNoiseMeters)
	}()
	wg.Wait()

	lengths := AggregateLengths(classes)
	scores := ComputeSuitability(lengths)

	uc.logger.Debug("Track analyzed",
		zap.Int("points", len(points)),
		zap.Int("segments", len(segments)),
		zap.Int("ways", len(ways)),
		zap.Int("surfaces", len(lengths)),
	)

	return &domain.AnalysisResult{
		SurfaceLengthsKm: toKilometers(lengths),
		Suitability:      scores,
		Elevation:        elevation,
	}, nil
}

// fetchWays получает way для bbox: сначала кеш, затем живой источник.
// Ошибки кеша не фатальны - выполняется живой запрос.
func (uc *AnalysisUseCase) fetchWays(ctx context.Context, bbox domain.BoundingBox) ([]domain.TaggedWay, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetSurfaceWays(ctx, bbox)
		if err != nil {
			uc.logger.Warn("Geodata cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	ways, err := uc.geodataRepo.GetSurfaceWays(ctx, bbox)
	if err != nil {
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetSurfaceWays(ctx, bbox, ways, uc.cacheTTL); err != nil {
			uc.logger.Warn("Geodata cache write failed", zap.Error(err))
		}
	}

	return ways, nil
}

// toKilometers переводит карту длин из метров в километры - единицы
// внешнего API
func toKilometers(lengths domain.SurfaceLengthMap) map[domain.Surface]float64 {
	km := make(map[domain.Surface]float64, len(lengths))
	for surface, meters := range lengths {
		km[surface] = round2(meters / 1000)
	}
	return km
}

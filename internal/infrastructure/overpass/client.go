package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kotaicode/gpx-analyzer/internal/config"
	"github.com/kotaicode/gpx-analyzer/internal/domain"
	"github.com/kotaicode/gpx-analyzer/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	retryDelay time.Duration
	logger     *zap.Logger
}

// NewOverpassClient создает новый клиент для Overpass API
func NewOverpassClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.GeodataRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:    cfg.URL,
		retryDelay: cfg.RetryDelay,
		logger:     logger,
	}
}

// overpassResponse - ответ Overpass API в формате out:json
type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type     string            `json:"type"`
	ID       int64             `json:"id"`
	Geometry []domain.Point    `json:"geometry"`
	Tags     map[string]string `json:"tags"`
}

// GetSurfaceWays возвращает все way с тегом surface внутри bbox.
// При транспортной ошибке выполняется ровно одна повторная попытка.
func (c *client) GetSurfaceWays(ctx context.Context, bbox domain.BoundingBox) ([]domain.TaggedWay, error) {
	query := c.buildQuery(bbox)

	c.logger.Debug("Calling Overpass API",
		zap.String("url", c.baseURL),
		zap.Float64("min_lat", bbox.MinLat),
		zap.Float64("min_lon", bbox.MinLon),
		zap.Float64("max_lat", bbox.MaxLat),
		zap.Float64("max_lon", bbox.MaxLon))

	ways, err := c.fetch(ctx, query)
	if err == nil {
		return ways, nil
	}

	c.logger.Warn("Overpass request failed, retrying once", zap.Error(err))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	ways, retryErr := c.fetch(ctx, query)
	if retryErr != nil {
		c.logger.Error("Overpass retry failed", zap.Error(retryErr))
		return nil, fmt.Errorf("overpass request failed after retry: %w", retryErr)
	}

	return ways, nil
}

// buildQuery формирует Overpass QL запрос: все way с тегом surface
// внутри bbox, с геометрией
func (c *client) buildQuery(bbox domain.BoundingBox) string {
	timeoutSec := int(c.httpClient.Timeout.Seconds())
	return fmt.Sprintf(
		`[out:json][timeout:%d];(way(%f,%f,%f,%f)["surface"];);out geom;`,
		timeoutSec, bbox.MinLat, bbox.MinLon, bbox.MaxLat, bbox.MaxLon,
	)
}

func (c *client) fetch(ctx context.Context, query string) ([]domain.TaggedWay, error) {
	form := url.Values{"data": {query}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("overpass API error: status %d", resp.StatusCode)
	}

	var overpassResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	ways := make([]domain.TaggedWay, 0, len(overpassResp.Elements))
	for _, element := range overpassResp.Elements {
		if element.Type != "way" || len(element.Geometry) == 0 {
			continue
		}
		surface, ok := element.Tags["surface"]
		if !ok {
			continue
		}
		ways = append(ways, domain.TaggedWay{
			Geometry:   element.Geometry,
			RawSurface: surface,
		})
	}

	c.logger.Debug("Overpass API call successful",
		zap.Int("elements", len(overpassResp.Elements)),
		zap.Int("ways", len(ways)))

	return ways, nil
}

package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kotaicode/gpx-analyzer/internal/config"
	"github.com/kotaicode/gpx-analyzer/internal/domain"
)

const sampleResponse = `{
	"version": 0.6,
	"elements": [
		{
			"type": "way",
			"id": 100,
			"geometry": [
				{"lat": 0.0, "lon": 0.0},
				{"lat": 0.0, "lon": 0.002}
			],
			"tags": {"surface": "asphalt", "highway": "residential"}
		},
		{
			"type": "way",
			"id": 101,
			"geometry": [
				{"lat": 0.001, "lon": 0.0},
				{"lat": 0.001, "lon": 0.002}
			],
			"tags": {"surface": "gravel"}
		},
		{
			"type": "node",
			"id": 102,
			"tags": {"surface": "asphalt"}
		},
		{
			"type": "way",
			"id": 103,
			"geometry": [
				{"lat": 0.002, "lon": 0.0}
			],
			"tags": {"highway": "residential"}
		}
	]
}`

func testConfig(baseURL string) *config.OverpassConfig {
	return &config.OverpassConfig{
		URL:            baseURL,
		RequestTimeout: 5 * time.Second,
		RetryDelay:     10 * time.Millisecond,
	}
}

func TestClient_GetSurfaceWays(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	bbox := domain.BoundingBox{MinLat: -0.001, MinLon: -0.001, MaxLat: 0.003, MaxLon: 0.003}

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, r.ParseForm())
			query := r.PostForm.Get("data")
			assert.Contains(t, query, `["surface"]`)
			assert.Contains(t, query, "out geom")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(sampleResponse))
		}))
		defer server.Close()

		client := NewOverpassClient(testConfig(server.URL), logger)

		ways, err := client.GetSurfaceWays(context.Background(), bbox)
		require.NoError(t, err)

		// Нода и way без тега surface отбрасываются
		require.Len(t, ways, 2)
		assert.Equal(t, "asphalt", ways[0].RawSurface)
		assert.Equal(t, "gravel", ways[1].RawSurface)
		assert.Len(t, ways[0].Geometry, 2)
		assert.Equal(t, 0.002, ways[0].Geometry[1].Lon)
	})

	t.Run("empty region", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"version": 0.6, "elements": []}`))
		}))
		defer server.Close()

		client := NewOverpassClient(testConfig(server.URL), logger)

		ways, err := client.GetSurfaceWays(context.Background(), bbox)
		require.NoError(t, err)
		assert.Empty(t, ways)
	})

	t.Run("retries once after server error", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusGatewayTimeout)
				return
			}
			_, _ = w.Write([]byte(sampleResponse))
		}))
		defer server.Close()

		client := NewOverpassClient(testConfig(server.URL), logger)

		ways, err := client.GetSurfaceWays(context.Background(), bbox)
		require.NoError(t, err)
		assert.Len(t, ways, 2)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("fails after bounded retry", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewOverpassClient(testConfig(server.URL), logger)

		ways, err := client.GetSurfaceWays(context.Background(), bbox)
		assert.Error(t, err)
		assert.Nil(t, ways)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("context cancellation stops retry", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		cfg := testConfig(server.URL)
		cfg.RetryDelay = time.Minute

		client := NewOverpassClient(cfg, logger)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.GetSurfaceWays(ctx, domain.BoundingBox{})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

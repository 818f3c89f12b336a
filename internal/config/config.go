package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Overpass OverpassConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	MaxFileSize int64
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	// GeodataCacheTTL - время жизни закешированного ответа геоданных,
	// задается в секундах (GEODATA_CACHE_TTL_SECONDS). Ноль - без
	// истечения.
	GeodataCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// OverpassConfig - настройки клиента Overpass API
type OverpassConfig struct {
	URL            string
	RequestTimeout time.Duration
	RetryDelay     time.Duration
}

// AnalysisConfig - настройки движка анализа. Все пороги явные и
// конфигурируемые; значения по умолчанию задокументированы здесь.
type AnalysisConfig struct {
	// MatchToleranceMeters - максимальное расстояние от середины сегмента
	// трека до way, при котором сегмент получает его покрытие
	MatchToleranceMeters float64

	// ElevationNoiseMeters - перепады высоты ниже порога считаются
	// GPS-шумом и не попадают в набор/потерю
	ElevationNoiseMeters float64

	// BBoxPaddingDeg - запас bbox при запросе геоданных, в градусах
	BBoxPaddingDeg float64

	// MatchWorkers - количество горутин классификации сегментов
	MatchWorkers int

	// DegradeOnGeodataFailure - при отказе источника геоданных:
	// true - классифицировать весь трек как unknown, false - вернуть
	// ошибку GEODATA_UNAVAILABLE
	DegradeOnGeodataFailure bool
}

const (
	defaultMaxFileSize          = 10 * 1024 * 1024 // 10MB
	defaultOverpassURL          = "http://overpass-api.de/api/interpreter"
	defaultOverpassTimeout      = 30 * time.Second
	defaultRetryDelay           = 2 * time.Second
	defaultMatchToleranceMeters = 50.0
	defaultElevationNoiseMeters = 0.5
	defaultBBoxPaddingDeg       = 0.0005 // ~50 метров
	defaultMatchWorkers         = 4
	defaultGeodataCacheTTL      = time.Hour
)

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env опционален, переменных окружения достаточно
	_ = viper.ReadInConfig()

	// Для порогов ноль - осмысленное значение (выключить подавление шума,
	// нулевой допуск, кеш без истечения), поэтому значения по умолчанию
	// задаются через viper, а не через подмену нуля
	viper.SetDefault("MATCH_TOLERANCE_METERS", defaultMatchToleranceMeters)
	viper.SetDefault("ELEVATION_NOISE_METERS", defaultElevationNoiseMeters)
	viper.SetDefault("GEODATA_CACHE_TTL_SECONDS", int(defaultGeodataCacheTTL.Seconds()))

	cfg := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("API_HOST"),
			Port:        viper.GetInt("API_PORT"),
			Env:         viper.GetString("API_ENV"),
			MaxFileSize: viper.GetInt64("MAX_FILE_SIZE"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeodataCacheTTL: time.Duration(viper.GetInt("GEODATA_CACHE_TTL_SECONDS")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Overpass: OverpassConfig{
			URL:            viper.GetString("OVERPASS_URL"),
			RequestTimeout: time.Duration(viper.GetInt("OVERPASS_TIMEOUT")) * time.Second,
			RetryDelay:     time.Duration(viper.GetInt("OVERPASS_RETRY_DELAY")) * time.Second,
		},
		Analysis: AnalysisConfig{
			MatchToleranceMeters:    viper.GetFloat64("MATCH_TOLERANCE_METERS"),
			ElevationNoiseMeters:    viper.GetFloat64("ELEVATION_NOISE_METERS"),
			BBoxPaddingDeg:          viper.GetFloat64("BBOX_PADDING_DEG"),
			MatchWorkers:            viper.GetInt("MATCH_WORKERS"),
			DegradeOnGeodataFailure: viper.GetBool("DEGRADE_ON_GEODATA_FAILURE"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MaxFileSize == 0 {
		cfg.Server.MaxFileSize = defaultMaxFileSize
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Overpass.URL == "" {
		cfg.Overpass.URL = defaultOverpassURL
	}
	if cfg.Overpass.RequestTimeout == 0 {
		cfg.Overpass.RequestTimeout = defaultOverpassTimeout
	}
	if cfg.Overpass.RetryDelay == 0 {
		cfg.Overpass.RetryDelay = defaultRetryDelay
	}
	if cfg.Analysis.BBoxPaddingDeg == 0 {
		cfg.Analysis.BBoxPaddingDeg = defaultBBoxPaddingDeg
	}
	if cfg.Analysis.MatchWorkers == 0 {
		cfg.Analysis.MatchWorkers = defaultMatchWorkers
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

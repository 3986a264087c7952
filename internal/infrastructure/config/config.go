package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Index     IndexConfig
	Redis     RedisConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type IndexConfig struct {
	DefaultCapacity int `envconfig:"INDEX_DEFAULT_CAPACITY" default:"4"`
	MaxCapacity     int `envconfig:"INDEX_MAX_CAPACITY" default:"1024"`
	MaxBatchPoints  int `envconfig:"INDEX_MAX_BATCH_POINTS" default:"10000"`
	MaxSeedPoints   int `envconfig:"INDEX_MAX_SEED_POINTS" default:"100000"`

	// An index created at startup. Empty name disables it.
	BootstrapName     string  `envconfig:"INDEX_BOOTSTRAP_NAME"`
	BootstrapCX       float64 `envconfig:"INDEX_BOOTSTRAP_CX" default:"200"`
	BootstrapCY       float64 `envconfig:"INDEX_BOOTSTRAP_CY" default:"200"`
	BootstrapHalfW    float64 `envconfig:"INDEX_BOOTSTRAP_HALF_W" default:"200"`
	BootstrapHalfH    float64 `envconfig:"INDEX_BOOTSTRAP_HALF_H" default:"200"`
	BootstrapCapacity int     `envconfig:"INDEX_BOOTSTRAP_CAPACITY" default:"4"`
	BootstrapPoints   int     `envconfig:"INDEX_BOOTSTRAP_POINTS" default:"500"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"600"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.Index.DefaultCapacity <= 0 {
		return nil, fmt.Errorf("loading config: INDEX_DEFAULT_CAPACITY must be positive, got %d", cfg.Index.DefaultCapacity)
	}
	if cfg.Index.MaxCapacity < cfg.Index.DefaultCapacity {
		return nil, fmt.Errorf("loading config: INDEX_MAX_CAPACITY %d is below INDEX_DEFAULT_CAPACITY %d",
			cfg.Index.MaxCapacity, cfg.Index.DefaultCapacity)
	}
	return &cfg, nil
}

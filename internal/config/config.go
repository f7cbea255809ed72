package config

import (
	"time"

	"github.com/oportunia/radar/internal/cache"
)

// Default configuration values.
const (
	defaultServiceName     = "radar"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8080
	defaultConcurrency     = 8
	defaultBatchSize       = 50
	defaultShutdownTimeout = 15 * time.Second
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultSourceTimeout   = 10 * time.Second
	defaultSourceRPS       = 5.0
	defaultSourceBurst     = 10
	defaultMaxComments     = 500
	defaultCacheTTL        = 15 * time.Minute
	defaultRedisAddress    = "localhost:6379"
)

// Config holds all configuration for the radar service.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Logging LoggingConfig `yaml:"logging"`
	Source  SourceConfig  `yaml:"source"`
	Cache   cache.Config  `yaml:"cache"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name            string        `yaml:"name"`
	Version         string        `yaml:"version"`
	Port            int           `env:"RADAR_PORT"        yaml:"port"`
	Debug           bool          `env:"APP_DEBUG"         yaml:"debug"`
	Concurrency     int           `env:"RADAR_CONCURRENCY" yaml:"concurrency"`
	BatchSize       int           `yaml:"batch_size"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// SourceConfig holds the external comment/metrics source configuration.
type SourceConfig struct {
	BaseURL string        `env:"SOURCE_BASE_URL" yaml:"base_url"`
	APIKey  string        `env:"SOURCE_API_KEY"  yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
	// RequestsPerSecond and Burst bound the request rate against the
	// external API's quota.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
	// MaxComments caps how many comments are fetched per video across
	// pagination.
	MaxComments int `yaml:"max_comments"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return loadWithDefaults(path, setDefaults)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setLoggingDefaults(&cfg.Logging)
	setSourceDefaults(&cfg.Source)
	setCacheDefaults(&cfg.Cache)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
	if s.BatchSize == 0 {
		s.BatchSize = defaultBatchSize
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = defaultShutdownTimeout
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setSourceDefaults(s *SourceConfig) {
	if s.Timeout == 0 {
		s.Timeout = defaultSourceTimeout
	}
	if s.RequestsPerSecond == 0 {
		s.RequestsPerSecond = defaultSourceRPS
	}
	if s.Burst == 0 {
		s.Burst = defaultSourceBurst
	}
	if s.MaxComments == 0 {
		s.MaxComments = defaultMaxComments
	}
}

func setCacheDefaults(c *cache.Config) {
	if c.Address == "" {
		c.Address = defaultRedisAddress
	}
	if c.TTL == 0 {
		c.TTL = defaultCacheTTL
	}
}

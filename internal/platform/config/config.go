// Package config loads and validates the storefront settings. Values layer
// defaults, base.yaml, the profile yaml, an optional override file and APP_*
// environment variables, later layers winning.
package config

import "time"

// Config holds all configuration for the storefront.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Client     ClientConfig     `koanf:"client"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Storefront StorefrontConfig `koanf:"storefront"`
	Storage    StorageConfig    `koanf:"storage"`
	Redis      RedisConfig      `koanf:"redis"`
	Session    SessionConfig    `koanf:"session"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds the registrar HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	APIKey         string               `koanf:"api_key"`
	Timeout        time.Duration        `koanf:"timeout"`
	MaxConcurrency int                  `koanf:"max_concurrency"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig bounds outbound request rate. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// StorefrontConfig holds the cart and pricing rules.
type StorefrontConfig struct {
	// Provider selects the availability source: "fixture" or "registrar".
	Provider       string   `koanf:"provider"`
	Suffixes       []string `koanf:"suffixes"`
	TaxRate        float64  `koanf:"tax_rate"`
	MinQueryLength int      `koanf:"min_query_length"`
}

// Availability providers accepted by storefront.provider.
const (
	ProviderFixture   = "fixture"
	ProviderRegistrar = "registrar"
)

// Storage drivers accepted by storage.driver.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// StorageConfig selects where session carts are persisted.
type StorageConfig struct {
	// Driver is one of "memory", "file" or "redis".
	Driver    string        `koanf:"driver"`
	FilePath  string        `koanf:"file_path"`
	KeyPrefix string        `koanf:"key_prefix"`
	TTL       time.Duration `koanf:"ttl"`
}

// RedisConfig holds the Redis connection used by the redis storage driver.
type RedisConfig struct {
	URL          string        `koanf:"url"`
	PoolSize     int           `koanf:"pool_size"`
	MinIdleConns int           `koanf:"min_idle_conns"`
	DialTimeout  time.Duration `koanf:"dial_timeout"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// SessionConfig holds the browser session cookie settings.
type SessionConfig struct {
	CookieName  string        `koanf:"cookie_name"`
	CookieTTL   time.Duration `koanf:"cookie_ttl"`
	Secure      bool          `koanf:"secure"`
	MaxSessions int           `koanf:"max_sessions"`
}

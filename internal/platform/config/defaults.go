package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultMaxConcurrency = 4
	defaultMaxSessions    = 10000
	defaultMinQueryLength = 3
	defaultTaxRate        = 0.21
	defaultRedisPoolSize  = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.api_key":                         "",
		"client.timeout":                         "10s",
		"client.max_concurrency":                 defaultMaxConcurrency,
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "domain-storefront",

		"storefront.provider":         "fixture",
		"storefront.tax_rate":         defaultTaxRate,
		"storefront.min_query_length": defaultMinQueryLength,

		"storage.driver":     "memory",
		"storage.file_path":  "storefront.json",
		"storage.key_prefix": "storefront:",
		"storage.ttl":        "720h",

		"redis.url":            "",
		"redis.pool_size":      defaultRedisPoolSize,
		"redis.min_idle_conns": 0,
		"redis.dial_timeout":   "5s",
		"redis.read_timeout":   "3s",
		"redis.write_timeout":  "3s",

		"session.cookie_name":  "storefront_session",
		"session.cookie_ttl":   "720h",
		"session.secure":       false,
		"session.max_sessions": defaultMaxSessions,
	}
}

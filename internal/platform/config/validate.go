package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// problems collects every rule a Config breaks so one Load reports them all.
type problems []error

// require records the formatted message unless ok holds.
func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// oneOf records an error unless value is among allowed.
func (p *problems) oneOf(key, value string, allowed ...string) {
	p.require(slices.Contains(allowed, value),
		"%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), value)
}

// Validate checks all configuration values and returns the joined errors.
func (c *Config) Validate() error {
	var p problems

	c.Server.check(&p)
	c.Log.check(&p)
	c.Client.check(&p)
	c.Telemetry.check(&p)
	c.Storefront.check(&p)
	c.Storage.check(&p)
	c.Session.check(&p)

	p.require(c.Storefront.Provider != ProviderRegistrar || c.Client.APIKey != "",
		"client.api_key must not be empty when storefront.provider is registrar")
	p.require(c.Storage.Driver != DriverRedis || c.Redis.URL != "",
		"redis.url must not be empty when storage.driver is redis")

	return errors.Join(p...)
}

func (s *ServerConfig) check(p *problems) {
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")
}

func (l *LogConfig) check(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

func (cl *ClientConfig) check(p *problems) {
	p.require(cl.BaseURL != "", "client.base_url must not be empty")
	p.require(cl.Timeout > 0, "client.timeout must be positive")
	p.require(cl.MaxConcurrency >= 1, "client.max_concurrency must be >= 1, got %d", cl.MaxConcurrency)
	p.require(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.require(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	p.require(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting, got %d", cl.RateLimit.BurstSize)
}

// Exporter settings only matter once telemetry is switched on.
func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
}

func (sf *StorefrontConfig) check(p *problems) {
	p.oneOf("storefront.provider", sf.Provider, ProviderFixture, ProviderRegistrar)
	p.require(sf.TaxRate >= 0, "storefront.tax_rate must not be negative, got %g", sf.TaxRate)
	p.require(sf.MinQueryLength >= 1, "storefront.min_query_length must be >= 1, got %d", sf.MinQueryLength)

	seen := make(map[string]bool, len(sf.Suffixes))
	for _, suffix := range sf.Suffixes {
		p.require(suffix != "", "storefront.suffixes must not contain empty entries")
		p.require(suffix == "" || !seen[suffix], "storefront.suffixes contains duplicate %q", suffix)
		seen[suffix] = true
	}
}

func (st *StorageConfig) check(p *problems) {
	p.oneOf("storage.driver", st.Driver, DriverMemory, DriverFile, DriverRedis)
	p.require(st.Driver != DriverFile || st.FilePath != "", "storage.file_path must not be empty when driver is file")
	p.require(st.TTL >= 0, "storage.ttl must not be negative")
}

func (se *SessionConfig) check(p *problems) {
	p.require(se.CookieName != "", "session.cookie_name must not be empty")
	p.require(se.CookieTTL > 0, "session.cookie_ttl must be positive")
	p.require(se.MaxSessions >= 1, "session.max_sessions must be >= 1, got %d", se.MaxSessions)
}

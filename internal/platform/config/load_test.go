package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/domain-storefront/internal/platform/config"
)

// repoConfigs is the checked-in configs directory.
const repoConfigs = "../../../configs"

// memFS holds a minimal base plus a "test" profile. An empty profile only
// restates the default log level.
func memFS(profile string) fstest.MapFS {
	if profile == "" {
		profile = "log:\n  level: info\n"
	}
	return fstest.MapFS{
		"base.yaml": {Data: []byte(`
server:
  port: 8080
  read_timeout: 5s
storefront:
  suffixes: [com, io, dev]
  tax_rate: 0.21
`)},
		"test.yaml": {Data: []byte(profile)},
	}
}

func TestLoad_LocalProfile(t *testing.T) {
	cfg, err := config.Load("local", config.WithConfigDir(repoConfigs))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "inherited from base")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, config.ProviderFixture, cfg.Storefront.Provider)
	assert.Equal(t, config.DriverFile, cfg.Storage.Driver)
	assert.InDelta(t, 0.21, cfg.Storefront.TaxRate, 1e-9)
	assert.Equal(t, 3, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, 5, cfg.Client.CircuitBreaker.MaxFailures)
	assert.Equal(t, "storefront_session", cfg.Session.CookieName)
	require.Len(t, cfg.Storefront.Suffixes, 20)
	assert.Equal(t, "com", cfg.Storefront.Suffixes[0])
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Setenv("APP_CLIENT_API_KEY", "registrar-key")

	cfg, err := config.Load("prod", config.WithConfigDir(repoConfigs))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
	assert.NotEmpty(t, cfg.Telemetry.Endpoint)
	assert.Equal(t, config.ProviderRegistrar, cfg.Storefront.Provider)
	assert.Equal(t, config.DriverRedis, cfg.Storage.Driver)
	assert.NotEmpty(t, cfg.Redis.URL)
	assert.True(t, cfg.Session.Secure)
	assert.Equal(t, "registrar-key", cfg.Client.APIKey)
}

func TestLoad_ProdProfileRequiresAPIKey(t *testing.T) {
	t.Setenv("APP_CLIENT_API_KEY", "")

	_, err := config.Load("prod", config.WithConfigDir(repoConfigs))
	require.ErrorContains(t, err, "client.api_key")
}

func TestLoad_DefaultsFillGaps(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("test", config.WithFS(memFS("log:\n  level: warn\n")))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10000, cfg.Session.MaxSessions)
	assert.Equal(t, []string{"com", "io", "dev"}, cfg.Storefront.Suffixes)
}

func TestLoad_ProfileOverridesBase(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("test", config.WithFS(memFS("storefront:\n  suffixes: [nl]\n  tax_rate: 0.09\n")))
	require.NoError(t, err)

	assert.Equal(t, []string{"nl"}, cfg.Storefront.Suffixes)
	assert.InDelta(t, 0.09, cfg.Storefront.TaxRate, 1e-9)
}

func TestLoad_OverrideFile(t *testing.T) {
	override := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(override, []byte("server:\n  port: 9443\nsession:\n  secure: true\n"), 0o600))
	t.Setenv("APP_SESSION_SECURE", "false")

	cfg, err := config.Load("test", config.WithFS(memFS("")), config.WithOverrideFile(override))
	require.NoError(t, err)

	assert.Equal(t, 9443, cfg.Server.Port)
	assert.False(t, cfg.Session.Secure, "env wins over the override file")
}

func TestLoad_MissingOverrideFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load("test", config.WithFS(memFS("")), config.WithOverrideFile(filepath.Join(t.TempDir(), "absent.yaml")))
	require.ErrorContains(t, err, "loading override")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("APP_STOREFRONT_TAX_RATE", "0.09")
	t.Setenv("APP_STOREFRONT_SUFFIXES", "com, io,")

	cfg, err := config.Load("test", config.WithFS(memFS("")))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 7, cfg.Client.Retry.MaxAttempts)
	assert.InDelta(t, 0.09, cfg.Storefront.TaxRate, 1e-9)
	assert.Equal(t, []string{"com", "io"}, cfg.Storefront.Suffixes)
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile string
		fsys    fstest.MapFS
		wantErr string
	}{
		{name: "empty profile", profile: " ", fsys: memFS(""), wantErr: "must not be empty"},
		{name: "path in profile", profile: "../etc/passwd", fsys: memFS(""), wantErr: "plain name"},
		{name: "dotdot profile", profile: "..", fsys: memFS(""), wantErr: "plain name"},
		{name: "missing profile", profile: "nonexistent", fsys: memFS(""), wantErr: "nonexistent.yaml"},
		{name: "missing base", profile: "test", fsys: fstest.MapFS{"test.yaml": {}}, wantErr: "base.yaml"},
		{name: "bad yaml", profile: "test", fsys: memFS("server: [port"), wantErr: "test.yaml"},
		{name: "invalid values", profile: "test", fsys: memFS("server:\n  port: 0\n"), wantErr: "server.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(tt.profile, config.WithFS(tt.fsys))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*config.Config)
		wantErr string
	}{
		{name: "valid", modify: func(*config.Config) {}},
		{name: "port zero", modify: func(c *config.Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "log level", modify: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: "log.level"},
		{name: "otlp without endpoint", modify: func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
		}, wantErr: "telemetry.endpoint"},
		{name: "unknown provider", modify: func(c *config.Config) { c.Storefront.Provider = "random" }, wantErr: "storefront.provider"},
		{name: "negative tax rate", modify: func(c *config.Config) { c.Storefront.TaxRate = -0.1 }, wantErr: "storefront.tax_rate"},
		{name: "zero min length", modify: func(c *config.Config) { c.Storefront.MinQueryLength = 0 }, wantErr: "min_query_length"},
		{name: "duplicate suffix", modify: func(c *config.Config) { c.Storefront.Suffixes = []string{"io", "io"} }, wantErr: "duplicate"},
		{name: "unknown storage driver", modify: func(c *config.Config) { c.Storage.Driver = "sqlite" }, wantErr: "storage.driver"},
		{name: "file driver without path", modify: func(c *config.Config) {
			c.Storage.Driver = config.DriverFile
			c.Storage.FilePath = ""
		}, wantErr: "storage.file_path"},
		{name: "redis driver without url", modify: func(c *config.Config) { c.Storage.Driver = config.DriverRedis }, wantErr: "redis.url"},
		{name: "registrar without api key", modify: func(c *config.Config) { c.Storefront.Provider = config.ProviderRegistrar }, wantErr: "client.api_key"},
		{name: "zero max sessions", modify: func(c *config.Config) { c.Session.MaxSessions = 0 }, wantErr: "session.max_sessions"},
		{name: "rate limit without burst", modify: func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = 5 }, wantErr: "burst_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ReadTimeout: 5 * time.Second, WriteTimeout: 10 * time.Second},
		Log:    config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			BaseURL:        "http://localhost:8081",
			Timeout:        time.Second,
			MaxConcurrency: 4,
			Retry:          config.RetryConfig{MaxAttempts: 3, Multiplier: 2},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5},
		},
		Telemetry:  config.TelemetryConfig{Exporter: "stdout"},
		Storefront: config.StorefrontConfig{Provider: config.ProviderFixture, Suffixes: []string{"com", "io"}, MinQueryLength: 3},
		Storage:    config.StorageConfig{Driver: config.DriverMemory},
		Session:    config.SessionConfig{CookieName: "storefront_session", CookieTTL: time.Hour, MaxSessions: 100},
	}
}

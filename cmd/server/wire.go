package main

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/domain-storefront/internal/adapters/clients/fixture"
	adapthttp "github.com/jsamuelsen11/domain-storefront/internal/adapters/http"
	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/domain-storefront/internal/adapters/storage"
	"github.com/jsamuelsen11/domain-storefront/internal/adapters/storage/file"
	"github.com/jsamuelsen11/domain-storefront/internal/adapters/storage/memory"
	storageredis "github.com/jsamuelsen11/domain-storefront/internal/adapters/storage/redis"
	"github.com/jsamuelsen11/domain-storefront/internal/app"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/config"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/health"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/httpclient"
	platformredis "github.com/jsamuelsen11/domain-storefront/internal/platform/redis"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/telemetry"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// provide registers the lazy constructors for the whole object graph.
// Nothing is built until the server is invoked.
func provide(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Client, "registrar", do.MustInvoke[*telemetry.Metrics](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AvailabilityProvider, error) {
		if cfg.Storefront.Provider != config.ProviderRegistrar {
			return fixture.New(cfg.Storefront.Suffixes), nil
		}
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewRegistrarClient(client, cfg.Storefront.Suffixes, cfg.Client.MaxConcurrency, logger), nil
	})

	do.Provide(injector, func(do.Injector) (*platformredis.Client, error) {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
		defer cancel()
		return platformredis.New(ctx, &cfg.Redis)
	})

	do.Provide(injector, func(i do.Injector) (ports.KVStore, error) {
		switch cfg.Storage.Driver {
		case config.DriverRedis:
			return storageredis.New(do.MustInvoke[*platformredis.Client](i), cfg.Storage.TTL), nil
		case config.DriverFile:
			return file.Open(cfg.Storage.FilePath)
		default:
			return memory.New(), nil
		}
	})

	do.Provide(injector, func(i do.Injector) (*app.Sessions, error) {
		kv := do.MustInvoke[ports.KVStore](i)
		opts := app.StorefrontOptions{MinQueryLength: cfg.Storefront.MinQueryLength, Logger: logger}
		if m := do.MustInvoke[*telemetry.Metrics](i); m != nil {
			opts.Recorder = m
		}
		return app.NewSessions(
			cfg.Session.MaxSessions,
			do.MustInvoke[ports.AvailabilityProvider](i),
			func(sessionID string) ports.KVStore { return storage.Scoped(kv, cfg.Storage.KeyPrefix, sessionID) },
			cart.NewPricePolicy(cfg.Storefront.TaxRate),
			opts,
		)
	})

	do.Provide(injector, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Client.Timeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			handlers.NewStorefrontHandler(do.MustInvoke[*app.Sessions](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.Session(cfg.Session),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}

// registerHealthChecks puts the outbound dependencies this profile uses
// behind the readiness probe.
func registerHealthChecks(injector *do.RootScope, cfg *config.Config) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)

	if cfg.Storefront.Provider == config.ProviderRegistrar {
		registry.Register(do.MustInvoke[*httpclient.Client](injector))
	}
	if cfg.Storage.Driver == config.DriverRedis {
		registry.Register(do.MustInvoke[*platformredis.Client](injector))
	}
}

// closeStorage releases the Redis pool when the redis driver opened one.
func closeStorage(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Storage.Driver != config.DriverRedis {
		return
	}
	client, err := do.Invoke[*platformredis.Client](injector)
	if err != nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Error("closing redis", slog.Any("error", err))
	}
}

package runtime

import (
	"context"
	"fmt"

	"github.com/architeacher/device-registry/internal/adapters/notify"
	"github.com/architeacher/device-registry/internal/adapters/repos"
	"github.com/architeacher/device-registry/internal/config"
	"github.com/architeacher/device-registry/internal/infrastructure/telemetry"
	"github.com/architeacher/device-registry/internal/services"
	"github.com/architeacher/device-registry/internal/usecases"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/architeacher/device-registry/pkg/metrics"
	"github.com/architeacher/device-registry/pkg/metrics/noop"
	"go.opentelemetry.io/otel"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithTracing(ctx),
		WithMetrics(ctx),
		WithCapabilityRepository(),
		WithServices(),
		WithApplication(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		if d.config != nil {
			return nil
		}

		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

// WithConfigInstance injects a pre-built configuration, bypassing the
// environment. Intended for tests and embedding callers.
func WithConfigInstance(cfg *config.ServiceConfig) DependencyOption {
	return func(d *dependencies) error {
		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format)

		return nil
	}
}

func WithTracing(_ context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Enabled {
			d.infra.tracerProvider = telemetry.NewNoopTracerProvider()

			return nil
		}

		tp, shutdown, err := telemetry.NewTracerProvider(d.config.App, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.infra.tracerShutdown = shutdown

		return nil
	}
}

func WithMetrics(_ context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Metrics.Enabled {
			d.infra.metricsClient = noop.NewMetricsClient()

			return nil
		}

		d.infra.metricsClient = metrics.NewOTelClient(otel.GetMeterProvider(), d.config.App.ServiceName)

		return nil
	}
}

func WithCapabilityRepository() DependencyOption {
	return func(d *dependencies) error {
		switch d.config.Storage.Backend {
		case config.StorageBackendFile:
			d.repos.capabilityRepo = repos.NewFileCapabilityRepository(d.config.Storage.DataPath, d.infra.logger)
		case config.StorageBackendBolt:
			boltRepo, err := repos.NewBoltCapabilityRepository(d.config.Storage.BoltPath, d.infra.logger)
			if err != nil {
				return fmt.Errorf("initializing bolt capability repository: %w", err)
			}

			d.repos.capabilityRepo = boltRepo
			d.repos.boltRepo = boltRepo
		default:
			return fmt.Errorf("unsupported storage backend %q", d.config.Storage.Backend)
		}

		return nil
	}
}

func WithServices() DependencyOption {
	return func(d *dependencies) error {
		d.notifier = notify.NewHub(d.infra.logger)
		d.capabilityCache = services.NewCapabilityCache(d.repos.capabilityRepo, d.infra.logger)
		d.accessController = services.NewAccessController(d.capabilityCache)
		d.deviceRegistry = services.NewDeviceRegistry(
			d.external.sessionStore,
			d.external.userStore,
			d.capabilityCache,
			d.accessController,
			d.notifier,
			d.infra.logger,
		)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		d.app = usecases.NewApplication(
			d.deviceRegistry,
			d.capabilityCache,
			d.accessController,
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

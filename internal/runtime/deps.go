package runtime

import (
	"context"

	"github.com/architeacher/device-registry/internal/adapters/notify"
	"github.com/architeacher/device-registry/internal/adapters/repos"
	"github.com/architeacher/device-registry/internal/config"
	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/internal/services"
	"github.com/architeacher/device-registry/internal/usecases"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/architeacher/device-registry/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	infrastructureDep struct {
		tracerProvider otelTrace.TracerProvider
		tracerShutdown func(ctx context.Context) error
		metricsClient  metrics.Client
		logger         logger.Logger
	}

	repositories struct {
		capabilityRepo ports.CapabilityRepository

		// set when the bolt backend is active, so Close can release the
		// database file
		boltRepo *repos.BoltCapabilityRepository
	}

	externalStores struct {
		sessionStore ports.SessionStore
		userStore    ports.UserStore
	}

	dependencies struct {
		config   *config.ServiceConfig
		infra    infrastructureDep
		repos    repositories
		external externalStores

		notifier         *notify.Hub
		capabilityCache  *services.CapabilityCache
		accessController *services.AccessController
		deviceRegistry   *services.DeviceRegistry

		app *usecases.Application
	}

	DependencyOption func(*dependencies) error
)

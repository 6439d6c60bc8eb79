package usecases

import (
	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/internal/usecases/commands"
	"github.com/architeacher/device-registry/internal/usecases/queries"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/architeacher/device-registry/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		SaveCapabilities    commands.SaveCapabilitiesCommandHandler
		UpdateDeviceOptions commands.UpdateDeviceOptionsCommandHandler
	}

	Queries struct {
		GetDevice        queries.GetDeviceQueryHandler
		ListDevices      queries.ListDevicesQueryHandler
		GetCapabilities  queries.GetCapabilitiesQueryHandler
		GetDeviceOptions queries.GetDeviceOptionsQueryHandler
		CanAccessDevice  queries.CanAccessDeviceQueryHandler
	}

	Application struct {
		Commands Commands
		Queries  Queries
	}
)

func NewApplication(
	registry ports.DeviceRegistry,
	capabilities ports.CapabilityResolver,
	access ports.DeviceAccessChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *Application {
	return &Application{
		Commands: Commands{
			SaveCapabilities:    commands.NewSaveCapabilitiesCommandHandler(capabilities, log, metricsClient, tracerProvider),
			UpdateDeviceOptions: commands.NewUpdateDeviceOptionsCommandHandler(registry, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			GetDevice:        queries.NewGetDeviceQueryHandler(registry, log, metricsClient, tracerProvider),
			ListDevices:      queries.NewListDevicesQueryHandler(registry, log, metricsClient, tracerProvider),
			GetCapabilities:  queries.NewGetCapabilitiesQueryHandler(capabilities, log, metricsClient, tracerProvider),
			GetDeviceOptions: queries.NewGetDeviceOptionsQueryHandler(registry, log, metricsClient, tracerProvider),
			CanAccessDevice:  queries.NewCanAccessDeviceQueryHandler(access, log, metricsClient, tracerProvider),
		},
	}
}

package queries

import (
	"context"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/pkg/decorator"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/architeacher/device-registry/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	GetDeviceOptionsQuery struct {
		DeviceID model.DeviceID
	}

	GetDeviceOptionsQueryHandler = decorator.QueryHandler[GetDeviceOptionsQuery, model.DeviceOptions]

	getDeviceOptionsQueryHandler struct {
		registry ports.DeviceRegistry
	}
)

func NewGetDeviceOptionsQueryHandler(
	registry ports.DeviceRegistry,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetDeviceOptionsQueryHandler {
	return decorator.ApplyQueryDecorators[GetDeviceOptionsQuery, model.DeviceOptions](
		getDeviceOptionsQueryHandler{registry: registry},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getDeviceOptionsQueryHandler) Execute(ctx context.Context, query GetDeviceOptionsQuery) (model.DeviceOptions, error) {
	return h.registry.DeviceOptions(ctx, query.DeviceID)
}

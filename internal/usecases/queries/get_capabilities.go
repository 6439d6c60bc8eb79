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
	GetCapabilitiesQuery struct {
		DeviceID model.DeviceID
	}

	GetCapabilitiesQueryHandler = decorator.QueryHandler[GetCapabilitiesQuery, model.ClientCapabilities]

	getCapabilitiesQueryHandler struct {
		capabilities ports.CapabilityResolver
	}
)

func NewGetCapabilitiesQueryHandler(
	capabilities ports.CapabilityResolver,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetCapabilitiesQueryHandler {
	return decorator.ApplyQueryDecorators[GetCapabilitiesQuery, model.ClientCapabilities](
		getCapabilitiesQueryHandler{capabilities: capabilities},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getCapabilitiesQueryHandler) Execute(ctx context.Context, query GetCapabilitiesQuery) (model.ClientCapabilities, error) {
	return h.capabilities.Capabilities(ctx, query.DeviceID), nil
}

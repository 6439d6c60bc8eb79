package commands

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
	SaveCapabilitiesCommand struct {
		DeviceID     model.DeviceID
		Capabilities model.ClientCapabilities
	}

	SaveCapabilitiesCommandHandler = decorator.CommandHandler[SaveCapabilitiesCommand, struct{}]

	saveCapabilitiesCommandHandler struct {
		capabilities ports.CapabilityResolver
	}
)

func NewSaveCapabilitiesCommandHandler(
	capabilities ports.CapabilityResolver,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) SaveCapabilitiesCommandHandler {
	return decorator.ApplyCommandDecorators[SaveCapabilitiesCommand, struct{}](
		saveCapabilitiesCommandHandler{capabilities: capabilities},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h saveCapabilitiesCommandHandler) Handle(ctx context.Context, cmd SaveCapabilitiesCommand) (struct{}, error) {
	if err := h.capabilities.SaveCapabilities(ctx, cmd.DeviceID, cmd.Capabilities); err != nil {
		return struct{}{}, err
	}

	return struct{}{}, nil
}

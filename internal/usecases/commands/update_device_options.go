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
	UpdateDeviceOptionsCommand struct {
		DeviceID model.DeviceID
		Options  model.DeviceOptions
	}

	UpdateDeviceOptionsCommandHandler = decorator.CommandHandler[UpdateDeviceOptionsCommand, struct{}]

	updateDeviceOptionsCommandHandler struct {
		registry ports.DeviceRegistry
	}
)

func NewUpdateDeviceOptionsCommandHandler(
	registry ports.DeviceRegistry,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) UpdateDeviceOptionsCommandHandler {
	return decorator.ApplyCommandDecorators[UpdateDeviceOptionsCommand, struct{}](
		updateDeviceOptionsCommandHandler{registry: registry},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h updateDeviceOptionsCommandHandler) Handle(ctx context.Context, cmd UpdateDeviceOptionsCommand) (struct{}, error) {
	if err := h.registry.UpdateDeviceOptions(ctx, cmd.DeviceID, cmd.Options); err != nil {
		return struct{}{}, err
	}

	return struct{}{}, nil
}

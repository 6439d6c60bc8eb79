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
	CanAccessDeviceQuery struct {
		User     *model.User
		DeviceID model.DeviceID
	}

	CanAccessDeviceQueryHandler = decorator.QueryHandler[CanAccessDeviceQuery, bool]

	canAccessDeviceQueryHandler struct {
		access ports.DeviceAccessChecker
	}
)

func NewCanAccessDeviceQueryHandler(
	access ports.DeviceAccessChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CanAccessDeviceQueryHandler {
	return decorator.ApplyQueryDecorators[CanAccessDeviceQuery, bool](
		canAccessDeviceQueryHandler{access: access},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h canAccessDeviceQueryHandler) Execute(ctx context.Context, query CanAccessDeviceQuery) (bool, error) {
	return h.access.CanAccessDevice(ctx, query.User, query.DeviceID)
}

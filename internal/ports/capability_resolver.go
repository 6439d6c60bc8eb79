package ports

import (
	"context"

	"github.com/architeacher/device-registry/internal/domain/model"
)

// CapabilityResolver serves capability lookups through the in-memory cache.
// Lookups always resolve to a record: absence and persistence read failures
// both yield the default record.
type CapabilityResolver interface {
	Capabilities(ctx context.Context, id model.DeviceID) model.ClientCapabilities

	CapabilitySaver
}

package ports

import (
	"context"

	"github.com/architeacher/device-registry/internal/domain/model"
)

type (
	CapabilitySaver interface {
		// SaveCapabilities durably replaces the capability record for a
		// device. I/O failures are surfaced to the caller.
		SaveCapabilities(ctx context.Context, id model.DeviceID, capabilities model.ClientCapabilities) error
	}

	CapabilityFetcher interface {
		// FetchCapabilities loads the capability record for a device.
		// Missing or unreadable records resolve to the default record; read
		// failures are absorbed by the adapter, never surfaced.
		FetchCapabilities(ctx context.Context, id model.DeviceID) (model.ClientCapabilities, error)
	}

	// CapabilityRepository defines the interface for capability persistence.
	CapabilityRepository interface {
		CapabilitySaver
		CapabilityFetcher
	}
)

package ports

import (
	"context"

	"github.com/architeacher/device-registry/internal/domain/model"
)

type (
	// SessionQuery narrows a session lookup. The store must tolerate being
	// queried by device ID alone or by user association alone.
	SessionQuery struct {
		DeviceID model.DeviceID
		HasUser  *bool
	}

	// SessionStore is the external authentication/session store. It owns
	// session records and device options; errors it returns are propagated
	// to callers as-is.
	SessionStore interface {
		QuerySessions(ctx context.Context, query SessionQuery) ([]model.SessionRecord, error)

		DeviceOptions(ctx context.Context, id model.DeviceID) (model.DeviceOptions, error)

		SetDeviceOptions(ctx context.Context, id model.DeviceID, options model.DeviceOptions) error
	}
)

package ports

import (
	"context"

	"github.com/architeacher/device-registry/internal/domain/model"
)

type (
	// DeviceRegistry defines the device directory and options operations.
	DeviceRegistry interface {
		// GetDevice returns the device view for the given ID, or
		// model.ErrDeviceNotFound if no session record exists for it.
		GetDevice(ctx context.Context, id model.DeviceID) (*model.DeviceInfo, error)

		// ListDevices enumerates sessioned devices matching the query, in
		// the session store's natural order.
		ListDevices(ctx context.Context, query model.DeviceQuery) (*model.DeviceInfoList, error)

		// DeviceOptions reads the user-configurable overrides for a device.
		DeviceOptions(ctx context.Context, id model.DeviceID) (model.DeviceOptions, error)

		// UpdateDeviceOptions replaces the overrides for a device and
		// announces the change to the registered notifier.
		UpdateDeviceOptions(ctx context.Context, id model.DeviceID, options model.DeviceOptions) error
	}

	// DeviceAccessChecker decides whether a user may use a device.
	DeviceAccessChecker interface {
		CanAccessDevice(ctx context.Context, user *model.User, id model.DeviceID) (bool, error)
	}
)

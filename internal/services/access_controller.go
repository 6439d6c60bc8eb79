package services

import (
	"context"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/internal/ports"
)

// AccessController decides whether a user may use a device.
type AccessController struct {
	capabilities ports.CapabilityResolver
}

func NewAccessController(capabilities ports.CapabilityResolver) *AccessController {
	return &AccessController{capabilities: capabilities}
}

// CanAccessDevice evaluates, in order: argument validity, blanket
// permissions, then the allow-list against the device's capability flags.
//
// A device outside the user's allow-list is denied only when it supports a
// persistent identifier; such devices require explicit opt-in. Devices
// without that capability fall through to a grant even when unlisted, which
// keeps clients that cannot identify themselves persistently working.
func (a *AccessController) CanAccessDevice(ctx context.Context, user *model.User, id model.DeviceID) (bool, error) {
	if user == nil {
		return false, model.ErrInvalidUser
	}

	if id.IsZero() {
		return false, model.ErrInvalidDeviceID
	}

	if user.Policy.EnableAllDevices || user.Policy.IsAdministrator {
		return true, nil
	}

	if !user.HasDeviceEnabled(id) {
		capabilities := a.capabilities.Capabilities(ctx, id)

		return !capabilities.SupportsPersistentIdentifier, nil
	}

	return true, nil
}

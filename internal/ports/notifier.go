package ports

import (
	"context"

	"github.com/architeacher/device-registry/internal/domain/model"
)

// OptionsNotifier receives device-option updates after the session store
// write succeeded. Delivery is fire-and-forget: no acknowledgment, no
// ordering or exactly-once guarantee.
type OptionsNotifier interface {
	NotifyOptionsUpdated(ctx context.Context, id model.DeviceID, options model.DeviceOptions)
}

package services

import (
	"context"
	"fmt"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/pkg/logger"
)

// DeviceRegistry joins session records with capability data to produce
// device views, and passes device options through to the session store.
type DeviceRegistry struct {
	sessions     ports.SessionStore
	users        ports.UserStore
	capabilities ports.CapabilityResolver
	access       ports.DeviceAccessChecker
	notifier     ports.OptionsNotifier
	logger       logger.Logger
}

func NewDeviceRegistry(
	sessions ports.SessionStore,
	users ports.UserStore,
	capabilities ports.CapabilityResolver,
	access ports.DeviceAccessChecker,
	notifier ports.OptionsNotifier,
	log logger.Logger,
) *DeviceRegistry {
	return &DeviceRegistry{
		sessions:     sessions,
		users:        users,
		capabilities: capabilities,
		access:       access,
		notifier:     notifier,
		logger:       log.WithComponent("device-registry"),
	}
}

// GetDevice returns the view for a single device, built from its most recent
// session record. Session store errors propagate as-is.
func (r *DeviceRegistry) GetDevice(ctx context.Context, id model.DeviceID) (*model.DeviceInfo, error) {
	if id.IsZero() {
		return nil, model.ErrInvalidDeviceID
	}

	sessions, err := r.sessions.QuerySessions(ctx, ports.SessionQuery{DeviceID: id})
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}

	if len(sessions) == 0 {
		return nil, model.ErrDeviceNotFound
	}

	info := r.toDeviceInfo(ctx, sessions[0])

	return &info, nil
}

// ListDevices enumerates all sessioned devices that have an associated user,
// applying the sync-capability filter and then the per-user access predicate.
// Result order follows the session store's natural order.
func (r *DeviceRegistry) ListDevices(ctx context.Context, query model.DeviceQuery) (*model.DeviceInfoList, error) {
	hasUser := true

	sessions, err := r.sessions.QuerySessions(ctx, ports.SessionQuery{HasUser: &hasUser})
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}

	var user *model.User
	if query.UserID != "" {
		user, err = r.users.FetchUserByID(ctx, query.UserID)
		if err != nil {
			return nil, fmt.Errorf("fetching user %s: %w", query.UserID, err)
		}
	}

	items := make([]model.DeviceInfo, 0, len(sessions))

	for _, session := range sessions {
		if query.SupportsSync != nil {
			capabilities := r.capabilities.Capabilities(ctx, session.DeviceID)
			if capabilities.SupportsSync != *query.SupportsSync {
				continue
			}
		}

		if user != nil {
			allowed, err := r.access.CanAccessDevice(ctx, user, session.DeviceID)
			if err != nil {
				return nil, fmt.Errorf("checking device access: %w", err)
			}

			if !allowed {
				continue
			}
		}

		items = append(items, r.toDeviceInfo(ctx, session))
	}

	return &model.DeviceInfoList{
		Items:      items,
		TotalCount: len(items),
	}, nil
}

// DeviceOptions delegates to the session store, which owns the record.
func (r *DeviceRegistry) DeviceOptions(ctx context.Context, id model.DeviceID) (model.DeviceOptions, error) {
	return r.sessions.DeviceOptions(ctx, id)
}

// UpdateDeviceOptions writes the options through the session store and, once
// the write succeeded, announces the change to the notifier.
func (r *DeviceRegistry) UpdateDeviceOptions(ctx context.Context, id model.DeviceID, options model.DeviceOptions) error {
	if err := r.sessions.SetDeviceOptions(ctx, id, options); err != nil {
		return fmt.Errorf("saving device options: %w", err)
	}

	r.notifier.NotifyOptionsUpdated(ctx, id, options)

	return nil
}

func (r *DeviceRegistry) toDeviceInfo(ctx context.Context, session model.SessionRecord) model.DeviceInfo {
	capabilities := r.capabilities.Capabilities(ctx, session.DeviceID)

	return model.DeviceInfo{
		ID:               session.DeviceID,
		AppName:          session.AppName,
		AppVersion:       session.AppVersion,
		LastUserID:       session.LastUserID,
		LastUserName:     session.LastUserName,
		DateLastActivity: session.DateLastActivity,
		IconURL:          capabilities.IconURL,
	}
}

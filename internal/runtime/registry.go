package runtime

import (
	"context"
	"errors"
	"fmt"

	"github.com/architeacher/device-registry/internal/adapters/notify"
	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/internal/usecases"
)

// Registry is the wired device-registry core: capability persistence and
// cache, device directory, access control and options pass-through, exposed
// through the command/query application. The session and user stores are
// external collaborators and must be supplied by the embedding process.
type Registry struct {
	deps *dependencies
}

func New(ctx context.Context, sessions ports.SessionStore, users ports.UserStore, opts ...DependencyOption) (*Registry, error) {
	if sessions == nil {
		return nil, errors.New("session store is required")
	}

	if users == nil {
		return nil, errors.New("user store is required")
	}

	deps := &dependencies{
		external: externalStores{
			sessionStore: sessions,
			userStore:    users,
		},
	}

	// Caller options run first so defaults can fill in whatever was not
	// overridden.
	allOpts := append(append([]DependencyOption{}, opts...), defaultOptions(ctx)...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return &Registry{deps: deps}, nil
}

// Application exposes the command and query handlers.
func (r *Registry) Application() *usecases.Application {
	return r.deps.app
}

// Notifications exposes the options-update hub for subscribers.
func (r *Registry) Notifications() *notify.Hub {
	return r.deps.notifier
}

// Close releases the storage backend and flushes telemetry.
func (r *Registry) Close(ctx context.Context) error {
	var errs []error

	if r.deps.repos.boltRepo != nil {
		if err := r.deps.repos.boltRepo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing bolt repository: %w", err))
		}
	}

	if r.deps.infra.metricsClient != nil {
		if err := r.deps.infra.metricsClient.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down metrics: %w", err))
		}
	}

	if r.deps.infra.tracerShutdown != nil {
		if err := r.deps.infra.tracerShutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down tracer: %w", err))
		}
	}

	return errors.Join(errs...)
}

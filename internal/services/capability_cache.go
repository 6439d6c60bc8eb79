package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/pkg/logger"
)

// CapabilityCache is a read-through cache in front of a capability
// repository. Cache hits are lock-free; misses and writes serialize on a
// single process-wide mutex. Capability writes happen on device
// registration and update events, not per request, so coarse locking is
// cheaper than per-device bookkeeping.
type CapabilityCache struct {
	repo   ports.CapabilityRepository
	logger logger.Logger

	// mu guards the read-or-populate-or-write critical section across the
	// store and memory pair.
	mu     sync.Mutex
	memory sync.Map
}

func NewCapabilityCache(repo ports.CapabilityRepository, log logger.Logger) *CapabilityCache {
	return &CapabilityCache{
		repo:   repo,
		logger: log.WithComponent("capability-cache"),
	}
}

// Capabilities resolves the capability record for a device. The result is
// never "not found": devices that never saved capabilities, and records that
// failed to load, resolve to the default record.
func (c *CapabilityCache) Capabilities(ctx context.Context, id model.DeviceID) model.ClientCapabilities {
	if cached, ok := c.memory.Load(id); ok {
		return cached.(model.ClientCapabilities)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have populated the entry while this one waited on
	// the lock.
	if cached, ok := c.memory.Load(id); ok {
		return cached.(model.ClientCapabilities)
	}

	capabilities, err := c.repo.FetchCapabilities(ctx, id)
	if err != nil {
		c.logger.Debug().
			Str("device_id", id.String()).
			Err(err).
			Msg("capability fetch failed, resolving to defaults")

		capabilities = model.DefaultClientCapabilities()
	}

	c.memory.Store(id, capabilities)

	return capabilities
}

// SaveCapabilities replaces the record for a device, store first and memory
// second inside the same critical section. A failed store write leaves the
// cached value untouched, so readers never observe a value that was not
// durably persisted.
func (c *CapabilityCache) SaveCapabilities(ctx context.Context, id model.DeviceID, capabilities model.ClientCapabilities) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.repo.SaveCapabilities(ctx, id, capabilities); err != nil {
		return fmt.Errorf("persisting capabilities: %w", err)
	}

	c.memory.Store(id, capabilities)

	return nil
}

// Package notify provides an in-process fan-out sink for device-option
// update events.
package notify

import (
	"context"
	"sync"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/google/uuid"
)

// Subscriber handles a single options-update event. Handlers run on their
// own goroutine and must not assume delivery order.
type Subscriber func(ctx context.Context, id model.DeviceID, options model.DeviceOptions)

// Hub fans options-update events out to registered subscribers.
// Delivery is fire-and-forget: a slow or failing subscriber never blocks the
// caller, and no ordering or exactly-once guarantee is made.
type Hub struct {
	logger logger.Logger

	mu          sync.RWMutex
	subscribers map[uuid.UUID]Subscriber
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		logger:      log.WithComponent("options-notify-hub"),
		subscribers: make(map[uuid.UUID]Subscriber),
	}
}

// Subscribe registers a subscriber and returns its subscription ID.
func (h *Hub) Subscribe(fn Subscriber) uuid.UUID {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.New()
	h.subscribers[id] = fn

	return id
}

// Unsubscribe removes a subscription. Unknown IDs are ignored.
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subscribers, id)
}

func (h *Hub) NotifyOptionsUpdated(ctx context.Context, id model.DeviceID, options model.DeviceOptions) {
	h.mu.RLock()
	subscribers := make([]Subscriber, 0, len(h.subscribers))
	for _, fn := range h.subscribers {
		subscribers = append(subscribers, fn)
	}
	h.mu.RUnlock()

	h.logger.Debug().
		Str("device_id", id.String()).
		Int("subscribers", len(subscribers)).
		Msg("publishing options update")

	for _, fn := range subscribers {
		go fn(ctx, id, options)
	}
}

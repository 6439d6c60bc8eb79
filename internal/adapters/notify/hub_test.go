package notify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/architeacher/device-registry/internal/adapters/notify"
	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestHub_NotifyReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	hub := notify.NewHub(logger.NewTestLogger())

	const subscriberCount = 3

	var wg sync.WaitGroup
	wg.Add(subscriberCount)

	var mu sync.Mutex
	received := make([]model.DeviceOptions, 0, subscriberCount)

	for range subscriberCount {
		hub.Subscribe(func(_ context.Context, _ model.DeviceID, options model.DeviceOptions) {
			mu.Lock()
			received = append(received, options)
			mu.Unlock()

			wg.Done()
		})
	}

	hub.NotifyOptionsUpdated(context.Background(), "dev1", model.DeviceOptions{CustomName: "Bedroom"})

	wg.Wait()

	require.Len(t, received, subscriberCount)
	for _, options := range received {
		require.Equal(t, "Bedroom", options.CustomName)
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	t.Parallel()

	hub := notify.NewHub(logger.NewTestLogger())

	delivered := make(chan model.DeviceID, 2)

	id := hub.Subscribe(func(_ context.Context, deviceID model.DeviceID, _ model.DeviceOptions) {
		delivered <- deviceID
	})

	hub.NotifyOptionsUpdated(context.Background(), "dev1", model.DeviceOptions{})
	require.Equal(t, model.DeviceID("dev1"), <-delivered)

	hub.Unsubscribe(id)

	hub.NotifyOptionsUpdated(context.Background(), "dev2", model.DeviceOptions{})

	select {
	case deviceID := <-delivered:
		t.Fatalf("unexpected delivery after unsubscribe: %s", deviceID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_NotifyWithoutSubscribers(t *testing.T) {
	t.Parallel()

	hub := notify.NewHub(logger.NewTestLogger())

	// Must not panic or block.
	hub.NotifyOptionsUpdated(context.Background(), "dev1", model.DeviceOptions{})
}

package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/internal/services"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/stretchr/testify/require"
)

type mockSessionStore struct {
	mu       sync.Mutex
	sessions []model.SessionRecord
	options  map[model.DeviceID]model.DeviceOptions

	querySessionsFn func(ctx context.Context, query ports.SessionQuery) ([]model.SessionRecord, error)
	setOptionsFn    func(ctx context.Context, id model.DeviceID, options model.DeviceOptions) error
}

func newMockSessionStore(sessions ...model.SessionRecord) *mockSessionStore {
	return &mockSessionStore{
		sessions: sessions,
		options:  make(map[model.DeviceID]model.DeviceOptions),
	}
}

func (m *mockSessionStore) QuerySessions(ctx context.Context, query ports.SessionQuery) ([]model.SessionRecord, error) {
	if m.querySessionsFn != nil {
		return m.querySessionsFn(ctx, query)
	}

	matched := make([]model.SessionRecord, 0, len(m.sessions))

	for _, session := range m.sessions {
		if !query.DeviceID.IsZero() && session.DeviceID != query.DeviceID {
			continue
		}

		if query.HasUser != nil && *query.HasUser != (session.LastUserID != "") {
			continue
		}

		matched = append(matched, session)
	}

	return matched, nil
}

func (m *mockSessionStore) DeviceOptions(_ context.Context, id model.DeviceID) (model.DeviceOptions, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.options[id], nil
}

func (m *mockSessionStore) SetDeviceOptions(ctx context.Context, id model.DeviceID, options model.DeviceOptions) error {
	if m.setOptionsFn != nil {
		return m.setOptionsFn(ctx, id, options)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.options[id] = options

	return nil
}

type mockUserStore struct {
	users map[string]*model.User
}

func (m *mockUserStore) FetchUserByID(_ context.Context, id string) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}

	return user, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []model.DeviceID
}

func (n *recordingNotifier) NotifyOptionsUpdated(_ context.Context, id model.DeviceID, _ model.DeviceOptions) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.events = append(n.events, id)
}

func (n *recordingNotifier) recorded() []model.DeviceID {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]model.DeviceID(nil), n.events...)
}

type registryFixture struct {
	registry *services.DeviceRegistry
	sessions *mockSessionStore
	notifier *recordingNotifier
	cache    *services.CapabilityCache
}

func newRegistryFixture(
	sessions *mockSessionStore,
	users map[string]*model.User,
	records map[model.DeviceID]model.ClientCapabilities,
) registryFixture {
	repo := newMockCapabilityRepository()
	for id, capabilities := range records {
		repo.records[id] = capabilities
	}

	log := logger.NewTestLogger()
	cache := services.NewCapabilityCache(repo, log)
	notifier := &recordingNotifier{}

	registry := services.NewDeviceRegistry(
		sessions,
		&mockUserStore{users: users},
		cache,
		services.NewAccessController(cache),
		notifier,
		log,
	)

	return registryFixture{
		registry: registry,
		sessions: sessions,
		notifier: notifier,
		cache:    cache,
	}
}

func TestDeviceRegistry_GetDevice(t *testing.T) {
	t.Parallel()

	lastActivity := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	sessions := newMockSessionStore(model.SessionRecord{
		DeviceID:         "dev1",
		AppName:          "TV App",
		AppVersion:       "4.2.0",
		LastUserID:       "u1",
		LastUserName:     "alex",
		DateLastActivity: lastActivity,
	})

	fixture := newRegistryFixture(sessions, nil, map[model.DeviceID]model.ClientCapabilities{
		"dev1": {IconURL: "https://cdn.example.com/icons/tv.png"},
	})

	info, err := fixture.registry.GetDevice(context.Background(), "dev1")

	require.NoError(t, err)
	require.Equal(t, model.DeviceID("dev1"), info.ID)
	require.Equal(t, "TV App", info.AppName)
	require.Equal(t, "4.2.0", info.AppVersion)
	require.Equal(t, "alex", info.LastUserName)
	require.Equal(t, lastActivity, info.DateLastActivity)
	require.Equal(t, "https://cdn.example.com/icons/tv.png", info.IconURL)
}

func TestDeviceRegistry_GetDeviceAbsent(t *testing.T) {
	t.Parallel()

	fixture := newRegistryFixture(newMockSessionStore(), nil, nil)

	_, err := fixture.registry.GetDevice(context.Background(), "unknown")

	require.ErrorIs(t, err, model.ErrDeviceNotFound)
}

func TestDeviceRegistry_GetDeviceEmptyID(t *testing.T) {
	t.Parallel()

	fixture := newRegistryFixture(newMockSessionStore(), nil, nil)

	_, err := fixture.registry.GetDevice(context.Background(), "")

	require.ErrorIs(t, err, model.ErrInvalidDeviceID)
}

func TestDeviceRegistry_GetDeviceTakesFirstSession(t *testing.T) {
	t.Parallel()

	sessions := newMockSessionStore(
		model.SessionRecord{DeviceID: "dev1", AppName: "Newest"},
		model.SessionRecord{DeviceID: "dev1", AppName: "Older"},
	)

	fixture := newRegistryFixture(sessions, nil, nil)

	info, err := fixture.registry.GetDevice(context.Background(), "dev1")

	require.NoError(t, err)
	require.Equal(t, "Newest", info.AppName)
}

func TestDeviceRegistry_ListDevicesSyncFilter(t *testing.T) {
	t.Parallel()

	sessions := newMockSessionStore(
		model.SessionRecord{DeviceID: "dev1", LastUserID: "u1"},
		model.SessionRecord{DeviceID: "dev2", LastUserID: "u1"},
		model.SessionRecord{DeviceID: "dev3"}, // no associated user, excluded up front
	)

	fixture := newRegistryFixture(sessions, nil, map[model.DeviceID]model.ClientCapabilities{
		"dev1": {SupportsSync: true},
		"dev3": {SupportsSync: true},
	})

	supportsSync := true

	list, err := fixture.registry.ListDevices(context.Background(), model.DeviceQuery{SupportsSync: &supportsSync})

	require.NoError(t, err)
	require.Equal(t, 1, list.TotalCount)
	require.Len(t, list.Items, 1)
	require.Equal(t, model.DeviceID("dev1"), list.Items[0].ID)
}

func TestDeviceRegistry_ListDevicesUserFilter(t *testing.T) {
	t.Parallel()

	sessions := newMockSessionStore(
		model.SessionRecord{DeviceID: "dev1", LastUserID: "u2"},
		model.SessionRecord{DeviceID: "dev2", LastUserID: "u2"},
		model.SessionRecord{DeviceID: "dev3", LastUserID: "u2"},
	)

	// dev1 requires opt-in, u1 has dev3 allow-listed only.
	fixture := newRegistryFixture(
		sessions,
		map[string]*model.User{
			"u1": {
				ID:     "u1",
				Policy: model.Policy{EnabledDevices: []string{"DEV3"}},
			},
		},
		map[model.DeviceID]model.ClientCapabilities{
			"dev1": {SupportsPersistentIdentifier: true},
		},
	)

	list, err := fixture.registry.ListDevices(context.Background(), model.DeviceQuery{UserID: "u1"})

	require.NoError(t, err)
	require.Equal(t, 2, list.TotalCount)

	ids := make([]model.DeviceID, 0, len(list.Items))
	for _, item := range list.Items {
		ids = append(ids, item.ID)
	}

	require.Equal(t, []model.DeviceID{"dev2", "dev3"}, ids)
}

func TestDeviceRegistry_ListDevicesUnknownUser(t *testing.T) {
	t.Parallel()

	sessions := newMockSessionStore(model.SessionRecord{DeviceID: "dev1", LastUserID: "u1"})
	fixture := newRegistryFixture(sessions, nil, nil)

	_, err := fixture.registry.ListDevices(context.Background(), model.DeviceQuery{UserID: "missing"})

	require.Error(t, err)
}

func TestDeviceRegistry_UpdateDeviceOptionsNotifies(t *testing.T) {
	t.Parallel()

	sessions := newMockSessionStore()
	fixture := newRegistryFixture(sessions, nil, nil)
	ctx := context.Background()

	options := model.DeviceOptions{CustomName: "Living room TV"}

	require.NoError(t, fixture.registry.UpdateDeviceOptions(ctx, "dev1", options))

	stored, err := fixture.registry.DeviceOptions(ctx, "dev1")
	require.NoError(t, err)
	require.Equal(t, options, stored)

	require.Equal(t, []model.DeviceID{"dev1"}, fixture.notifier.recorded())
}

func TestDeviceRegistry_UpdateDeviceOptionsFailureSkipsNotification(t *testing.T) {
	t.Parallel()

	sessions := newMockSessionStore()
	sessions.setOptionsFn = func(context.Context, model.DeviceID, model.DeviceOptions) error {
		return errors.New("store unavailable")
	}

	fixture := newRegistryFixture(sessions, nil, nil)

	err := fixture.registry.UpdateDeviceOptions(context.Background(), "dev1", model.DeviceOptions{})

	require.Error(t, err)
	require.Empty(t, fixture.notifier.recorded())
}

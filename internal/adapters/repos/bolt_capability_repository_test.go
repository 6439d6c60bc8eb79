package repos_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/architeacher/device-registry/internal/adapters/repos"
	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newBoltRepo(t *testing.T) (*repos.BoltCapabilityRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "devices.db")

	repo, err := repos.NewBoltCapabilityRepository(path, logger.NewTestLogger())
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})

	return repo, path
}

func TestBoltCapabilityRepository_FetchNeverSaved(t *testing.T) {
	t.Parallel()

	repo, _ := newBoltRepo(t)

	capabilities, err := repo.FetchCapabilities(context.Background(), "never-saved")

	require.NoError(t, err)
	require.Equal(t, model.DefaultClientCapabilities(), capabilities)
}

func TestBoltCapabilityRepository_SaveAndFetch(t *testing.T) {
	t.Parallel()

	repo, _ := newBoltRepo(t)
	ctx := context.Background()

	expected := model.ClientCapabilities{
		SupportsSync:                 true,
		SupportsPersistentIdentifier: true,
		IconURL:                      "https://cdn.example.com/icons/tablet.png",
	}

	require.NoError(t, repo.SaveCapabilities(ctx, "dev1", expected))

	capabilities, err := repo.FetchCapabilities(ctx, "dev1")

	require.NoError(t, err)
	require.Equal(t, expected, capabilities)
}

func TestBoltCapabilityRepository_FetchCorruptValue(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "devices.db")

	repo, err := repos.NewBoltCapabilityRepository(path, logger.NewTestLogger())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, repo.SaveCapabilities(ctx, "dev1", model.ClientCapabilities{SupportsSync: true}))
	require.NoError(t, repo.Close())

	// Replace the stored value with unparseable content out of band.
	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("capabilities")).Put([]byte("dev1"), []byte("{not json"))
	}))
	require.NoError(t, db.Close())

	repo, err = repos.NewBoltCapabilityRepository(path, logger.NewTestLogger())
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})

	capabilities, err := repo.FetchCapabilities(ctx, "dev1")

	require.NoError(t, err)
	require.Equal(t, model.DefaultClientCapabilities(), capabilities)
}

package repos

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/pkg/logger"
	bolt "go.etcd.io/bbolt"
)

var bucketCapabilities = []byte("capabilities")

// BoltCapabilityRepository is the embedded-KV variant of the capability
// store: one bucket, device ID as key, JSON record as value. It honors the
// same read contract as the file store, so the cache can sit in front of
// either without knowing which one it got.
type BoltCapabilityRepository struct {
	db     *bolt.DB
	logger logger.Logger
}

// NewBoltCapabilityRepository opens or creates the database file at path.
func NewBoltCapabilityRepository(path string, log logger.Logger) (*BoltCapabilityRepository, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCapabilities)

		return err
	})
	if err != nil {
		db.Close()

		return nil, fmt.Errorf("creating capabilities bucket: %w", err)
	}

	return &BoltCapabilityRepository{
		db:     db,
		logger: log.WithComponent("bolt-capability-repository"),
	}, nil
}

func (r *BoltCapabilityRepository) SaveCapabilities(_ context.Context, id model.DeviceID, capabilities model.ClientCapabilities) error {
	data, err := json.Marshal(capabilities)
	if err != nil {
		return fmt.Errorf("marshalling capabilities: %w", err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketCapabilities)
		if bucket == nil {
			return fmt.Errorf("bucket %q not found", bucketCapabilities)
		}

		return bucket.Put([]byte(id), data)
	})
	if err != nil {
		return fmt.Errorf("writing capabilities: %w", err)
	}

	return nil
}

func (r *BoltCapabilityRepository) FetchCapabilities(_ context.Context, id model.DeviceID) (model.ClientCapabilities, error) {
	var capabilities model.ClientCapabilities

	err := r.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketCapabilities)
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &capabilities); err != nil {
			r.logger.Warn().
				Str("device_id", id.String()).
				Err(err).
				Msg("discarding unreadable capability record")

			capabilities = model.DefaultClientCapabilities()
		}

		return nil
	})
	if err != nil {
		return model.DefaultClientCapabilities(), nil
	}

	return capabilities, nil
}

func (r *BoltCapabilityRepository) Close() error {
	return r.db.Close()
}

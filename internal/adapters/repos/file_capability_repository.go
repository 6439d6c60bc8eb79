package repos

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/pkg/logger"
)

const (
	devicesDirName       = "devices"
	capabilitiesFileName = "capabilities.json"

	deviceDirPerm  = 0o755
	deviceFilePerm = 0o644
)

// FileCapabilityRepository persists one capability record per device as a
// JSON file under <dataPath>/devices/<hash>/capabilities.json. Lookups are
// always by device ID, so no index file or directory enumeration is needed.
type FileCapabilityRepository struct {
	dataPath string
	logger   logger.Logger
}

func NewFileCapabilityRepository(dataPath string, log logger.Logger) *FileCapabilityRepository {
	return &FileCapabilityRepository{
		dataPath: dataPath,
		logger:   log.WithComponent("file-capability-repository"),
	}
}

// SaveCapabilities serializes the record to its derived path. I/O failures
// surface to the caller.
func (r *FileCapabilityRepository) SaveCapabilities(_ context.Context, id model.DeviceID, capabilities model.ClientCapabilities) error {
	path := r.capabilitiesPath(id)

	if err := os.MkdirAll(filepath.Dir(path), deviceDirPerm); err != nil {
		return fmt.Errorf("creating device directory: %w", err)
	}

	data, err := json.MarshalIndent(capabilities, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling capabilities: %w", err)
	}

	if err := os.WriteFile(path, data, deviceFilePerm); err != nil {
		return fmt.Errorf("writing capabilities: %w", err)
	}

	return nil
}

// FetchCapabilities deserializes the record from its derived path. A missing
// file or corrupt content resolves to the default record; persistence
// corruption must never break capability lookups.
func (r *FileCapabilityRepository) FetchCapabilities(_ context.Context, id model.DeviceID) (model.ClientCapabilities, error) {
	data, err := os.ReadFile(r.capabilitiesPath(id))
	if err != nil {
		return model.DefaultClientCapabilities(), nil
	}

	var capabilities model.ClientCapabilities
	if err := json.Unmarshal(data, &capabilities); err != nil {
		r.logger.Warn().
			Str("device_id", id.String()).
			Err(err).
			Msg("discarding unreadable capability record")

		return model.DefaultClientCapabilities(), nil
	}

	return capabilities, nil
}

func (r *FileCapabilityRepository) capabilitiesPath(id model.DeviceID) string {
	return filepath.Join(r.dataPath, devicesDirName, hashDeviceID(id), capabilitiesFileName)
}

// hashDeviceID turns an arbitrary device identifier into a filesystem-safe,
// fixed-length directory name. Collision resistance matters here, strength
// does not.
func hashDeviceID(id model.DeviceID) string {
	sum := sha256.Sum256([]byte(id))

	return hex.EncodeToString(sum[:16])
}

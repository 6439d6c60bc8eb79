package model

// DeviceOptions holds user-configurable overrides for a device. The record
// is owned and persisted by the external session store; this module only
// passes it through and announces updates.
type DeviceOptions struct {
	CustomName string `json:"custom_name,omitempty"`
}

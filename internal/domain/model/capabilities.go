package model

type (
	// ClientCapabilities describes what a device is able to render or sync.
	// Records are replaced wholesale on save, never patched. A device that
	// never reported capabilities resolves to the zero value; callers never
	// observe "not found" for capabilities.
	ClientCapabilities struct {
		SupportsSync                 bool              `json:"supports_sync"`
		SupportsPersistentIdentifier bool              `json:"supports_persistent_identifier"`
		IconURL                      string            `json:"icon_url,omitempty"`
		Features                     map[string]string `json:"features,omitempty"`
	}
)

// DefaultClientCapabilities is the record resolved for devices that never
// saved capabilities, and for records that failed to load.
func DefaultClientCapabilities() ClientCapabilities {
	return ClientCapabilities{}
}

// Feature returns a client-declared feature flag, with ok reporting whether
// the device declared it at all.
func (c ClientCapabilities) Feature(name string) (string, bool) {
	value, ok := c.Features[name]

	return value, ok
}

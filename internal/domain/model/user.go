package model

type (
	// User is the external account entity carrying the permission flags and
	// the explicit device allow-list consulted by access control.
	User struct {
		ID     string
		Name   string
		Policy Policy
	}

	Policy struct {
		IsAdministrator  bool
		EnableAllDevices bool
		EnabledDevices   []string
	}
)

// HasDeviceEnabled reports whether the user's allow-list contains the device.
// Matching is case-insensitive.
func (u *User) HasDeviceEnabled(id DeviceID) bool {
	for _, enabled := range u.Policy.EnabledDevices {
		if id.Equals(enabled) {
			return true
		}
	}

	return false
}

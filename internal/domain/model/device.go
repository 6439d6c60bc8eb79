package model

import (
	"strings"
	"time"
)

type (
	// DeviceID is the opaque, externally assigned identifier of a network
	// client. It is the join key across sessions, capabilities and options.
	DeviceID string

	// SessionRecord is the last-seen metadata the session store keeps per
	// device. It is read-only to this module and is the source of truth for
	// which devices exist.
	SessionRecord struct {
		DeviceID         DeviceID
		AppName          string
		AppVersion       string
		LastUserID       string
		LastUserName     string
		DateLastActivity time.Time
	}

	// DeviceInfo is the ephemeral projection of a session record joined with
	// the device's capability icon. It is constructed on read and never
	// persisted.
	DeviceInfo struct {
		ID               DeviceID
		AppName          string
		AppVersion       string
		LastUserID       string
		LastUserName     string
		DateLastActivity time.Time
		IconURL          string
	}

	// DeviceQuery narrows a device listing. Nil/empty fields are ignored.
	DeviceQuery struct {
		SupportsSync *bool
		UserID       string
	}

	DeviceInfoList struct {
		Items      []DeviceInfo
		TotalCount int
	}
)

func (d DeviceID) String() string {
	return string(d)
}

func (d DeviceID) IsZero() bool {
	return d == ""
}

// Equals compares device identifiers case-insensitively, matching how
// user allow-lists reference devices.
func (d DeviceID) Equals(other string) bool {
	return strings.EqualFold(string(d), other)
}

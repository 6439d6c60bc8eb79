package model

import "errors"

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrInvalidDeviceID = errors.New("device ID must not be empty")
	ErrInvalidUser     = errors.New("user reference must not be nil")
)

package notifications

import "errors"

var (
	// ErrDeviceUnregistered is returned when an apns token is unregistered.
	ErrDeviceUnregistered = errors.New("apns device unregistered")

	// ErrRetryRequired is returned when apns asks us to retry later.
	ErrRetryRequired = errors.New("retry required")
)

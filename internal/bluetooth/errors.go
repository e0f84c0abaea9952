package bluetooth

import "errors"

var (
	// ErrUnavailable means beacon monitoring is not possible on this host.
	ErrUnavailable = errors.New("bluetooth monitoring unavailable")
	// ErrAdapterOff means the adapter exists but is powered down.
	ErrAdapterOff = errors.New("bluetooth adapter powered off")
)

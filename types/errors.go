package types

import "errors"

var (
	// ErrBackendUnavailable is returned when a store cannot reach its
	// backing service.
	ErrBackendUnavailable = errors.New("cache backend unavailable")

	// ErrTimeout is returned when a store operation exceeded its allotted
	// wait.
	ErrTimeout = errors.New("cache operation timed out")

	// ErrUnsupportedStore is returned by the store factory for unknown
	// store types.
	ErrUnsupportedStore = errors.New("unsupported store type")
)

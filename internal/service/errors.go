package service

import "errors"

var (
	// ErrDeviceOffline is returned by operations that require reachability
	// when the monitor reports the device offline.
	ErrDeviceOffline = errors.New("device is offline")

	// ErrStorageFailure wraps local database errors on the durable write
	// path. An acknowledged write never races this error: if the queue
	// insert fails, the caller sees ErrStorageFailure and no operation id.
	ErrStorageFailure = errors.New("local storage failure")

	// ErrInvalidOperation rejects malformed operation descriptors before
	// anything touches the queue.
	ErrInvalidOperation = errors.New("invalid operation descriptor")

	// ErrUnknownCollection rejects writes to collections the record service
	// does not manage.
	ErrUnknownCollection = errors.New("unknown collection")
)

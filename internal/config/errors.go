package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote store settings
	// (for example, missing base URL).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid drain-pass settings
	// (for example, a backoff cap below the initial delay).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidNetworkConfigs indicates invalid network monitor settings
	// (for example, a probe timeout exceeding the probe interval).
	ErrInvalidNetworkConfigs = errors.New("invalid network configuration")
)

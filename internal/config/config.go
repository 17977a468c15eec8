// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-health-sync engine. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Remote holds the remote health store endpoint settings used by the
	// HTTP adapter.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration for the local persistence backend
	// (operation queue and record cache).
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds drain-pass settings: retry budget, backoff bounds, and the
	// periodic sync interval.
	Sync Sync `envPrefix:"SYNC_"`

	// Network holds reachability-probe settings for the network monitor.
	Network Network `envPrefix:"NETWORK_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote holds endpoint and timeout settings for the remote health store.
type Remote struct {
	// BaseURL is the root URL of the remote health store API
	// (e.g. "https://api.example.com").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AuthToken is the bearer token attached to every outbound request.
	// Issued by the application shell after sign-in; may be rotated at
	// runtime via the adapter.
	// Env: REMOTE_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// RequestTimeout is the maximum duration of a single remote apply
	// attempt (e.g. "15s"). A timed-out attempt counts as transient.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that backs
// both the operation queue and the record cache.
type DB struct {
	// DSN is the SQLite file path / connection string
	// (e.g. "file:healthsync.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds drain-pass tuning knobs.
type Sync struct {
	// Interval defines how often the background sync worker drains the
	// queue while online (e.g. "5m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// MaxAttempts is the in-pass retry budget for a transiently failing
	// operation before it is returned to pending for a later pass.
	// Env: SYNC_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// BackoffMin is the initial delay of the exponential backoff between
	// in-pass retries (e.g. "500ms").
	// Env: SYNC_BACKOFF_MIN
	BackoffMin time.Duration `env:"BACKOFF_MIN"`

	// BackoffMax caps the exponential backoff delay (e.g. "30s").
	// Env: SYNC_BACKOFF_MAX
	BackoffMax time.Duration `env:"BACKOFF_MAX"`
}

// Network holds reachability-probe settings for the network monitor.
type Network struct {
	// ProbeInterval defines how often the monitor probes the remote store's
	// ping endpoint (e.g. "10s").
	// Env: NETWORK_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeTimeout bounds a single reachability probe (e.g. "3s").
	// Env: NETWORK_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// DebounceWindow is the minimum quiet period before an offline→online
	// transition is published to subscribers. Flicker inside the window
	// collapses to at most one transition.
	// Env: NETWORK_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`
}

// GetStructuredConfig loads, merges, and validates the engine configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

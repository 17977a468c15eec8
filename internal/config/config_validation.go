// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the strict checks live on [ClientConfig],
// which is what the runtime actually consumes.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	// The queue must survive restarts, so an in-memory database is not an
	// acceptable DSN here.
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Sync.BackoffMax < cfg.Sync.BackoffMin {
		return ErrInvalidSyncConfigs
	}

	if cfg.Network.ProbeTimeout > cfg.Network.ProbeInterval {
		return ErrInvalidNetworkConfigs
	}

	return nil
}

// Package config provides configuration loading, merging, and validation
// facilities for the sync engine.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the validated client view consumed
// by cmd/client.
package config

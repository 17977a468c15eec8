package config

import (
	"flag"
	"os"
	"time"
)

func flagArgs() []string {
	if len(os.Args) == 0 {
		return nil
	}
	return os.Args[1:]
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-base-url remote health store root URL
//	-auth-token bearer token for the remote store
//	-d local database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-request-timeout remote apply attempt timeout (e.g., "15s")
//	-sync-interval periodic drain interval (e.g., "5m")
//	-max-attempts in-pass retry budget for transient failures
//	-backoff-min initial retry backoff delay (e.g., "500ms")
//	-backoff-max retry backoff cap (e.g., "30s")
//	-probe-interval network reachability probe interval (e.g., "10s")
//	-probe-timeout single probe timeout (e.g., "3s")
//	-debounce-window quiet period before declaring the device online
func ParseFlags() *StructuredConfig {
	return parseFlagSet(flag.CommandLine, flagArgs())
}

// parseFlagSet registers and parses all flags on fs. Split out from
// ParseFlags so tests can run against a private FlagSet instead of the
// process-global one.
func parseFlagSet(fs *flag.FlagSet, args []string) *StructuredConfig {
	var baseURL string
	var authToken string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var maxAttempts int
	var backoffMin time.Duration
	var backoffMax time.Duration
	var probeInterval time.Duration
	var probeTimeout time.Duration
	var debounceWindow time.Duration

	fs.StringVar(&baseURL, "base-url", "", "Remote health store root URL")
	fs.StringVar(&authToken, "auth-token", "", "Bearer token for the remote store")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic drain interval (e.g., 5m)")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "In-pass retry budget for transient failures")
	fs.DurationVar(&backoffMin, "backoff-min", 0, "Initial retry backoff delay (e.g., 500ms)")
	fs.DurationVar(&backoffMax, "backoff-max", 0, "Retry backoff cap (e.g., 30s)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Reachability probe interval (e.g., 10s)")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "Single probe timeout (e.g., 3s)")
	fs.DurationVar(&debounceWindow, "debounce-window", 0, "Quiet period before declaring online")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Remote: Remote{
			BaseURL:        baseURL,
			AuthToken:      authToken,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			Interval:    syncInterval,
			MaxAttempts: maxAttempts,
			BackoffMin:  backoffMin,
			BackoffMax:  backoffMax,
		},
		Network: Network{
			ProbeInterval:  probeInterval,
			ProbeTimeout:   probeTimeout,
			DebounceWindow: debounceWindow,
		},
		JSONFilePath: jsonConfigPath,
	}
}

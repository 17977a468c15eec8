package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] for fields left unset by every
// configuration source.
const (
	defaultRequestTimeout = 15 * time.Second
	defaultSyncInterval   = 5 * time.Minute
	defaultMaxAttempts    = 3
	defaultBackoffMin     = 500 * time.Millisecond
	defaultBackoffMax     = 30 * time.Second
	defaultProbeInterval  = 10 * time.Second
	defaultProbeTimeout   = 3 * time.Second
	defaultDebounce       = 2 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string.
	Version string
}

// ClientRemote holds network settings used by the remote store adapter.
type ClientRemote struct {
	// BaseURL is the remote health store root URL.
	BaseURL string
	// AuthToken is the initial bearer token for outbound requests.
	AuthToken string
	// RequestTimeout is the default timeout for a single remote apply.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string for the queue/cache database.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains drain-pass settings.
type ClientSync struct {
	// Interval defines how often the background sync worker drains.
	Interval time.Duration
	// MaxAttempts is the in-pass retry budget per operation.
	MaxAttempts int
	// BackoffMin is the initial retry delay.
	BackoffMin time.Duration
	// BackoffMax caps the retry delay.
	BackoffMax time.Duration
}

// ClientNetwork contains network monitor settings.
type ClientNetwork struct {
	// ProbeInterval defines how often reachability is probed.
	ProbeInterval time.Duration
	// ProbeTimeout bounds a single probe.
	ProbeTimeout time.Duration
	// DebounceWindow is the quiet period before declaring online.
	DebounceWindow time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Remote contains remote store endpoint settings.
	Remote ClientRemote
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains drain-pass settings.
	Sync ClientSync
	// Network contains network monitor settings.
	Network ClientNetwork
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the engine runtime, fills defaults for unset tuning knobs, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Remote: ClientRemote{
			BaseURL:        cfg.Remote.BaseURL,
			AuthToken:      cfg.Remote.AuthToken,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			Interval:    cfg.Sync.Interval,
			MaxAttempts: cfg.Sync.MaxAttempts,
			BackoffMin:  cfg.Sync.BackoffMin,
			BackoffMax:  cfg.Sync.BackoffMax,
		},
		Network: ClientNetwork{
			ProbeInterval:  cfg.Network.ProbeInterval,
			ProbeTimeout:   cfg.Network.ProbeTimeout,
			DebounceWindow: cfg.Network.DebounceWindow,
		},
	}
	clientCfg.fillDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) fillDefaults() {
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = defaultSyncInterval
	}
	if cfg.Sync.MaxAttempts <= 0 {
		cfg.Sync.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Sync.BackoffMin <= 0 {
		cfg.Sync.BackoffMin = defaultBackoffMin
	}
	if cfg.Sync.BackoffMax <= 0 {
		cfg.Sync.BackoffMax = defaultBackoffMax
	}
	if cfg.Network.ProbeInterval <= 0 {
		cfg.Network.ProbeInterval = defaultProbeInterval
	}
	if cfg.Network.ProbeTimeout <= 0 {
		cfg.Network.ProbeTimeout = defaultProbeTimeout
	}
	if cfg.Network.DebounceWindow <= 0 {
		cfg.Network.DebounceWindow = defaultDebounce
	}
}

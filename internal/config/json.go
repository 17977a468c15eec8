package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Remote struct {
		BaseURL        string   `json:"base_url"`
		AuthToken      string   `json:"auth_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		Interval    Duration `json:"interval"`
		MaxAttempts int      `json:"max_attempts"`
		BackoffMin  Duration `json:"backoff_min"`
		BackoffMax  Duration `json:"backoff_max"`
	} `json:"sync,omitempty"`

	Network struct {
		ProbeInterval  Duration `json:"probe_interval"`
		ProbeTimeout   Duration `json:"probe_timeout"`
		DebounceWindow Duration `json:"debounce_window"`
	} `json:"network,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			AuthToken:      jsonCfg.Remote.AuthToken,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Sync: Sync{
			Interval:    time.Duration(jsonCfg.Sync.Interval),
			MaxAttempts: jsonCfg.Sync.MaxAttempts,
			BackoffMin:  time.Duration(jsonCfg.Sync.BackoffMin),
			BackoffMax:  time.Duration(jsonCfg.Sync.BackoffMax),
		},
		Network: Network{
			ProbeInterval:  time.Duration(jsonCfg.Network.ProbeInterval),
			ProbeTimeout:   time.Duration(jsonCfg.Network.ProbeTimeout),
			DebounceWindow: time.Duration(jsonCfg.Network.DebounceWindow),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

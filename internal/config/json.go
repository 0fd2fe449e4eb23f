package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are accepted as strings such as "30s" or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		LogFile  string `json:"log_file"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PageSize       int      `json:"page_size"`
		MaxPages       int      `json:"max_pages"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		MinSyncInterval Duration `json:"min_sync_interval"`
		ProbeInterval   Duration `json:"probe_interval"`
		CycleTimeout    Duration `json:"cycle_timeout"`
	} `json:"workers,omitempty"`

	Auth struct {
		Token string `json:"token"`
	} `json:"auth,omitempty"`
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
			LogFile:  jsonCfg.App.LogFile,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			PageSize:       jsonCfg.Adapter.PageSize,
			MaxPages:       jsonCfg.Adapter.MaxPages,
		},
		Workers: Workers{
			SyncInterval:    time.Duration(jsonCfg.Workers.SyncInterval),
			MinSyncInterval: time.Duration(jsonCfg.Workers.MinSyncInterval),
			ProbeInterval:   time.Duration(jsonCfg.Workers.ProbeInterval),
			CycleTimeout:    time.Duration(jsonCfg.Workers.CycleTimeout),
		},
		Auth: Auth{
			Token: jsonCfg.Auth.Token,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated separately from every source and the results are merged.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log destination.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the address of the local status API used by UI shells.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the sync scheduling settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Auth holds the bootstrap credential.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the AUDITSYNC_CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the path of the rotating client log. Empty means stdout.
	// Env: AUDITSYNC_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: AUDITSYNC_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the local store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: AUDITSYNC_STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings of the local status API.
type Server struct {
	// HTTPAddress is the host:port the status API listens on. Empty disables
	// the API.
	// Env: AUDITSYNC_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Adapter holds settings of the remote REST API client.
type Adapter struct {
	// HTTPAddress is the base URL of the remote API (scheme optional).
	// Env: AUDITSYNC_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: AUDITSYNC_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PageSize is sent as page_size on collection reads.
	// Env: AUDITSYNC_ADAPTER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// MaxPages caps how many pages a single collection read follows.
	// Zero means no limit.
	// Env: AUDITSYNC_ADAPTER_MAX_PAGES
	MaxPages int `env:"MAX_PAGES"`
}

// Workers holds sync scheduling settings.
type Workers struct {
	// SyncInterval is the period of the background sync ticker.
	// Env: AUDITSYNC_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// MinSyncInterval is the cooldown between automatic syncs, measured from
	// the last completed cycle.
	// Env: AUDITSYNC_WORKERS_MIN_SYNC_INTERVAL
	MinSyncInterval time.Duration `env:"MIN_SYNC_INTERVAL"`

	// ProbeInterval is how often reachability is probed.
	// Env: AUDITSYNC_WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// CycleTimeout bounds one complete sync cycle.
	// Env: AUDITSYNC_WORKERS_CYCLE_TIMEOUT
	CycleTimeout time.Duration `env:"CYCLE_TIMEOUT"`
}

// Auth holds the bootstrap credential. When set it is stored in the local
// credential store at startup.
type Auth struct {
	// Token is a bearer token issued by the login flow.
	// Env: AUDITSYNC_AUTH_TOKEN
	Token string `env:"TOKEN"`
}

// Defaults returns the built-in configuration, the lowest precedence source.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "audit.db"}},
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
			PageSize:       100,
		},
		Workers: Workers{
			SyncInterval:    5 * time.Minute,
			MinSyncInterval: time.Minute,
			ProbeInterval:   15 * time.Second,
			CycleTimeout:    5 * time.Minute,
		},
		App: App{LogLevel: "info"},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// flags may be nil when the caller has no command line.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

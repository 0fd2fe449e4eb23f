// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/rs/zerolog"
)

// validate checks that the merged configuration can start the client.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 ||
		cfg.Adapter.PageSize <= 0 || cfg.Adapter.MaxPages < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.MinSyncInterval < 0 ||
		cfg.Workers.ProbeInterval <= 0 || cfg.Workers.CycleTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}

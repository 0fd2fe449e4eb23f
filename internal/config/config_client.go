// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// ClientConfig is the validated configuration the sync client starts with.
type ClientConfig struct {
	App     App
	Storage Storage
	Server  Server
	Adapter Adapter
	Workers Workers
	Auth    Auth
}

// GetClientConfig merges every configuration source and validates the
// result. flags is the value returned by [BindFlags] after parsing, or nil.
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
		Auth:    cfg.Auth,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

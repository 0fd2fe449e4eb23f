// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable the client reads, so
// AUDITSYNC_ADAPTER_ADDRESS sets [Adapter.HTTPAddress].
const EnvPrefix = "AUDITSYNC_"

// parseEnv populates cfg from the prefixed environment variables described
// by the `env` and `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/nutri-audit-sync/internal/client"
	"github.com/MKhiriev/nutri-audit-sync/internal/config"
	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
	"github.com/MKhiriev/nutri-audit-sync/models"
)

const appRole = "auditsync"

// cli carries what every subcommand needs: the flag values bound on the
// root command and the build metadata.
type cli struct {
	flags     *config.StructuredConfig
	buildInfo models.AppBuildInfo
	jsonOut   bool
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	c := &cli{buildInfo: buildInfo}

	root := &cobra.Command{
		Use:           appRole,
		Short:         "Offline-first sync client for nutrition audits",
		Long:          "Keeps the local audit database in sync with the remote API.",
		SilenceUsage: true,
	}
	c.flags = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "Output in JSON format")

	root.AddCommand(
		c.newRunCmd(),
		c.newSyncCmd(),
		c.newStatusCmd(),
		c.newTokenCmd(),
		c.newVersionCmd(),
	)
	return root
}

// openApp loads the configuration and wires the client. Without a log file
// the log goes to the command's stderr so stdout stays machine readable.
func (c *cli) openApp(cmd *cobra.Command) (*client.App, error) {
	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger(appRole, cfg.App.LogFile, cfg.App.LogLevel)
	if cfg.App.LogFile == "" {
		log = &logger.Logger{Logger: log.Output(cmd.ErrOrStderr())}
	}

	app, err := client.NewApp(cmd.Context(), cfg, c.buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("init client: %w", err)
	}
	return app, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

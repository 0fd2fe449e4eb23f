package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/nutri-audit-sync/models"
)

func (c *cli) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show pending local changes and the last successful sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			status, err := app.Status(cmd.Context())
			if err != nil {
				return err
			}

			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), status)
			}
			printStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

func printStatus(w io.Writer, status models.SyncStatus) {
	last := "never"
	if status.LastSuccessfulAt != nil {
		last = status.LastSuccessfulAt.Local().Format(time.DateTime)
	}

	fmt.Fprintf(w, "Last successful sync: %s\n", last)
	fmt.Fprintf(w, "Pending changes:      %d\n", status.Pending)
	for _, kind := range models.PushOrder {
		fmt.Fprintf(w, "  %-12s %d\n", kind, status.PendingByKind[kind])
	}
}

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/nutri-audit-sync/models"
)

func (c *cli) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one sync cycle and print its report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			report, syncErr := app.SyncOnce(cmd.Context())

			out := cmd.OutOrStdout()
			if c.jsonOut {
				if err := printJSON(out, report); err != nil {
					return err
				}
			} else {
				printReport(out, report)
			}
			return syncErr
		},
	}
}

func printReport(w io.Writer, report models.SyncReport) {
	if report.Skipped {
		fmt.Fprintln(w, "Another sync cycle is already running.")
		return
	}

	fmt.Fprintf(w, "Cycle:    %s\n", report.CycleID)
	fmt.Fprintf(w, "Success:  %t\n", report.Success)
	fmt.Fprintf(w, "Duration: %s\n", report.FinishedAt.Sub(report.StartedAt))
	if report.Error != "" {
		fmt.Fprintf(w, "Error:    %s\n", report.Error)
	}
	if len(report.Entities) == 0 {
		return
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tPUSHED\tREJECTED\tDEFERRED\tSUPERSEDED\tINSERTED\tUPDATED\tUNCHANGED\tPROTECTED\tORPHANED")
	for _, e := range report.Entities {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			e.Kind, e.Pushed, e.Rejected, e.Deferred, e.Superseded,
			e.Inserted, e.Updated, e.Unchanged, e.Protected, e.Orphaned)
	}
	tw.Flush()

	for _, e := range report.Entities {
		if e.PushError != "" {
			fmt.Fprintf(w, "%s push: %s\n", e.Kind, e.PushError)
		}
		if e.PullError != "" {
			fmt.Fprintf(w, "%s pull: %s\n", e.Kind, e.PullError)
		}
	}
}

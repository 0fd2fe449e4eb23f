package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if c.jsonOut {
				return printJSON(out, c.buildInfo)
			}

			fmt.Fprintf(out, "Build version: %s\n", c.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", c.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", c.buildInfo.BuildCommit())
			return nil
		},
	}
}

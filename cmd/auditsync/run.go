package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func (c *cli) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the background sync client until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer cancel()
			cmd.SetContext(ctx)

			app, err := c.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Run(ctx)
		},
	}
}

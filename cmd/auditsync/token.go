package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newTokenCmd() *cobra.Command {
	token := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored bearer token",
	}

	token.AddCommand(&cobra.Command{
		Use:   "set <token>",
		Short: "Store a bearer token for the remote API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.SetToken(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token stored.")
			return nil
		},
	}, &cobra.Command{
		Use:   "clear",
		Short: "Forget the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.ClearToken(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token cleared.")
			return nil
		},
	})

	return token
}

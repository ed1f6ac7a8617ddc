package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootOptions holds global flags for all commands.
type rootOptions struct {
	ConfigPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "hxtoggle",
		Short:         "hxtoggle - shared on/off state for Templ and HTMX",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $HXTOGGLE_CONFIG or ~/.config/hxtoggle/config.toml)")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "hxtoggle version %s\n", version)
			return err
		},
	}
}

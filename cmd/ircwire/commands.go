package main

import (
	"errors"
	"github.com/spf13/cobra"
	"ircwire/internal/pkg/app"
)

var (
	configPath string

	errCheckFailed = errors.New("some lines failed to parse")
)

// RootCmd returns the root command of the ircwire tool
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ircwire",
		Short:         "Parse, format and inspect IRC protocol lines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.json", "Config file path")
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(parseCmd())
	cmd.AddCommand(serveCmd())
	cmd.AddCommand(tailCmd())
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse every line of the given log files and report failures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(configPath)
			if err != nil {
				return err
			}

			ok, err := a.Check(cmd.Context(), args, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !ok {
				return errCheckFailed
			}
			return nil
		},
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [LINE]",
		Short: "Print a line, or every line of stdin, as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(configPath)
			if err != nil {
				return err
			}

			var line string
			if len(args) == 1 {
				line = args[0]
			}
			return a.Parse(cmd.Context(), line, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(configPath)
			if err != nil {
				return err
			}
			return a.Serve(cmd.Context())
		},
	}
}

func tailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tail",
		Short: "Connect to the configured network and log every message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(configPath)
			if err != nil {
				return err
			}
			return a.Tail(cmd.Context())
		},
	}
}

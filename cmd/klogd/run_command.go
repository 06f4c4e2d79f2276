package main

import (
	"github.com/spf13/cobra"

	"klogd/internal/config"
	"klogd/internal/daemonrun"
)

func newRunCommand(configFlag *string) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the daemon in the foreground",
		Long:  "Run acquires the instance lock and holds it until SIGINT or SIGTERM. A second instance fails immediately instead of waiting.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return err
			}
			return daemonrun.Run(cmd.Context(), cfg, daemonrun.Options{LogLevel: logLevel})
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override configured log level")
	return cmd
}

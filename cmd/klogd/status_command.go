package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"klogd/internal/config"
	"klogd/internal/daemonctl"
)

func newStatusCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a daemon instance is running",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			st, err := daemonctl.Probe(daemonctl.LockFilePath(cfg))
			if err != nil {
				return err
			}

			running := "no"
			pid := "-"
			if st.Running {
				running = "yes"
				if st.PID > 0 {
					pid = strconv.Itoa(st.PID)
				}
			}

			if !isatty.IsTerminal(os.Stdout.Fd()) {
				fmt.Fprintf(cmd.OutOrStdout(), "running=%s pid=%s lock=%s\n", running, pid, st.LockFilePath)
				return nil
			}

			out := renderTable(
				[]string{"Running", "PID", "Lock File"},
				[][]string{{running, pid, st.LockFilePath}},
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

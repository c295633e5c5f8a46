package cmd

import (
	"fmt"
	"strings"

	"github.com/Digital-Shane/anim-tidy/internal/log"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent rewrite sessions",
	Args:  cobra.NoArgs,
	RunE:  runHistoryCommand,
}

func runHistoryCommand(cmd *cobra.Command, args []string) error {
	sessions, err := log.ReadSessions(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions logged")
		return nil
	}

	for _, s := range sessions {
		md := s.Metadata
		mode := ""
		if md.DryRun {
			mode = " (dry run)"
		}
		fmt.Fprintf(out, "%s  %s%s  %d ok, %d failed\n",
			md.Timestamp.Format("2006-01-02 15:04:05"), strings.Join(md.CommandArgs, " "), mode,
			md.SuccessfulOps, md.FailedOps)
		for _, op := range s.Operations {
			status := "ok"
			if !op.Success {
				status = "error: " + op.Error
			}
			fmt.Fprintf(out, "    %-12s %q -> %q  %d tracks  %s\n", op.Type, op.OldPath, op.NewPath, op.Changed, status)
		}
	}
	return nil
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of sessions to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

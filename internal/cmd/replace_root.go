package cmd

import (
	"fmt"

	"github.com/Digital-Shane/anim-tidy/internal/core"
	"github.com/Digital-Shane/anim-tidy/internal/log"
	"github.com/spf13/cobra"
)

var replaceRootCmd = &cobra.Command{
	Use:   "replace-root [OLD NEW]",
	Short: "Swap the leading root of every path",
	Long: `Replace the leading OLD of every path with NEW.

Paths that already contain NEW are skipped, so running the command twice is
harmless. A path that holds OLD somewhere other than at its start is left as
it is. Without arguments the original_root and new_root config values are used.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
		}
		return nil
	},
	RunE: runReplaceRootCommand,
}

func runReplaceRootCommand(cmd *cobra.Command, args []string) error {
	return runMutation(cmd, args, func(ws *workspace) (core.RewriteResult, error) {
		oldRoot, newRoot := ws.cfg.OriginalRoot, ws.cfg.NewRoot
		if len(args) == 2 {
			oldRoot, newRoot = args[0], args[1]
		}
		fmt.Fprintf(cmd.OutOrStdout(), "O: %s N: %s\n", oldRoot, newRoot)

		result, err := ws.engine.ReplacePrefix(oldRoot, newRoot, scope())
		log.LogReplaceRoot(ws.clipNames(), oldRoot, newRoot, result.Changed, err)
		return result, err
	})
}

func init() {
	rootCmd.AddCommand(replaceRootCmd)
}

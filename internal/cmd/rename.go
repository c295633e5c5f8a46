package cmd

import (
	"fmt"

	"github.com/Digital-Shane/anim-tidy/internal/core"
	"github.com/Digital-Shane/anim-tidy/internal/log"
	"github.com/spf13/cobra"
)

var toRoot bool

var renameCmd = &cobra.Command{
	Use:   "rename OLD [NEW]",
	Short: "Rename one path in every clip",
	Long: `Move every track bound to OLD over to NEW.

The rename is refused, without touching any clip, when NEW is already used by
any clip of the batch. Use --root to bind the tracks to the anchor itself.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRenameCommand,
}

func runRenameCommand(cmd *cobra.Command, args []string) error {
	oldPath := args[0]
	var newPath string
	switch {
	case toRoot && len(args) == 2:
		return fmt.Errorf("give either NEW or --root, not both")
	case !toRoot && len(args) == 1:
		return fmt.Errorf("missing NEW path (or --root)")
	case len(args) == 2:
		newPath = args[1]
	}

	return runMutation(cmd, args, func(ws *workspace) (core.RewriteResult, error) {
		result, err := ws.engine.Rename(oldPath, newPath, scope())
		log.LogRename(ws.clipNames(), oldPath, newPath, result.Changed, err)
		return result, err
	})
}

func init() {
	renameCmd.Flags().BoolVar(&toRoot, "root", false, "Rename to the root path")
	rootCmd.AddCommand(renameCmd)
}

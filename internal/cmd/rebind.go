package cmd

import (
	"fmt"

	"github.com/Digital-Shane/anim-tidy/internal/core"
	"github.com/Digital-Shane/anim-tidy/internal/log"
	"github.com/spf13/cobra"
)

var rebindCmd = &cobra.Command{
	Use:   "rebind PATH OBJECT_ID",
	Short: "Point the tracks of a path at another scene object",
	Long: `Rename PATH to the path of OBJECT_ID relative to the anchor.

Needs --scene and --anchor. The object must sit below the anchor, and the
same collision rules as rename apply.`,
	Args: cobra.ExactArgs(2),
	RunE: runRebindCommand,
}

func runRebindCommand(cmd *cobra.Command, args []string) error {
	path, objectID := args[0], args[1]

	return runMutation(cmd, args, func(ws *workspace) (core.RewriteResult, error) {
		if ws.scene == nil {
			return core.RewriteResult{}, fmt.Errorf("rebind needs a --scene")
		}
		obj, ok := ws.scene.Lookup(objectID)
		if !ok {
			return core.RewriteResult{}, fmt.Errorf("object %q not found in scene %q", objectID, ws.scene.Name)
		}

		result, err := ws.engine.Rebind(path, obj, scope())
		log.LogRebind(ws.clipNames(), path, result.Path, objectID, result.Changed, err)
		return result.RewriteResult, err
	})
}

func init() {
	rootCmd.AddCommand(rebindCmd)
}

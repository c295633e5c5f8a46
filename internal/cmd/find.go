package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find PATH",
	Short: "Show which scene object a path refers to",
	Long: `Print the ID, name, and components of the scene object PATH addresses
below --anchor. Needs --scene and --anchor.`,
	Args: cobra.ExactArgs(1),
	RunE: runFindCommand,
}

func runFindCommand(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}
	if ws.engine.Resolver().Anchor() == nil {
		return fmt.Errorf("find needs --scene and --anchor")
	}

	obj, ok := ws.engine.Lookup(args[0])
	if !ok {
		return fmt.Errorf("no object at %q under %q", args[0], ws.engine.Resolver().Anchor().Name())
	}
	components := "-"
	if c := obj.Data().Components; len(c) > 0 {
		components = strings.Join(c, ",")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", obj.ID(), obj.Name(), components)
	return nil
}

func init() {
	rootCmd.AddCommand(findCmd)
}

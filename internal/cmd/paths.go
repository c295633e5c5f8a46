package cmd

import (
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the paths referenced by the clips",
	Long: `List every path of the batch in index order with its track count.

With --scene and --anchor each path is also checked against the hierarchy and
flagged as found or missing.`,
	Args: cobra.NoArgs,
	RunE: runPathsCommand,
}

func runPathsCommand(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}
	return ws.printPaths(cmd)
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

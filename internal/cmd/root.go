/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "anim-tidy",
	Short: "Remap the object paths animation clips refer to",
	Long: `anim-tidy rewrites the hierarchy paths stored in animation clips so they keep
pointing at the right objects after a rig is renamed or reparented.

It can rename a single path, swap the leading root of every path, or move the
tracks of a path onto another object of a scene. Every clip passed with --clip
is edited as part of one batch sharing a single path space.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	clipPaths  []string
	scenePath  string
	anchorID   string
	onlyClip   int
	dryRun     bool
	configPath string
)

func init() {
	// Global flags for all commands
	rootCmd.PersistentFlags().StringArrayVarP(&clipPaths, "clip", "c", nil, "Clip file to edit (repeat for a multi-clip batch)")
	rootCmd.PersistentFlags().StringVar(&scenePath, "scene", "", "Scene file describing the object hierarchy")
	rootCmd.PersistentFlags().StringVar(&anchorID, "anchor", "", "ID of the scene object paths are relative to")
	rootCmd.PersistentFlags().IntVar(&onlyClip, "only-clip", -1, "Rewrite only the clip at this position of the batch")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Show the result without saving clips")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.anim-tidy/config.json)")
}

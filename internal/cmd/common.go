package cmd

import (
	"fmt"
	"os"

	"github.com/Digital-Shane/anim-tidy/internal/clipfile"
	"github.com/Digital-Shane/anim-tidy/internal/config"
	"github.com/Digital-Shane/anim-tidy/internal/core"
	"github.com/Digital-Shane/anim-tidy/internal/display"
	"github.com/Digital-Shane/anim-tidy/internal/hierarchy"
	"github.com/Digital-Shane/anim-tidy/internal/log"
	"github.com/spf13/cobra"
)

// workspace is everything a command needs: the loaded clips, the optional
// scene, and an engine over them.
type workspace struct {
	cfg    *config.Config
	files  []*clipfile.File
	scene  *hierarchy.Scene
	engine *core.Engine
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// loadWorkspace reads config, clips, and scene named by the global flags
func loadWorkspace() (*workspace, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Initialize(cfg.EnableLogging, cfg.LogRetentionDays)

	if len(clipPaths) == 0 {
		return nil, fmt.Errorf("no clips given, pass at least one --clip")
	}

	ws := &workspace{cfg: cfg}
	batch := make(core.Batch, 0, len(clipPaths))
	for _, path := range clipPaths {
		f, err := clipfile.Load(path)
		if err != nil {
			return nil, err
		}
		ws.files = append(ws.files, f)
		batch = append(batch, f)
	}

	resolver := hierarchy.NewResolver(nil)
	if scenePath != "" {
		ws.scene, err = clipfile.LoadScene(scenePath)
		if err != nil {
			return nil, err
		}
	}
	if anchorID != "" {
		if ws.scene == nil {
			return nil, fmt.Errorf("--anchor needs a --scene")
		}
		anchor, ok := ws.scene.Lookup(anchorID)
		if !ok {
			return nil, fmt.Errorf("anchor %q not found in scene %q", anchorID, ws.scene.Name)
		}
		resolver.SetAnchor(anchor)
	}

	opts := []core.Option{core.WithResolver(resolver)}
	if cfg.Transactional {
		opts = append(opts, core.WithTransactional())
	}
	ws.engine = core.NewEngine(batch, opts...)
	return ws, nil
}

func scope() core.Scope {
	if onlyClip < 0 {
		return core.ScopeAll
	}
	return core.OnlyClip(onlyClip)
}

func (ws *workspace) clipNames() []string {
	names := make([]string, len(ws.files))
	for i, f := range ws.files {
		names[i] = f.ClipName()
	}
	return names
}

// save writes back every clip in scope unless this is a dry run
func (ws *workspace) save() error {
	if dryRun {
		return nil
	}
	s := scope()
	for i, f := range ws.files {
		if !s.IsAll() && i != onlyClip {
			continue
		}
		if err := f.Save(); err != nil {
			return err
		}
	}
	return nil
}

// printPaths renders the engine's current index
func (ws *workspace) printPaths(cmd *cobra.Command) error {
	var lookup func(string) bool
	if ws.engine.Resolver().Anchor() != nil {
		lookup = func(path string) bool {
			_, ok := ws.engine.Lookup(path)
			return ok
		}
	}
	table := display.NewTable(ws.cfg.PathColumnWidth, !ws.cfg.DisableColor)
	return table.Render(cmd.OutOrStdout(), display.RowsFrom(ws.engine.Index(), lookup))
}

// runMutation wraps a mutating command in a log session and saves the clips
// when mutate succeeds.
func runMutation(cmd *cobra.Command, args []string, mutate func(ws *workspace) (core.RewriteResult, error)) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}

	if err := log.StartSession(cmd.Name(), args, dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to start log session: %v\n", err)
	}
	defer func() {
		if err := log.EndSession(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to save log session: %v\n", err)
		}
	}()

	result, err := mutate(ws)
	if err != nil {
		return err
	}
	if err := ws.save(); err != nil {
		return fmt.Errorf("failed to save clips: %w", err)
	}

	out := cmd.OutOrStdout()
	verb := "Rewrote"
	if dryRun {
		verb = "Would rewrite"
	}
	fmt.Fprintf(out, "%s %d tracks in %d clips, %d moved\n\n", verb, result.Tracks, result.Clips, result.Changed)
	return ws.printPaths(cmd)
}

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/example/sketchboard/internal/app"
	"github.com/example/sketchboard/internal/config"
	"github.com/example/sketchboard/internal/export"
	"github.com/example/sketchboard/internal/render"
)

// boardFlags are the flags shared by commands that open a board.
type boardFlags struct {
	tool      string
	exportDir string
	width     int
	height    int
	copy      bool
	shadow    bool
}

func (b *boardFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&b.tool, "tool", cfg.DefaultTool, "tool active at start (pointer, pen, rectangle, oval, text)")
	fs.StringVar(&b.exportDir, "export-dir", cfg.ExportDir, "directory exports are written to")
	fs.IntVar(&b.width, "width", cfg.Board.Width, "canvas width in pixels")
	fs.IntVar(&b.height, "height", cfg.Board.Height, "canvas height in pixels")
	fs.BoolVar(&b.copy, "copy", false, "also copy exports to the clipboard")
	fs.BoolVar(&b.shadow, "shadow", false, "frame exports with a drop shadow")
}

// apply returns a copy of cfg with the flag overrides.
func (b *boardFlags) apply(cfg *config.Config) (*config.Config, error) {
	if b.width <= 0 || b.height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", b.width, b.height)
	}
	out := *cfg
	out.DefaultTool = b.tool
	out.ExportDir = b.exportDir
	out.Board.Width = b.width
	out.Board.Height = b.height
	return &out, nil
}

func (b *boardFlags) exportOptions() []export.Option {
	opts := []export.Option{export.WithClipboard(b.copy)}
	if b.shadow {
		opts = append(opts, export.WithShadow(render.DefaultShadowOptions()))
	}
	return opts
}

// drawCmd opens the interactive board window.
type drawCmd struct {
	*root
	fs    *flag.FlagSet
	board boardFlags
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r.subcommand("draw"), fs: fs}
	d.board.register(fs, r.config)
	fs.Usage = usageFunc(d)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: d, msg: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	cfg, err := d.board.apply(d.config)
	if err != nil {
		return err
	}
	s, err := app.NewSession(cfg, d.activeTheme, app.WithExportOptions(d.board.exportOptions()...))
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("close surface: %v", err)
		}
	}()
	app.NewWindow(s, app.WithTitle("Sketchboard")).Run()
	return nil
}

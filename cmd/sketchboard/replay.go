package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/example/sketchboard/internal/app"
	"github.com/example/sketchboard/internal/script"
)

const defaultMaxFrames = 100000

// replayCmd runs a recorded input script without a window and exports the
// final frame.
type replayCmd struct {
	*root
	fs        *flag.FlagSet
	board     boardFlags
	script    string
	output    string
	maxFrames int
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r.subcommand("replay"), fs: fs}
	c.board.register(fs, r.config)
	fs.StringVar(&c.script, "script", "", "JSON input script to replay")
	fs.StringVar(&c.output, "output", "", "PNG file to write (default: a timestamped file in -export-dir)")
	fs.IntVar(&c.maxFrames, "max-frames", defaultMaxFrames, "give up after this many frames")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.script == "" && fs.NArg() > 0 {
		c.script = fs.Arg(0)
	}
	if c.script == "" {
		return nil, &UsageError{of: c, msg: "-script is required"}
	}
	return c, nil
}

func (c *replayCmd) Run() error {
	data, err := os.ReadFile(c.script)
	if err != nil {
		return fmt.Errorf("read script %s: %w", c.script, err)
	}
	runner, err := script.Load(data)
	if err != nil {
		return fmt.Errorf("%s: %w", c.script, err)
	}
	cfg, err := c.board.apply(c.config)
	if err != nil {
		return err
	}
	s, err := app.NewSession(cfg, c.activeTheme, app.WithExportOptions(c.board.exportOptions()...))
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("close surface: %v", err)
		}
	}()

	runner.SetKeyHandler(s.Keys)
	if err := runner.Run(s.Board, c.maxFrames); err != nil {
		return fmt.Errorf("replay %s: %w", c.script, err)
	}

	path := c.output
	if path == "" {
		path, err = s.Exporter.Export()
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
	} else {
		if err := s.Exporter.WriteFile(path); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if c.board.copy {
			if err := s.Exporter.Copy(); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(c.out(), "%s (%d frames)\n", path, runner.Frames())
	return nil
}

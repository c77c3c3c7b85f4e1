package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/example/sketchboard/internal/theme"
)

// Board holds interaction and canvas settings.
type Board struct {
	ClickThreshold  float64
	HoverMargin     float64
	DuplicateOffset float64
	FrameIntervalMS int
	PixelRatio      float64
	Width           int
	Height          int
}

// FrameInterval returns the tick interval.
func (b Board) FrameInterval() time.Duration {
	return time.Duration(b.FrameIntervalMS) * time.Millisecond
}

// Notify holds notification settings.
type Notify struct {
	Export bool
	Copy   bool
}

// Config holds the application configuration.
type Config struct {
	Theme       string
	ExportDir   string
	DefaultTool string
	Board       Board
	Notify      Notify
	Themes      map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // empty lets the environment and the default theme apply
		Board: Board{
			ClickThreshold:  5,
			HoverMargin:     5,
			DuplicateOffset: 20,
			FrameIntervalMS: 16,
			PixelRatio:      1,
			Width:           1024,
			Height:          768,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.ExportDir != "" {
		fmt.Fprintf(&sb, "export_dir = %s\n", c.ExportDir)
	}
	if c.DefaultTool != "" {
		fmt.Fprintf(&sb, "default_tool = %s\n", c.DefaultTool)
	}
	sb.WriteString("\n")

	sb.WriteString("[board]\n")
	fmt.Fprintf(&sb, "click_threshold = %g\n", c.Board.ClickThreshold)
	fmt.Fprintf(&sb, "hover_margin = %g\n", c.Board.HoverMargin)
	fmt.Fprintf(&sb, "duplicate_offset = %g\n", c.Board.DuplicateOffset)
	fmt.Fprintf(&sb, "frame_interval_ms = %d\n", c.Board.FrameIntervalMS)
	fmt.Fprintf(&sb, "pixel_ratio = %g\n", c.Board.PixelRatio)
	fmt.Fprintf(&sb, "width = %d\n", c.Board.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Board.Height)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)

	// sorted for deterministic output
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "\n[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.Hex(f.Color))
		}
	}

	return sb.String()
}

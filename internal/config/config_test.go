package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
export_dir = /tmp/boards
default_tool = pen

[board]
click_threshold = 8
hover_margin = 3.5
frame_interval_ms = 33
pixel_ratio = 2

[notify]
export = true
copy = false

[theme.my_custom_theme]
Background = #111111
Selection: tomato
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Theme != "my_custom_theme" || cfg.ExportDir != "/tmp/boards" || cfg.DefaultTool != "pen" {
		t.Errorf("root = %q %q %q", cfg.Theme, cfg.ExportDir, cfg.DefaultTool)
	}
	b := cfg.Board
	if b.ClickThreshold != 8 || b.HoverMargin != 3.5 || b.PixelRatio != 2 {
		t.Errorf("board = %+v", b)
	}
	if b.FrameInterval() != 33*time.Millisecond {
		t.Errorf("interval = %v", b.FrameInterval())
	}
	if b.DuplicateOffset != 20 || b.Width != 1024 {
		t.Errorf("unset keys should keep defaults: %+v", b)
	}
	if !cfg.Notify.Export || cfg.Notify.Copy {
		t.Errorf("notify = %+v", cfg.Notify)
	}
	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Selection.R != 0xff || th.Selection.G != 0x63 {
		t.Errorf("theme colors %v %v", th.Background, th.Selection)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bad bool", "[notify]\nexport = maybe\n", "line 2 in section [notify]"},
		{"bad number", "[board]\nclick_threshold = far\n", "invalid number"},
		{"negative", "[board]\nhover_margin = -1\n", "at least 0"},
		{"zero size", "[board]\nwidth = 0\n", "at least 1"},
		{"bad color", "[theme.x]\nSelection: #12\n", "invalid color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
export_dir = /home/user/boards

[board]
click_threshold = 4
duplicate_offset = 12.5

[notify]
export = true
copy = true

[theme.custom]
Name = custom
Background = #000000
Selection = #FF00FF80
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}
	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, cfg.String())
	}
	if cfg.Theme != cfg2.Theme || cfg.ExportDir != cfg2.ExportDir {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Board != cfg2.Board {
		t.Errorf("Board mismatch: %+v vs %+v", cfg.Board, cfg2.Board)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	t1, t2 := cfg.Themes["custom"], cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderPrecedence(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	l := NewLoader("v1.0.0", "")
	if p := l.GetConfigPath(); p != "" {
		t.Fatalf("no config expected, got %s", p)
	}
	cfg, err := l.Load()
	if err != nil || cfg.Board.ClickThreshold != 5 {
		t.Fatalf("defaults: %+v %v", cfg, err)
	}

	saved := New()
	saved.DefaultTool = "oval"
	path, err := l.Save(saved)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(xdg, "sketchboard", "config.rc"); path != want {
		t.Errorf("saved to %s, want %s", path, want)
	}
	cfg, err = l.Load()
	if err != nil || cfg.DefaultTool != "oval" {
		t.Fatalf("reload: %+v %v", cfg, err)
	}

	override := filepath.Join(t.TempDir(), "custom.rc")
	if err := os.WriteFile(override, []byte("default_tool = text\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = NewLoader("v1.0.0", override).Load()
	if err != nil || cfg.DefaultTool != "text" {
		t.Fatalf("override: %+v %v", cfg, err)
	}
}

func TestLoadReportsPath(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.rc")
	if err := os.WriteFile(bad, []byte("[board]\nwidth = wide\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewLoader("", bad).Load()
	if err == nil || !strings.Contains(err.Error(), bad) {
		t.Fatalf("err = %v", err)
	}
}

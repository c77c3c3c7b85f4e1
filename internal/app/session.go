// Package app assembles a board with its collaborators and drives it from a
// shiny window.
package app

import (
	"fmt"
	"image"
	"log"

	"github.com/example/sketchboard/internal/board"
	"github.com/example/sketchboard/internal/config"
	"github.com/example/sketchboard/internal/export"
	"github.com/example/sketchboard/internal/keymap"
	"github.com/example/sketchboard/internal/notify"
	"github.com/example/sketchboard/internal/overlay"
	"github.com/example/sketchboard/internal/panel"
	"github.com/example/sketchboard/internal/surface"
	"github.com/example/sketchboard/internal/theme"
)

// Session is one board and everything wired to it.
type Session struct {
	Board    *board.Board
	Panel    *panel.Panel
	Overlay  *overlay.Layer
	Surface  *surface.Surface
	Keys     *keymap.Map
	Exporter *export.Exporter
	Theme    *theme.Theme
	Config   *config.Config

	status func(string)
}

type sessionOptions struct {
	export []export.Option
	status func(string)
}

// Option configures NewSession.
type Option func(*sessionOptions)

// WithExportOptions adds options to the session's exporter.
func WithExportOptions(opts ...export.Option) Option {
	return func(o *sessionOptions) { o.export = append(o.export, opts...) }
}

// WithStatus receives short messages for the status bar.
func WithStatus(fn func(string)) Option {
	return func(o *sessionOptions) { o.status = fn }
}

// NewSession builds a board sized and styled by cfg and th.
func NewSession(cfg *config.Config, th *theme.Theme, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if th == nil {
		th = theme.Default()
	}
	var o sessionOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{Theme: th, Config: cfg, status: o.status}
	s.Surface = surface.New(th.CanvasBackground)
	if err := s.Surface.Setup(cfg.Board.Width, cfg.Board.Height, cfg.Board.PixelRatio); err != nil {
		return nil, err
	}
	s.Panel = panel.New()
	s.Overlay = overlay.New()
	s.Board = board.New(
		board.WithPanel(s.Panel),
		board.WithSurface(s.Surface),
		board.WithOverlay(s.Overlay),
		board.WithClickThreshold(cfg.Board.ClickThreshold),
		board.WithHoverMargin(cfg.Board.HoverMargin),
		board.WithDuplicateOffset(cfg.Board.DuplicateOffset),
		board.WithSelectionColor(th.Selection, th.SelectionHandle),
	)
	s.Panel.OnChange(s.Board.SetStyle)
	if cfg.DefaultTool != "" {
		if err := s.Board.SelectTool(cfg.DefaultTool); err != nil {
			return nil, fmt.Errorf("default tool: %w", err)
		}
	}

	n := notify.New(notify.LoadPreferences())
	n.Enable(notify.EventExport, cfg.Notify.Export)
	n.Enable(notify.EventCopy, cfg.Notify.Copy)
	exportOpts := append([]export.Option{export.WithDir(cfg.ExportDir), export.WithNotifier(n)}, o.export...)
	s.Exporter = export.New(s, exportOpts...)

	s.Keys = keymap.New(s.Board, s.Overlay, keymap.WithExport(s.export), keymap.WithStatus(s.report))
	s.Board.Render()
	return s, nil
}

// Image returns the current frame with the text being edited on top.
func (s *Session) Image() *image.RGBA {
	img := s.Surface.Image()
	if img == nil {
		return nil
	}
	s.Overlay.Draw(img, image.Point{}, s.Theme.OverlayText, s.Theme.OverlayBorder)
	return img
}

// Tick advances the board by one frame.
func (s *Session) Tick() {
	s.Board.Tick()
}

// Status describes the active tool, mode and cursor.
func (s *Session) Status() string {
	return fmt.Sprintf("%s | %s | %s", s.Board.ActiveTool().Name, s.Board.Mode(), s.Board.Cursor())
}

func (s *Session) export() error {
	path, err := s.Exporter.Export()
	if path != "" {
		log.Printf("exported %s", path)
	}
	return err
}

func (s *Session) report(msg string) {
	if s.status != nil {
		s.status(msg)
	}
}

// Close releases the surface.
func (s *Session) Close() error {
	return s.Surface.Close()
}

// Package export writes the board to PNG files and the clipboard.
package export

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/example/sketchboard/internal/clipboard"
	"github.com/example/sketchboard/internal/notify"
	"github.com/example/sketchboard/internal/render"
)

// ErrEmpty is returned when the source has nothing rendered yet.
var ErrEmpty = errors.New("nothing to export")

// Source provides the rendered board.
type Source interface {
	Image() *image.RGBA
}

// Exporter turns the current frame into files and clipboard images.
type Exporter struct {
	src       Source
	dir       string
	shadow    *render.ShadowOptions
	clipboard bool
	notifier  *notify.Notifier
	copyImage func(image.Image) error
	now       func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithDir sets where Export writes files. Empty means the working
// directory.
func WithDir(dir string) Option {
	return func(e *Exporter) { e.dir = dir }
}

// WithShadow frames every export with a drop shadow.
func WithShadow(opts render.ShadowOptions) Option {
	return func(e *Exporter) { e.shadow = &opts }
}

// WithClipboard makes Export also copy the image.
func WithClipboard(on bool) Option {
	return func(e *Exporter) { e.clipboard = on }
}

// WithNotifier reports exports and copies to the desktop.
func WithNotifier(n *notify.Notifier) Option {
	return func(e *Exporter) { e.notifier = n }
}

// New returns an Exporter reading from src.
func New(src Source, opts ...Option) *Exporter {
	e := &Exporter{src: src, copyImage: clipboard.CopyImage, now: time.Now}
	for _, o := range opts {
		o(e)
	}
	return e
}

// FileName is the default name of an export taken at t.
func FileName(t time.Time) string {
	return "sketchboard-" + t.Format("20060102-150405") + ".png"
}

// Frame returns the image an export would contain.
func (e *Exporter) Frame() (*image.RGBA, error) {
	if e.src == nil {
		return nil, ErrEmpty
	}
	img := e.src.Image()
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmpty
	}
	if e.shadow != nil {
		// Exports carry the whole frame, so where the board landed in it
		// is not needed.
		framed, _ := render.ApplyShadow(img, *e.shadow)
		img = framed
	}
	return img, nil
}

func (e *Exporter) context() (*gg.Context, error) {
	img, err := e.Frame()
	if err != nil {
		return nil, err
	}
	return gg.NewContextForImage(img), nil
}

// Encode writes the frame as PNG to w.
func (e *Exporter) Encode(w io.Writer) error {
	dc, err := e.context()
	if err != nil {
		return err
	}
	defer closeContext(dc)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteFile writes the frame to path, creating parent directories.
func (e *Exporter) WriteFile(path string) error {
	dc, err := e.context()
	if err != nil {
		return err
	}
	defer closeContext(dc)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	e.notifier.Export(path)
	return nil
}

// Export writes a timestamped file into the export directory and, when
// enabled, copies the image too. The path is returned even if only the
// copy failed.
func (e *Exporter) Export() (string, error) {
	path := filepath.Join(e.dir, FileName(e.now()))
	if err := e.WriteFile(path); err != nil {
		return "", err
	}
	if e.clipboard {
		if err := e.Copy(); err != nil {
			return path, err
		}
	}
	return path, nil
}

// Copy places the frame on the clipboard.
func (e *Exporter) Copy() error {
	img, err := e.Frame()
	if err != nil {
		return err
	}
	if err := e.copyImage(img); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	e.notifier.Copy("", img)
	return nil
}

func closeContext(dc *gg.Context) {
	if err := dc.Close(); err != nil {
		log.Printf("export: close context: %v", err)
	}
}

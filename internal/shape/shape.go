// Package shape implements the drawable shape variants, their hit-testing
// and the tools that create them.
package shape

import (
	"fmt"
	"image/color"
	"log"

	"github.com/example/sketchboard/internal/geom"
)

// Kind identifies a shape variant.
type Kind int

const (
	KindPointer Kind = iota
	KindFreehand
	KindRectangle
	KindEllipse
	KindText
)

var kindNames = []string{"pointer", "freehand", "rectangle", "ellipse", "text"}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Edge selects the corner style of box shaped variants.
type Edge int

const (
	EdgeRounded Edge = iota
	EdgePointy
)

func (e Edge) String() string {
	if e == EdgePointy {
		return "pointy"
	}
	return "rounded"
}

// RoundedRadius is the corner radius used for EdgeRounded.
const RoundedRadius = 10.0

// StyleConfig is the style a shape is painted with. It is a value: shapes
// keep their own copy and a panel change replaces it wholesale.
type StyleConfig struct {
	BorderColor     color.RGBA
	BorderWidth     float64
	BackgroundColor color.RGBA
	Edge            Edge
	FontColor       color.RGBA
	FontSize        float64
}

// DefaultStyle is the style of a freshly opened board.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		BorderColor:     color.RGBA{0x37, 0x41, 0x51, 0xff},
		BorderWidth:     1,
		BackgroundColor: color.RGBA{0xd1, 0xd5, 0xdb, 0xff},
		Edge:            EdgeRounded,
		FontColor:       color.RGBA{0x11, 0x18, 0x27, 0xff},
		FontSize:        20,
	}
}

// Modifiers is the keyboard modifier state captured with a pointer event.
type Modifiers struct {
	// Shift constrains rectangles to squares, ellipses to circles and
	// freehand strokes to one axis.
	Shift bool
}

// Cursor names the pointer cursor the board asks the frontend to show.
type Cursor string

const (
	CursorDefault   Cursor = "default"
	CursorCrosshair Cursor = "crosshair"
	CursorText      Cursor = "text"
	CursorPointer   Cursor = "pointer"
	CursorMove      Cursor = "move"
)

const (
	// DefaultHoverMargin widens stroke hit-testing beyond the stroke width.
	DefaultHoverMargin = 5.0
	// DefaultDuplicateOffset is the per-axis shift of a duplicated shape.
	DefaultDuplicateOffset = 20.0
)

// Shape is implemented by every variant.
type Shape interface {
	ID() string
	Kind() Kind
	Config() StyleConfig
	SetConfig(StyleConfig)

	// Move extends the geometry while the shape is being drawn.
	Move(p geom.Point, mods Modifiers)
	// Draw paints the shape. It never mutates the shape and does nothing
	// while the geometry is incomplete.
	Draw(c Canvas)
	// Translate shifts the whole shape by delta.
	Translate(delta geom.Point)
	// IsHovered hit-tests p. margin widens stroke shapes; filled shapes
	// ignore it.
	IsHovered(p geom.Point, margin float64) bool
	IsEmpty() bool
	// BoundedRectangle returns the normalized bounds, ok is false while the
	// geometry is incomplete.
	BoundedRectangle() (b geom.BoundingBox, ok bool)

	Select()
	Deselect()
	Attach()
	Edit()
	IsSelected() bool
	IsAttached() bool
	IsEditing() bool
	DrawingOnly() bool

	// Duplicate returns an unattached, unselected copy shifted by offset.
	// ok is false when the shape cannot be copied.
	Duplicate(offset geom.Point) (s Shape, ok bool)
	// Release frees resources held outside the shape.
	Release()
}

// Canvas is the drawing surface shapes paint on. Paths are consumed by
// Fill and Stroke, and both share the color last set.
type Canvas interface {
	SetColor(c color.Color)
	SetLineWidth(w float64)
	SetDash(lengths ...float64)
	ClearDash()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	DrawRectangle(x, y, w, h float64)
	DrawRoundedRectangle(x, y, w, h, r float64)
	DrawEllipse(x, y, rx, ry float64)
	Fill() error
	Stroke() error
	// DrawText draws s with its baseline at y using a face of the given size.
	DrawText(s string, x, y, size float64)
}

// UnimplementedError reports a variant that does not provide an operation.
type UnimplementedError struct {
	Kind Kind
	Op   string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s: %s not implemented", e.Kind, e.Op)
}

// unimplemented is a programming fault and is never recovered.
func unimplemented(k Kind, op string) {
	err := &UnimplementedError{Kind: k, Op: op}
	log.Printf("shape: %v", err)
	panic(err)
}

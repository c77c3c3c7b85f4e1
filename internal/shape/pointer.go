package shape

import (
	"image/color"

	"github.com/example/sketchboard/internal/geom"
)

// Marquee style of the pointer tool.
var (
	pointerBorder     = color.RGBA{0x7c, 0x3a, 0xed, 0xff}
	pointerBackground = color.RGBA{0xdd, 0xd6, 0xfe, 0x80}
	pointerDash       = []float64{15, 5}
)

// Pointer is the selection marquee. It exists only while dragging and is
// never attached.
type Pointer struct {
	base
	start, end *geom.Point
}

// NewPointer returns an empty marquee. The style is fixed, cfg only
// contributes the fields the marquee does not override.
func NewPointer(cfg StyleConfig) *Pointer {
	cfg.BorderWidth = 0.5
	cfg.BorderColor = pointerBorder
	cfg.BackgroundColor = pointerBackground
	cfg.Edge = EdgePointy
	return &Pointer{base: newBase(KindPointer, cfg)}
}

func (p *Pointer) DrawingOnly() bool { return true }

// Attach is refused, a marquee never enters the layer store.
func (p *Pointer) Attach() {}

// Move ignores the modifiers, the marquee is never constrained.
func (p *Pointer) Move(pt geom.Point, _ Modifiers) {
	extendBox(&p.start, &p.end, pt, false)
}

func (p *Pointer) Draw(c Canvas) {
	b, ok := p.BoundedRectangle()
	if !ok {
		return
	}
	c.SetDash(pointerDash...)
	fillAndStroke(c, p.config, func() {
		c.DrawRectangle(b.TopLeft.X, b.TopLeft.Y, b.Width(), b.Height())
	})
	c.ClearDash()
}

func (p *Pointer) Translate(geom.Point) {
	unimplemented(p.kind, "translate")
}

func (p *Pointer) IsHovered(pt geom.Point, _ float64) bool {
	b, ok := p.BoundedRectangle()
	return ok && geom.PointInRect(pt, b)
}

func (p *Pointer) IsEmpty() bool {
	return p.start == nil || p.end == nil
}

func (p *Pointer) BoundedRectangle() (geom.BoundingBox, bool) {
	return boxBounds(p.start, p.end)
}

func (p *Pointer) Duplicate(geom.Point) (Shape, bool) {
	unimplemented(p.kind, "duplicate")
	return nil, false
}

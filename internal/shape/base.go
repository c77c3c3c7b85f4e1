package shape

import (
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/example/sketchboard/internal/geom"
)

// base carries the identity, style and lifecycle flags every variant shares.
type base struct {
	id       string
	kind     Kind
	config   StyleConfig
	attached bool
	selected bool
	editing  bool
}

func newBase(k Kind, cfg StyleConfig) base {
	return base{id: uuid.NewString(), kind: k, config: cfg}
}

// clone copies the style of b under a fresh id with every flag cleared.
func (b *base) clone() base {
	return newBase(b.kind, b.config)
}

func (b *base) ID() string                { return b.id }
func (b *base) Kind() Kind                { return b.kind }
func (b *base) Config() StyleConfig       { return b.config }
func (b *base) SetConfig(cfg StyleConfig) { b.config = cfg }
func (b *base) IsSelected() bool          { return b.selected }
func (b *base) IsAttached() bool          { return b.attached }
func (b *base) IsEditing() bool           { return b.editing }
func (b *base) DrawingOnly() bool         { return false }
func (b *base) Attach()                   { b.attached = true }
func (b *base) Edit()                     {}
func (b *base) Release()                  {}

// Select only takes effect on attached shapes.
func (b *base) Select() {
	if b.attached {
		b.selected = true
	}
}

func (b *base) Deselect() {
	b.selected = false
}

// extendBox sets start on the first call and end afterwards. With constrain
// the end is pulled onto the diagonal so both extents match, keeping the
// direction the cursor went from start.
func extendBox(start, end **geom.Point, p geom.Point, constrain bool) {
	if *start == nil {
		sp := p
		*start = &sp
		return
	}
	if constrain {
		p = squareFrom(**start, p)
	}
	ep := p
	*end = &ep
}

func squareFrom(start, p geom.Point) geom.Point {
	l := math.Max(math.Abs(p.X-start.X), math.Abs(p.Y-start.Y))
	return geom.Point{
		X: start.X + l*direction(start.X, p.X),
		Y: start.Y + l*direction(start.Y, p.Y),
	}
}

func direction(from, to float64) float64 {
	if to > from {
		return 1
	}
	return -1
}

func translatePoint(p *geom.Point, delta geom.Point) {
	if p != nil {
		*p = p.Add(delta)
	}
}

// offsetCopy returns a new pointer to p+delta, or nil for nil.
func offsetCopy(p *geom.Point, delta geom.Point) *geom.Point {
	if p == nil {
		return nil
	}
	q := p.Add(delta)
	return &q
}

func boxBounds(start, end *geom.Point) (geom.BoundingBox, bool) {
	if start == nil || end == nil {
		return geom.BoundingBox{}, false
	}
	return geom.NewBoundingBox(*start, *end), true
}

// fillAndStroke paints the current path with the background and then the
// border of cfg. gg consumes the path on Fill, so the path is rebuilt by
// trace before stroking.
func fillAndStroke(c Canvas, cfg StyleConfig, trace func()) {
	trace()
	c.SetColor(cfg.BackgroundColor)
	if err := c.Fill(); err != nil {
		log.Printf("shape fill: %v", err)
	}
	if cfg.BorderWidth <= 0 {
		return
	}
	trace()
	c.SetColor(cfg.BorderColor)
	c.SetLineWidth(cfg.BorderWidth)
	if err := c.Stroke(); err != nil {
		log.Printf("shape stroke: %v", err)
	}
}

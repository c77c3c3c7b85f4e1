package shape

import (
	"math"

	"github.com/example/sketchboard/internal/geom"
)

// Ellipse is inscribed in the box spanned by start and end.
type Ellipse struct {
	base
	start, end *geom.Point
}

// NewEllipse returns an empty ellipse styled with cfg.
func NewEllipse(cfg StyleConfig) *Ellipse {
	return &Ellipse{base: newBase(KindEllipse, cfg)}
}

func (e *Ellipse) Move(p geom.Point, mods Modifiers) {
	extendBox(&e.start, &e.end, p, mods.Shift)
}

// axes returns the center and radii, ok is false while incomplete.
func (e *Ellipse) axes() (c geom.Point, rx, ry float64, ok bool) {
	if e.start == nil || e.end == nil {
		return geom.Point{}, 0, 0, false
	}
	c = e.start.Mid(*e.end)
	rx = math.Abs(e.end.X-e.start.X) / 2
	ry = math.Abs(e.end.Y-e.start.Y) / 2
	return c, rx, ry, true
}

func (e *Ellipse) Draw(cv Canvas) {
	c, rx, ry, ok := e.axes()
	if !ok || rx == 0 || ry == 0 {
		return
	}
	fillAndStroke(cv, e.config, func() {
		cv.DrawEllipse(c.X, c.Y, rx, ry)
	})
}

func (e *Ellipse) Translate(delta geom.Point) {
	translatePoint(e.start, delta)
	translatePoint(e.end, delta)
}

func (e *Ellipse) IsHovered(p geom.Point, _ float64) bool {
	c, rx, ry, ok := e.axes()
	return ok && geom.PointInEllipse(p, c, rx, ry)
}

// IsEmpty also reports a flat ellipse, which has nothing to paint.
func (e *Ellipse) IsEmpty() bool {
	_, rx, ry, ok := e.axes()
	return !ok || rx == 0 || ry == 0
}

func (e *Ellipse) BoundedRectangle() (geom.BoundingBox, bool) {
	return boxBounds(e.start, e.end)
}

func (e *Ellipse) Duplicate(offset geom.Point) (Shape, bool) {
	return &Ellipse{
		base:  e.clone(),
		start: offsetCopy(e.start, offset),
		end:   offsetCopy(e.end, offset),
	}, true
}

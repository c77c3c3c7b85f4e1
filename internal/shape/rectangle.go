package shape

import "github.com/example/sketchboard/internal/geom"

// Rectangle is a box drawn from its first point to the cursor.
type Rectangle struct {
	base
	start, end *geom.Point
}

// NewRectangle returns an empty rectangle styled with cfg.
func NewRectangle(cfg StyleConfig) *Rectangle {
	return &Rectangle{base: newBase(KindRectangle, cfg)}
}

func (r *Rectangle) Move(p geom.Point, mods Modifiers) {
	extendBox(&r.start, &r.end, p, mods.Shift)
}

func (r *Rectangle) Draw(c Canvas) {
	b, ok := r.BoundedRectangle()
	if !ok {
		return
	}
	radius := 0.0
	if r.config.Edge == EdgeRounded {
		radius = RoundedRadius
	}
	fillAndStroke(c, r.config, func() {
		if radius > 0 {
			c.DrawRoundedRectangle(b.TopLeft.X, b.TopLeft.Y, b.Width(), b.Height(), radius)
			return
		}
		c.DrawRectangle(b.TopLeft.X, b.TopLeft.Y, b.Width(), b.Height())
	})
}

func (r *Rectangle) Translate(delta geom.Point) {
	translatePoint(r.start, delta)
	translatePoint(r.end, delta)
}

func (r *Rectangle) IsHovered(p geom.Point, _ float64) bool {
	b, ok := r.BoundedRectangle()
	return ok && geom.PointInRect(p, b)
}

func (r *Rectangle) IsEmpty() bool {
	return r.start == nil || r.end == nil
}

func (r *Rectangle) BoundedRectangle() (geom.BoundingBox, bool) {
	return boxBounds(r.start, r.end)
}

func (r *Rectangle) Duplicate(offset geom.Point) (Shape, bool) {
	return &Rectangle{
		base:  r.clone(),
		start: offsetCopy(r.start, offset),
		end:   offsetCopy(r.end, offset),
	}, true
}

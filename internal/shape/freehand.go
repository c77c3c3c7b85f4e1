package shape

import (
	"log"
	"math"

	"github.com/example/sketchboard/internal/geom"
)

// Freehand is a pen stroke through the sampled pointer positions.
type Freehand struct {
	base
	points []geom.Point
}

// NewFreehand returns an empty stroke styled with cfg.
func NewFreehand(cfg StyleConfig) *Freehand {
	return &Freehand{base: newBase(KindFreehand, cfg)}
}

// Points returns a copy of the sampled points.
func (f *Freehand) Points() []geom.Point {
	return append([]geom.Point(nil), f.points...)
}

// Move appends p. With shift the point is snapped onto whichever axis
// through the first point it is closer to.
func (f *Freehand) Move(p geom.Point, mods Modifiers) {
	if mods.Shift && len(f.points) > 0 {
		first := f.points[0]
		if math.Abs(p.X-first.X) >= math.Abs(p.Y-first.Y) {
			p.Y = first.Y
		} else {
			p.X = first.X
		}
	}
	f.points = append(f.points, p)
}

// Draw smooths the stroke with quadratic curves through the midpoints of
// consecutive samples.
func (f *Freehand) Draw(c Canvas) {
	pts := f.points
	if len(pts) == 0 {
		return
	}
	c.MoveTo(pts[0].X, pts[0].Y)
	if len(pts) == 1 {
		c.LineTo(pts[0].X, pts[0].Y)
	}
	for i := 0; i < len(pts)-1; i++ {
		mid := pts[i].Mid(pts[i+1])
		if i == 0 {
			c.LineTo(mid.X, mid.Y)
			continue
		}
		c.QuadraticTo(pts[i].X, pts[i].Y, mid.X, mid.Y)
	}
	if last := pts[len(pts)-1]; len(pts) > 1 {
		c.LineTo(last.X, last.Y)
	}
	c.SetColor(f.config.BorderColor)
	c.SetLineWidth(math.Max(f.config.BorderWidth, 1))
	if err := c.Stroke(); err != nil {
		log.Printf("freehand stroke: %v", err)
	}
}

func (f *Freehand) Translate(delta geom.Point) {
	for i := range f.points {
		f.points[i] = f.points[i].Add(delta)
	}
}

func (f *Freehand) IsHovered(p geom.Point, margin float64) bool {
	limit := f.config.BorderWidth + margin
	switch len(f.points) {
	case 0:
		return false
	case 1:
		return p.Dist(f.points[0]) < limit
	}
	for i := 0; i < len(f.points)-1; i++ {
		if geom.PointSegmentDistance(p, f.points[i], f.points[i+1]) < limit {
			return true
		}
	}
	return false
}

func (f *Freehand) IsEmpty() bool {
	return len(f.points) == 0
}

func (f *Freehand) BoundedRectangle() (geom.BoundingBox, bool) {
	return geom.BoundsOf(f.points)
}

func (f *Freehand) Duplicate(offset geom.Point) (Shape, bool) {
	pts := make([]geom.Point, len(f.points))
	for i, p := range f.points {
		pts[i] = p.Add(offset)
	}
	return &Freehand{base: f.clone(), points: pts}, true
}

// Package geom holds the pure geometry used by shapes for hit-testing and
// bounding boxes. Nothing here keeps state.
package geom

import "math"

// Point is a position in canvas-local coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// BoundingBox is an axis aligned box. TopLeft is never greater than
// BottomRight on either axis when built with NewBoundingBox.
type BoundingBox struct {
	TopLeft     Point
	BottomRight Point
}

// NewBoundingBox normalizes two arbitrary corners into a BoundingBox.
func NewBoundingBox(a, b Point) BoundingBox {
	return BoundingBox{
		TopLeft:     Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		BottomRight: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// BoundsOf returns the box enclosing every point. ok is false for an empty slice.
func BoundsOf(points []Point) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	b := BoundingBox{TopLeft: points[0], BottomRight: points[0]}
	for _, p := range points[1:] {
		b.TopLeft.X = math.Min(b.TopLeft.X, p.X)
		b.TopLeft.Y = math.Min(b.TopLeft.Y, p.Y)
		b.BottomRight.X = math.Max(b.BottomRight.X, p.X)
		b.BottomRight.Y = math.Max(b.BottomRight.Y, p.Y)
	}
	return b, true
}

// Width of the box.
func (b BoundingBox) Width() float64 { return b.BottomRight.X - b.TopLeft.X }

// Height of the box.
func (b BoundingBox) Height() float64 { return b.BottomRight.Y - b.TopLeft.Y }

// Inflate grows the box by d on every side.
func (b BoundingBox) Inflate(d float64) BoundingBox {
	return BoundingBox{
		TopLeft:     Point{X: b.TopLeft.X - d, Y: b.TopLeft.Y - d},
		BottomRight: Point{X: b.BottomRight.X + d, Y: b.BottomRight.Y + d},
	}
}

// ContainsBox reports whether o lies fully inside b.
func (b BoundingBox) ContainsBox(o BoundingBox) bool {
	return PointInRect(o.TopLeft, b) && PointInRect(o.BottomRight, b)
}

// PointInRect reports whether p lies inside b, edges included.
func PointInRect(p Point, b BoundingBox) bool {
	return b.TopLeft.X <= p.X && p.X <= b.BottomRight.X &&
		b.TopLeft.Y <= p.Y && p.Y <= b.BottomRight.Y
}

// PointInEllipse reports whether p lies inside the axis aligned ellipse with
// center c and radii rx, ry. A zero radius collapses the ellipse to a segment
// along the other axis, and to a single point when both are zero.
func PointInEllipse(p, c Point, rx, ry float64) bool {
	rx, ry = math.Abs(rx), math.Abs(ry)
	dx, dy := p.X-c.X, p.Y-c.Y
	switch {
	case rx == 0 && ry == 0:
		return dx == 0 && dy == 0
	case rx == 0:
		return dx == 0 && math.Abs(dy) <= ry
	case ry == 0:
		return dy == 0 && math.Abs(dx) <= rx
	}
	nx, ny := dx/rx, dy/ry
	return nx*nx+ny*ny <= 1
}

// PointSegmentDistance returns the distance from p to the closest point of
// the segment a-b, using a projection clamped to the segment ends.
func PointSegmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	proj := Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return p.Dist(proj)
}

// ClientToCanvas converts a window (client) position into canvas-local
// coordinates given the canvas origin within the window.
func ClientToCanvas(client, origin Point) Point {
	return client.Sub(origin)
}

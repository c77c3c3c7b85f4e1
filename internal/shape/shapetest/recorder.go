// Package shapetest provides a canvas that records drawing calls.
package shapetest

import (
	"fmt"
	"image/color"
	"strings"
)

// Recorder implements shape.Canvas by logging each call as a string.
type Recorder struct {
	Calls []string
}

func (r *Recorder) add(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) SetColor(c color.Color) {
	cr, cg, cb, ca := c.RGBA()
	r.add("color %02x%02x%02x%02x", cr>>8, cg>>8, cb>>8, ca>>8)
}

func (r *Recorder) SetLineWidth(w float64) { r.add("width %g", w) }
func (r *Recorder) SetDash(lengths ...float64) { r.add("dash %v", lengths) }
func (r *Recorder) ClearDash() { r.add("nodash") }
func (r *Recorder) MoveTo(x, y float64) { r.add("move %g,%g", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.add("line %g,%g", x, y) }
func (r *Recorder) DrawRectangle(x, y, w, h float64) {
	r.add("rect %g,%g %gx%g", x, y, w, h)
}
func (r *Recorder) DrawRoundedRectangle(x, y, w, h, rad float64) {
	r.add("rrect %g,%g %gx%g r%g", x, y, w, h, rad)
}
func (r *Recorder) DrawEllipse(x, y, rx, ry float64) {
	r.add("ellipse %g,%g %gx%g", x, y, rx, ry)
}
func (r *Recorder) QuadraticTo(cx, cy, x, y float64) {
	r.add("quad %g,%g %g,%g", cx, cy, x, y)
}
func (r *Recorder) Fill() error { r.add("fill"); return nil }
func (r *Recorder) Stroke() error { r.add("stroke"); return nil }
func (r *Recorder) DrawText(s string, x, y, size float64) {
	r.add("text %q %g,%g %g", s, x, y, size)
}

// Count returns how many calls start with prefix.
func (r *Recorder) Count(prefix string) int {
	n := 0
	for _, c := range r.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

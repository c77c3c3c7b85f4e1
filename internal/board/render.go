package board

import (
	"log"

	"github.com/example/sketchboard/internal/geom"
	"github.com/example/sketchboard/internal/shape"
)

const (
	selectionPadding = 4.0
	handleSize       = 6.0
)

var selectionDash = []float64{6, 4}

// Render paints attached shapes bottom to top, then the in-progress shape,
// then the selection outlines. Nothing is drawn without a surface.
func (b *Board) Render() {
	if b.surface == nil {
		return
	}
	b.surface.Draw(b.Paint)
}

// Paint issues the drawing calls of one frame on c.
func (b *Board) Paint(c shape.Canvas) {
	b.store.Each(func(sh shape.Shape) { sh.Draw(c) })
	if sh := b.drawing.Get(); sh != nil {
		sh.Draw(c)
	}
	for _, sh := range b.store.Selected() {
		if box, ok := sh.BoundedRectangle(); ok {
			b.paintSelection(c, box.Inflate(selectionPadding))
		}
	}
}

func (b *Board) paintSelection(c shape.Canvas, box geom.BoundingBox) {
	c.SetDash(selectionDash...)
	c.DrawRectangle(box.TopLeft.X, box.TopLeft.Y, box.Width(), box.Height())
	c.SetColor(b.selectionColor)
	c.SetLineWidth(1)
	if err := c.Stroke(); err != nil {
		log.Printf("selection stroke: %v", err)
	}
	c.ClearDash()

	corners := []geom.Point{
		box.TopLeft,
		{X: box.BottomRight.X, Y: box.TopLeft.Y},
		box.BottomRight,
		{X: box.TopLeft.X, Y: box.BottomRight.Y},
	}
	for _, p := range corners {
		x, y := p.X-handleSize/2, p.Y-handleSize/2
		c.DrawRectangle(x, y, handleSize, handleSize)
		c.SetColor(b.handleColor)
		if err := c.Fill(); err != nil {
			log.Printf("selection handle: %v", err)
		}
		c.DrawRectangle(x, y, handleSize, handleSize)
		c.SetColor(b.selectionColor)
		if err := c.Stroke(); err != nil {
			log.Printf("selection handle: %v", err)
		}
	}
}

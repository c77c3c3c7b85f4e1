package shape

import (
	"strings"

	"github.com/example/sketchboard/internal/geom"
)

// Text is a label backed by an overlay element. The element is shown while
// editing, otherwise the first line is painted on the canvas.
type Text struct {
	base
	start   *geom.Point
	element OverlayElement
}

// NewText returns a text without a backing element.
func NewText(cfg StyleConfig) *Text {
	return &Text{base: newBase(KindText, cfg)}
}

// PlaceText creates a text at p with a focused overlay element. The
// element's focus hooks drive selection.
func PlaceText(o Overlay, p geom.Point, cfg StyleConfig) *Text {
	t := NewText(cfg)
	start := p
	t.start = &start
	t.editing = true
	t.bind(o.Create(t.id, p, cfg.FontSize))
	return t
}

func (t *Text) bind(el OverlayElement) {
	t.element = el
	el.OnFocus(t.Select)
	el.OnBlur(t.Deselect)
}

// Element returns the backing overlay element, nil before placement.
func (t *Text) Element() OverlayElement {
	return t.element
}

// Content returns the text held by the overlay element.
func (t *Text) Content() string {
	if t.element == nil {
		return ""
	}
	return t.element.Content()
}

// Move is not supported, text is placed by clicking.
func (t *Text) Move(geom.Point, Modifiers) {
	unimplemented(t.kind, "move")
}

// Draw paints the first line below start while the element is hidden.
func (t *Text) Draw(c Canvas) {
	if t.start == nil || t.element == nil || t.editing {
		return
	}
	line, _, _ := strings.Cut(t.element.Content(), "\n")
	if line == "" {
		return
	}
	c.SetColor(t.config.FontColor)
	c.DrawText(line, t.start.X, t.start.Y+t.config.FontSize, t.config.FontSize)
}

// Translate moves the text and its element. It does nothing while editing.
func (t *Text) Translate(delta geom.Point) {
	if t.editing {
		return
	}
	translatePoint(t.start, delta)
	if t.element != nil {
		t.element.SetPosition(t.element.Position().Add(delta))
	}
}

func (t *Text) IsHovered(p geom.Point, _ float64) bool {
	b, ok := t.BoundedRectangle()
	return ok && geom.PointInRect(p, b)
}

func (t *Text) IsEmpty() bool {
	return t.element == nil
}

func (t *Text) BoundedRectangle() (geom.BoundingBox, bool) {
	if t.start == nil || t.element == nil {
		return geom.BoundingBox{}, false
	}
	w, h := t.element.Size()
	return geom.NewBoundingBox(*t.start, t.start.Add(geom.Pt(w, h))), true
}

func (t *Text) Deselect() {
	t.base.Deselect()
	t.editing = false
	if t.element != nil {
		t.element.Hide()
		t.element.Blur()
	}
}

func (t *Text) Edit() {
	t.editing = true
	if t.element != nil {
		t.element.Show()
		t.element.Focus()
	}
}

// SetConfig replaces the style and resizes the element font.
func (t *Text) SetConfig(cfg StyleConfig) {
	t.base.SetConfig(cfg)
	if t.element != nil {
		t.element.SetFontSize(cfg.FontSize)
	}
}

// Duplicate clones the overlay element next to the original. It fails
// while the text has no element.
func (t *Text) Duplicate(offset geom.Point) (Shape, bool) {
	if t.element == nil || t.start == nil {
		return nil, false
	}
	d := &Text{base: t.clone(), start: offsetCopy(t.start, offset)}
	el := t.element.Clone(d.id)
	el.SetPosition(t.element.Position().Add(offset))
	el.Hide()
	d.bind(el)
	return d, true
}

// Release removes the overlay element.
func (t *Text) Release() {
	if t.element != nil {
		t.element.Remove()
	}
}

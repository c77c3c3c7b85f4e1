// Package overlay provides the editable text boxes that float above the
// canvas while a text shape is being typed into.
package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/example/sketchboard/internal/geom"
	"github.com/example/sketchboard/internal/shape"
)

// Layer owns the overlay elements of one board.
type Layer struct {
	elements []*Element
}

// New returns an empty Layer.
func New() *Layer {
	return &Layer{}
}

// Create adds a hidden, unfocused element at p.
func (l *Layer) Create(id string, at geom.Point, fontSize float64) shape.OverlayElement {
	e := &Element{layer: l, id: id, pos: at, fontSize: fontSize}
	l.elements = append(l.elements, e)
	return e
}

// Focused reports whether an element has focus.
func (l *Layer) Focused() bool {
	return l.Active() != nil
}

// Active returns the focused element or nil.
func (l *Layer) Active() *Element {
	for _, e := range l.elements {
		if e.focused {
			return e
		}
	}
	return nil
}

// Lookup returns the element with id.
func (l *Layer) Lookup(id string) (*Element, bool) {
	for _, e := range l.elements {
		if e.id == id {
			return e, true
		}
	}
	return nil, false
}

// Len returns the number of live elements.
func (l *Layer) Len() int {
	return len(l.elements)
}

func (l *Layer) remove(e *Element) {
	for i, x := range l.elements {
		if x == e {
			l.elements = append(l.elements[:i], l.elements[i+1:]...)
			return
		}
	}
}

// Draw paints visible elements onto dst with the canvas origin at origin.
func (l *Layer) Draw(dst *image.RGBA, origin image.Point, text, border color.RGBA) {
	for _, e := range l.elements {
		if !e.visible {
			continue
		}
		w, h := e.Size()
		r := image.Rect(int(e.pos.X), int(e.pos.Y), int(e.pos.X+w), int(e.pos.Y+h)).Add(origin)
		r = r.Inset(-2)
		draw.Draw(dst, r, image.NewUniform(color.RGBA{0xff, 0xff, 0xff, 0xe0}), image.Point{}, draw.Over)
		outline(dst, r, border)
		content := e.content
		if e.focused {
			content += "|"
		}
		if err := DrawText(dst, r.Min.X+2, r.Min.Y+2, content, text, e.fontSize); err != nil {
			log.Printf("overlay: %v", err)
		}
	}
}

func outline(dst *image.RGBA, r image.Rectangle, col color.RGBA) {
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Over)
}

// Element is one editable text box.
type Element struct {
	layer    *Layer
	id       string
	content  string
	pos      geom.Point
	fontSize float64
	visible  bool
	focused  bool
	onFocus  func()
	onBlur   func()
}

func (e *Element) ID() string               { return e.id }
func (e *Element) Content() string          { return e.content }
func (e *Element) SetContent(s string)      { e.content = s }
func (e *Element) Position() geom.Point     { return e.pos }
func (e *Element) SetPosition(p geom.Point) { e.pos = p }
func (e *Element) SetFontSize(size float64) { e.fontSize = size }
func (e *Element) Show()                    { e.visible = true }
func (e *Element) Hide()                    { e.visible = false }
func (e *Element) Visible() bool            { return e.visible }
func (e *Element) IsFocused() bool          { return e.focused }
func (e *Element) OnFocus(fn func())        { e.onFocus = fn }
func (e *Element) OnBlur(fn func())         { e.onBlur = fn }

// Size measures the content with the element's font.
func (e *Element) Size() (float64, float64) {
	w, h, err := Measure(e.content, e.fontSize)
	if err != nil {
		log.Printf("overlay measure: %v", err)
		return 0, 0
	}
	return w, h
}

// Focus takes focus from any other element. Hooks run only when the
// focus actually changes.
func (e *Element) Focus() {
	if e.focused {
		return
	}
	if other := e.layer.Active(); other != nil {
		other.Blur()
	}
	e.focused = true
	if e.onFocus != nil {
		e.onFocus()
	}
}

func (e *Element) Blur() {
	if !e.focused {
		return
	}
	e.focused = false
	if e.onBlur != nil {
		e.onBlur()
	}
}

// Clone adds a hidden copy of e under id.
func (e *Element) Clone(id string) shape.OverlayElement {
	c := &Element{layer: e.layer, id: id, content: e.content, pos: e.pos, fontSize: e.fontSize}
	e.layer.elements = append(e.layer.elements, c)
	return c
}

// Remove detaches e from its layer.
func (e *Element) Remove() {
	e.focused = false
	e.layer.remove(e)
}

// Insert appends typed text.
func (e *Element) Insert(s string) {
	e.content += s
}

// Backspace deletes the last rune.
func (e *Element) Backspace() {
	r := []rune(e.content)
	if len(r) > 0 {
		e.content = string(r[:len(r)-1])
	}
}

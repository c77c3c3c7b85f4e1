package shape

import "github.com/example/sketchboard/internal/geom"

type fakeElement struct {
	host     *fakeOverlay
	id       string
	content  string
	pos      geom.Point
	w, h     float64
	fontSize float64
	visible  bool
	focused  bool
	removed  bool
	onFocus  func()
	onBlur   func()
}

func (e *fakeElement) ID() string               { return e.id }
func (e *fakeElement) Content() string          { return e.content }
func (e *fakeElement) SetContent(s string)      { e.content = s }
func (e *fakeElement) Position() geom.Point     { return e.pos }
func (e *fakeElement) SetPosition(p geom.Point) { e.pos = p }
func (e *fakeElement) Size() (float64, float64) { return e.w, e.h }
func (e *fakeElement) SetFontSize(s float64)    { e.fontSize = s }
func (e *fakeElement) Show()                    { e.visible = true }
func (e *fakeElement) Hide()                    { e.visible = false }
func (e *fakeElement) Visible() bool            { return e.visible }
func (e *fakeElement) IsFocused() bool          { return e.focused }
func (e *fakeElement) Remove()                  { e.removed = true }
func (e *fakeElement) OnFocus(fn func())        { e.onFocus = fn }
func (e *fakeElement) OnBlur(fn func())         { e.onBlur = fn }

func (e *fakeElement) Focus() {
	if e.focused {
		return
	}
	e.focused = true
	if e.onFocus != nil {
		e.onFocus()
	}
}

func (e *fakeElement) Blur() {
	if !e.focused {
		return
	}
	e.focused = false
	if e.onBlur != nil {
		e.onBlur()
	}
}

func (e *fakeElement) Clone(id string) OverlayElement {
	c := &fakeElement{host: e.host, id: id, content: e.content, pos: e.pos, w: e.w, h: e.h, fontSize: e.fontSize}
	e.host.elements = append(e.host.elements, c)
	return c
}

type fakeOverlay struct {
	elements []*fakeElement
}

func (o *fakeOverlay) Create(id string, at geom.Point, fontSize float64) OverlayElement {
	e := &fakeElement{host: o, id: id, pos: at, w: 80, h: 24, fontSize: fontSize}
	o.elements = append(o.elements, e)
	return e
}

func (o *fakeOverlay) Focused() bool {
	for _, e := range o.elements {
		if e.focused {
			return true
		}
	}
	return false
}

package shape

import (
	"strings"

	"github.com/example/sketchboard/internal/geom"
)

// Slot holds the shape currently being drawn, if any.
type Slot struct {
	shape Shape
}

// Get returns the in-progress shape or nil.
func (s *Slot) Get() Shape { return s.shape }

// Set replaces the in-progress shape.
func (s *Slot) Set(sh Shape) { s.shape = sh }

// Empty reports whether nothing is being drawn.
func (s *Slot) Empty() bool { return s.shape == nil }

// Take returns the in-progress shape and clears the slot.
func (s *Slot) Take() Shape {
	sh := s.shape
	s.shape = nil
	return sh
}

// Event is what a tool handler receives for one pointer snapshot.
type Event struct {
	Point  geom.Point
	Mods   Modifiers
	Slot   *Slot
	Config StyleConfig
	// Attach moves the in-progress shape into the layer store.
	Attach func()
	// SelectWithin selects every attached shape inside b.
	SelectWithin func(b geom.BoundingBox)
	Overlay      Overlay
}

// PanelCaps lists the style controls that apply to a tool.
type PanelCaps struct {
	NoPanel     bool
	Border      bool
	BorderWidth bool
	Background  bool
	Edge        bool
	FontColor   bool
	FontSize    bool
}

// Handler reacts to a pointer snapshot.
type Handler func(t *Tool, ev Event)

// Tool describes how one shape kind is drawn. Nil handlers fall back to
// the defaults: down creates the shape, move extends it, up attaches it
// and click does nothing.
type Tool struct {
	Name     string
	Kind     Kind
	Cursor   Cursor
	Shortcut rune
	Panel    PanelCaps
	New      func(cfg StyleConfig) Shape

	OnMouseDown Handler
	OnMouseMove Handler
	OnMouseUp   Handler
	OnClick     Handler
}

// MouseDown runs the down handler.
func (t *Tool) MouseDown(ev Event) {
	if t.OnMouseDown != nil {
		t.OnMouseDown(t, ev)
		return
	}
	DefaultMouseDown(t, ev)
}

// MouseMove runs the move handler.
func (t *Tool) MouseMove(ev Event) {
	if t.OnMouseMove != nil {
		t.OnMouseMove(t, ev)
		return
	}
	DefaultMouseMove(t, ev)
}

// MouseUp runs the up handler.
func (t *Tool) MouseUp(ev Event) {
	if t.OnMouseUp != nil {
		t.OnMouseUp(t, ev)
		return
	}
	DefaultMouseUp(t, ev)
}

// Click runs the click handler.
func (t *Tool) Click(ev Event) {
	if t.OnClick != nil {
		t.OnClick(t, ev)
	}
}

// DefaultMouseDown creates the shape at the press point unless one is
// already in progress.
func DefaultMouseDown(t *Tool, ev Event) {
	if ev.Slot == nil || !ev.Slot.Empty() || t.New == nil {
		return
	}
	sh := t.New(ev.Config)
	sh.Move(ev.Point, ev.Mods)
	ev.Slot.Set(sh)
}

// DefaultMouseMove extends the in-progress shape.
func DefaultMouseMove(_ *Tool, ev Event) {
	if ev.Slot == nil {
		return
	}
	if sh := ev.Slot.Get(); sh != nil {
		sh.Move(ev.Point, ev.Mods)
	}
}

// DefaultMouseUp attaches the in-progress shape.
func DefaultMouseUp(_ *Tool, ev Event) {
	if ev.Attach != nil {
		ev.Attach()
	}
}

func ignore(*Tool, Event) {}

// releaseMarquee selects what the marquee covers before the marquee is
// discarded by attach.
func releaseMarquee(t *Tool, ev Event) {
	if ev.Slot != nil && ev.SelectWithin != nil {
		if sh := ev.Slot.Get(); sh != nil {
			if b, ok := sh.BoundedRectangle(); ok {
				ev.SelectWithin(b)
			}
		}
	}
	DefaultMouseUp(t, ev)
}

// placeText puts a new text under the click unless something is being
// drawn or another element is being typed into.
func placeText(_ *Tool, ev Event) {
	if ev.Overlay == nil || ev.Slot == nil || !ev.Slot.Empty() || ev.Overlay.Focused() {
		return
	}
	t := PlaceText(ev.Overlay, ev.Point, ev.Config)
	ev.Slot.Set(t)
	if ev.Attach != nil {
		ev.Attach()
	}
	t.Edit()
}

// Tools returns the tool registry in toolbar order.
func Tools() []*Tool {
	return []*Tool{
		{
			Name:      "Pointer",
			Kind:      KindPointer,
			Cursor:    CursorDefault,
			Shortcut:  's',
			Panel:     PanelCaps{NoPanel: true},
			New:       func(cfg StyleConfig) Shape { return NewPointer(cfg) },
			OnMouseUp: releaseMarquee,
		},
		{
			Name:     "Pen",
			Kind:     KindFreehand,
			Cursor:   CursorCrosshair,
			Shortcut: 'p',
			Panel:    PanelCaps{Border: true, BorderWidth: true},
			New:      func(cfg StyleConfig) Shape { return NewFreehand(cfg) },
		},
		{
			Name:     "Rectangle",
			Kind:     KindRectangle,
			Cursor:   CursorCrosshair,
			Shortcut: 'r',
			Panel:    PanelCaps{Border: true, BorderWidth: true, Background: true, Edge: true},
			New:      func(cfg StyleConfig) Shape { return NewRectangle(cfg) },
		},
		{
			Name:     "Oval",
			Kind:     KindEllipse,
			Cursor:   CursorCrosshair,
			Shortcut: 'o',
			Panel:    PanelCaps{Border: true, BorderWidth: true, Background: true},
			New:      func(cfg StyleConfig) Shape { return NewEllipse(cfg) },
		},
		{
			Name:        "Text",
			Kind:        KindText,
			Cursor:      CursorText,
			Shortcut:    't',
			Panel:       PanelCaps{FontColor: true, FontSize: true},
			New:         func(cfg StyleConfig) Shape { return NewText(cfg) },
			OnMouseDown: ignore,
			OnMouseMove: ignore,
			OnMouseUp:   ignore,
			OnClick:     placeText,
		},
	}
}

// Lookup finds a tool by name, case insensitively.
func Lookup(tools []*Tool, name string) (*Tool, bool) {
	for _, t := range tools {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// ForKind finds the tool that draws kind k.
func ForKind(tools []*Tool, k Kind) (*Tool, bool) {
	for _, t := range tools {
		if t.Kind == k {
			return t, true
		}
	}
	return nil, false
}

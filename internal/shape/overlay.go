package shape

import "github.com/example/sketchboard/internal/geom"

// OverlayElement is an editable text box that lives outside the canvas,
// keyed by the id of the Text shape that owns it.
type OverlayElement interface {
	ID() string
	Content() string
	SetContent(s string)
	// Position is the top left corner in canvas coordinates.
	Position() geom.Point
	SetPosition(p geom.Point)
	// Size is the measured width and height of the rendered content.
	Size() (w, h float64)
	SetFontSize(size float64)
	Show()
	Hide()
	Visible() bool
	Focus()
	Blur()
	IsFocused() bool
	// Clone creates a new element with the same content under id.
	Clone(id string) OverlayElement
	Remove()
	// OnFocus and OnBlur register the hooks run when focus changes.
	OnFocus(fn func())
	OnBlur(fn func())
}

// Overlay creates overlay elements.
type Overlay interface {
	Create(id string, at geom.Point, fontSize float64) OverlayElement
	// Focused reports whether any element currently has focus.
	Focused() bool
}

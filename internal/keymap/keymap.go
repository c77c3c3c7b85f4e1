// Package keymap binds keyboard shortcuts to board operations and routes
// typing into the focused text element.
package keymap

import (
	"fmt"
	"log"
	"strings"
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/sketchboard/internal/overlay"
	"github.com/example/sketchboard/internal/shape"
)

// Board is the set of operations shortcuts can trigger.
type Board interface {
	Tools() []*shape.Tool
	SelectTool(name string) error
	DeleteSelected()
	DuplicateSelected()
	DeselectAll()
	ClearCanvas()
}

// Shortcut is a key that triggers an action. Letters match on the lower
// case rune, other keys on the code.
type Shortcut struct {
	Rune rune
	Code key.Code
}

func (s Shortcut) String() string {
	if s.Rune != 0 {
		return strings.ToUpper(string(s.Rune))
	}
	switch s.Code {
	case key.CodeEscape:
		return "Esc"
	case key.CodeDeleteForward:
		return "Del"
	case key.CodeDeleteBackspace:
		return "Backspace"
	case key.CodeReturnEnter:
		return "Enter"
	}
	return s.Code.String()
}

// Binding is one named action and the keys bound to it.
type Binding struct {
	Name string
	Keys []Shortcut
	run  func() error
}

// Map dispatches key presses.
type Map struct {
	board    Board
	overlay  *overlay.Layer
	bindings []*Binding
	keys     map[Shortcut]*Binding
	export   func() error
	status   func(string)
}

// Option configures a Map.
type Option func(*Map)

// WithExport sets what E does.
func WithExport(fn func() error) Option {
	return func(m *Map) { m.export = fn }
}

// WithStatus receives short messages about what a shortcut did.
func WithStatus(fn func(string)) Option {
	return func(m *Map) { m.status = fn }
}

// New binds the tool shortcuts of b and the editing keys.
func New(b Board, o *overlay.Layer, opts ...Option) *Map {
	m := &Map{board: b, overlay: o, keys: map[Shortcut]*Binding{}}
	for _, opt := range opts {
		opt(m)
	}
	for _, t := range b.Tools() {
		name := t.Name
		m.register(name+" Tool", func() error { return b.SelectTool(name) }, Shortcut{Rune: t.Shortcut})
	}
	m.register("Duplicate Element", run(b.DuplicateSelected), Shortcut{Rune: 'd'})
	m.register("Unselect Element", run(b.DeselectAll), Shortcut{Code: key.CodeEscape})
	m.register("Delete Element", run(b.DeleteSelected),
		Shortcut{Code: key.CodeDeleteForward}, Shortcut{Code: key.CodeDeleteBackspace})
	m.register("Export Canvas", m.runExport, Shortcut{Rune: 'e'})
	m.register("Clear Canvas", run(b.ClearCanvas), Shortcut{Rune: 'c'})
	return m
}

func run(fn func()) func() error {
	return func() error {
		fn()
		return nil
	}
}

func (m *Map) register(name string, fn func() error, keys ...Shortcut) {
	bd := &Binding{Name: name, run: fn}
	for _, k := range keys {
		if k == (Shortcut{}) {
			continue
		}
		bd.Keys = append(bd.Keys, k)
		m.keys[k] = bd
	}
	m.bindings = append(m.bindings, bd)
}

func (m *Map) runExport() error {
	if m.export == nil {
		return fmt.Errorf("export not available")
	}
	return m.export()
}

// Bindings returns the actions in help order.
func (m *Map) Bindings() []*Binding {
	return m.bindings
}

// Lookup returns the binding for a key press.
func (m *Map) Lookup(e key.Event) (*Binding, bool) {
	if e.Rune > 0 {
		if bd, ok := m.keys[Shortcut{Rune: unicode.ToLower(e.Rune)}]; ok {
			return bd, true
		}
	}
	bd, ok := m.keys[Shortcut{Code: e.Code}]
	return bd, ok
}

// Handle processes one key event and reports whether anything changed.
// While a text element has focus every key edits it, except Escape which
// ends editing.
func (m *Map) Handle(e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	if m.overlay != nil {
		if el := m.overlay.Active(); el != nil {
			return m.edit(el, e)
		}
	}
	if e.Modifiers&(key.ModControl|key.ModAlt|key.ModMeta) != 0 {
		return false
	}
	bd, ok := m.Lookup(e)
	if !ok {
		return false
	}
	m.trigger(bd)
	return true
}

// Run triggers the binding called name, as a toolbar button does.
func (m *Map) Run(name string) error {
	for _, bd := range m.bindings {
		if bd.Name == name {
			return m.trigger(bd)
		}
	}
	return fmt.Errorf("unknown action %q", name)
}

func (m *Map) trigger(bd *Binding) error {
	if err := bd.run(); err != nil {
		log.Printf("%s: %v", strings.ToLower(bd.Name), err)
		m.report(err.Error())
		return err
	}
	m.report(bd.Name)
	return nil
}

func (m *Map) edit(el *overlay.Element, e key.Event) bool {
	switch e.Code {
	case key.CodeEscape:
		m.board.DeselectAll()
		return true
	case key.CodeDeleteBackspace:
		el.Backspace()
		return true
	case key.CodeReturnEnter:
		el.Insert("\n")
		return true
	}
	if e.Rune > 0 && unicode.IsPrint(e.Rune) {
		el.Insert(string(e.Rune))
		return true
	}
	return false
}

func (m *Map) report(msg string) {
	if m.status != nil {
		m.status(msg)
	}
}

// Help renders the bindings as aligned lines.
func (m *Map) Help() string {
	var sb strings.Builder
	for _, bd := range m.bindings {
		keys := make([]string, len(bd.Keys))
		for i, k := range bd.Keys {
			keys[i] = k.String()
		}
		fmt.Fprintf(&sb, "%-20s %s\n", bd.Name, strings.Join(keys, ", "))
	}
	return sb.String()
}

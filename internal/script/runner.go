// Package script replays recorded pointer and keyboard input against a
// board, one frame per step, for headless rendering and end to end tests.
package script

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/mobile/event/key"

	"github.com/example/sketchboard/internal/geom"
	"github.com/example/sketchboard/internal/shape"
)

// Step is a single action in a script.
type Step struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Shift  bool    `json:"shift,omitempty"`
	Tool   string  `json:"tool,omitempty"`
	Key    string  `json:"key,omitempty"`
	Text   string  `json:"text,omitempty"`
}

// Script is the top level JSON document.
type Script struct {
	Steps []Step `json:"steps"`
}

var actions = map[string]bool{
	"down": true, "move": true, "up": true, "click": true, "drag": true,
	"wait": true, "tool": true, "key": true, "type": true,
	"delete": true, "duplicate": true, "deselect": true, "clear": true,
}

// Target is what a script drives.
type Target interface {
	RegisterDown(p geom.Point, mods shape.Modifiers)
	RegisterMove(p geom.Point, mods shape.Modifiers)
	RegisterUp(p geom.Point, mods shape.Modifiers)
	Tick()
	SelectTool(name string) error
	DeleteSelected()
	DuplicateSelected()
	DeselectAll()
	ClearCanvas()
}

// KeyHandler receives synthesized key presses.
type KeyHandler interface {
	Handle(e key.Event) bool
}

// Runner sequences injected input across frames.
type Runner struct {
	steps     []Step
	cursor    int
	waitCount int
	queue     []func(Target) error
	keys      KeyHandler
	frames    int
	done      bool
}

// Load parses a JSON script and checks every action name.
func Load(data []byte) (*Runner, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !actions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "key" {
			if _, err := ParseKey(st.Key); err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
		}
	}
	return &Runner{steps: s.Steps}, nil
}

// SetKeyHandler routes key and type steps. Without one those steps fail.
func (r *Runner) SetKeyHandler(k KeyHandler) {
	r.keys = k
}

// Done reports whether every step has run.
func (r *Runner) Done() bool {
	return r.done
}

// Frames returns how many frames have been stepped.
func (r *Runner) Frames() int {
	return r.frames
}

// Step advances one frame: it runs at most one pending injection and then
// ticks the target.
func (r *Runner) Step(t Target) error {
	if r.done {
		return nil
	}
	r.frames++
	defer t.Tick()

	var err error
	switch {
	case len(r.queue) > 0:
		err = r.pop(t)
	case r.waitCount > 0:
		r.waitCount--
	case r.cursor < len(r.steps):
		i := r.cursor
		r.cursor++
		if err = r.expand(t, r.steps[i]); err != nil {
			err = fmt.Errorf("step %d (%s): %w", i, r.steps[i].Action, err)
		} else if len(r.queue) > 0 {
			err = r.pop(t)
		}
	}
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.queue) == 0 {
		r.done = true
	}
	return err
}

// Run steps until the script is done. maxFrames bounds the run.
func (r *Runner) Run(t Target, maxFrames int) error {
	for !r.done {
		if maxFrames > 0 && r.frames >= maxFrames {
			return fmt.Errorf("script did not finish within %d frames", maxFrames)
		}
		if err := r.Step(t); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) pop(t Target) error {
	fn := r.queue[0]
	r.queue = r.queue[1:]
	return fn(t)
}

func (r *Runner) inject(fns ...func(Target) error) {
	r.queue = append(r.queue, fns...)
}

func (r *Runner) expand(t Target, st Step) error {
	mods := shape.Modifiers{Shift: st.Shift}
	at := geom.Pt(st.X, st.Y)
	switch st.Action {
	case "down":
		t.RegisterDown(at, mods)
	case "move":
		t.RegisterMove(at, mods)
	case "up":
		t.RegisterUp(at, mods)
	case "click":
		t.RegisterDown(at, mods)
		t.RegisterUp(at, mods)
	case "drag":
		r.injectDrag(geom.Pt(st.FromX, st.FromY), geom.Pt(st.ToX, st.ToY), st.Frames, mods)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "tool":
		return t.SelectTool(st.Tool)
	case "delete":
		t.DeleteSelected()
	case "duplicate":
		t.DuplicateSelected()
	case "deselect":
		t.DeselectAll()
	case "clear":
		t.ClearCanvas()
	case "key":
		e, err := ParseKey(st.Key)
		if err != nil {
			return err
		}
		return r.sendKeys(e)
	case "type":
		events := make([]key.Event, 0, len(st.Text))
		for _, c := range st.Text {
			events = append(events, runeEvent(c))
		}
		return r.sendKeys(events...)
	}
	return nil
}

// injectDrag presses at from, moves towards to over frames-1 frames and
// releases at to on the following frame.
func (r *Runner) injectDrag(from, to geom.Point, frames int, mods shape.Modifiers) {
	if frames < 2 {
		frames = 2
	}
	r.inject(func(t Target) error { t.RegisterDown(from, mods); return nil })
	for i := 1; i < frames; i++ {
		f := float64(i) / float64(frames-1)
		p := geom.Pt(from.X+(to.X-from.X)*f, from.Y+(to.Y-from.Y)*f)
		r.inject(func(t Target) error { t.RegisterMove(p, mods); return nil })
	}
	r.inject(func(t Target) error { t.RegisterUp(to, mods); return nil })
}

func (r *Runner) sendKeys(events ...key.Event) error {
	if r.keys == nil {
		return fmt.Errorf("no key handler")
	}
	for _, e := range events {
		r.keys.Handle(e)
	}
	return nil
}

var namedKeys = map[string]key.Code{
	"esc":       key.CodeEscape,
	"escape":    key.CodeEscape,
	"del":       key.CodeDeleteForward,
	"delete":    key.CodeDeleteForward,
	"backspace": key.CodeDeleteBackspace,
	"enter":     key.CodeReturnEnter,
	"return":    key.CodeReturnEnter,
}

// ParseKey converts a key name or a single character to a press event.
func ParseKey(s string) (key.Event, error) {
	if c, ok := namedKeys[strings.ToLower(s)]; ok {
		return key.Event{Rune: -1, Code: c, Direction: key.DirPress}, nil
	}
	rs := []rune(s)
	if len(rs) != 1 {
		return key.Event{}, fmt.Errorf("unknown key %q", s)
	}
	return runeEvent(rs[0]), nil
}

func runeEvent(c rune) key.Event {
	if c == '\n' {
		return key.Event{Rune: -1, Code: key.CodeReturnEnter, Direction: key.DirPress}
	}
	return key.Event{Rune: c, Direction: key.DirPress}
}

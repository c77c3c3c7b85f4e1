// Package board turns pointer snapshots into shape mutations, one tick at
// a time, and paints the result.
package board

import (
	"fmt"
	"image/color"
	"math"

	"github.com/example/sketchboard/internal/geom"
	"github.com/example/sketchboard/internal/layers"
	"github.com/example/sketchboard/internal/shape"
)

// Mode is the global interaction mode.
type Mode int

const (
	ModeDraw Mode = iota
	ModeSelect
)

func (m Mode) String() string {
	if m == ModeSelect {
		return "select"
	}
	return "draw"
}

// DefaultClickThreshold is the largest press to release travel, per axis,
// still treated as a click.
const DefaultClickThreshold = 5.0

// Snapshot is a pointer event as seen by the next tick.
type Snapshot struct {
	Point geom.Point
	Mods  shape.Modifiers
}

// StylePanel supplies the style new shapes are created with.
type StylePanel interface {
	Config() shape.StyleConfig
}

// PanelSync is implemented by panels that follow the active tool and the
// selected shape's style.
type PanelSync interface {
	Sync(tool *shape.Tool, cfg shape.StyleConfig)
}

// Surface paints a frame.
type Surface interface {
	Draw(paint func(c shape.Canvas))
}

// Board owns the layer store, the in-progress shape and the pointer
// snapshots. All methods must be called from one goroutine.
type Board struct {
	tools  []*shape.Tool
	active *shape.Tool
	mode   Mode

	store   layers.Store
	drawing shape.Slot

	down, move, prevMove, up *Snapshot
	// press is the origin of the current gesture. Unlike down it survives
	// draw dispatch so a click spread over several ticks is still seen.
	press   *Snapshot
	pointer *geom.Point
	cursor  shape.Cursor

	panel   StylePanel
	surface Surface
	overlay shape.Overlay

	clickThreshold  float64
	hoverMargin     float64
	duplicateOffset geom.Point
	selectionColor  color.RGBA
	handleColor    color.RGBA
}

// Option configures a Board.
type Option func(*Board)

// WithPanel sets the style panel.
func WithPanel(p StylePanel) Option {
	return func(b *Board) { b.panel = p }
}

// WithSurface sets the surface frames are painted on.
func WithSurface(s Surface) Option {
	return func(b *Board) { b.surface = s }
}

// WithOverlay sets the text overlay host.
func WithOverlay(o shape.Overlay) Option {
	return func(b *Board) { b.overlay = o }
}

// WithClickThreshold overrides DefaultClickThreshold.
func WithClickThreshold(px float64) Option {
	return func(b *Board) {
		if px >= 0 {
			b.clickThreshold = px
		}
	}
}

// WithHoverMargin sets how far outside a stroke still counts as hovering it.
func WithHoverMargin(px float64) Option {
	return func(b *Board) {
		if px >= 0 {
			b.hoverMargin = px
		}
	}
}

// WithDuplicateOffset sets the per-axis shift of duplicated shapes.
func WithDuplicateOffset(px float64) Option {
	return func(b *Board) { b.duplicateOffset = geom.Pt(px, px) }
}

// WithSelectionColor sets the color of selection outlines and handles.
func WithSelectionColor(outline, handle color.RGBA) Option {
	return func(b *Board) {
		b.selectionColor = outline
		b.handleColor = handle
	}
}

// WithTools replaces the tool registry.
func WithTools(tools []*shape.Tool) Option {
	return func(b *Board) {
		if len(tools) > 0 {
			b.tools = tools
		}
	}
}

// New returns a board in draw mode with the first tool active.
func New(opts ...Option) *Board {
	b := &Board{
		tools:          shape.Tools(),
		mode:           ModeDraw,
		clickThreshold:  DefaultClickThreshold,
		hoverMargin:     shape.DefaultHoverMargin,
		duplicateOffset: geom.Pt(shape.DefaultDuplicateOffset, shape.DefaultDuplicateOffset),
		selectionColor:  color.RGBA{0x7c, 0x3a, 0xed, 0xff},
		handleColor:     color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
	for _, o := range opts {
		o(b)
	}
	b.active = b.tools[0]
	b.cursor = b.active.Cursor
	b.syncPanel(b.active, b.currentConfig())
	return b
}

// RegisterDown records a pointer press. A release still waiting for a tick
// finishes its gesture first, so a fast release and press never merge.
func (b *Board) RegisterDown(p geom.Point, mods shape.Modifiers) {
	if b.up != nil {
		b.consume()
	}
	s := &Snapshot{Point: p, Mods: mods}
	b.down, b.press, b.prevMove = s, s, s
	b.move, b.up = nil, nil
	b.pointer = &p
}

// RegisterMove records a pointer move. Moves between ticks coalesce:
// prevMove only advances when a tick consumes the move.
func (b *Board) RegisterMove(p geom.Point, mods shape.Modifiers) {
	b.move = &Snapshot{Point: p, Mods: mods}
	b.pointer = &p
}

// RegisterUp records a pointer release.
func (b *Board) RegisterUp(p geom.Point, mods shape.Modifiers) {
	b.up = &Snapshot{Point: p, Mods: mods}
	b.pointer = &p
}

// Tick consumes the pending snapshots and renders one frame.
func (b *Board) Tick() {
	b.consume()
	b.updateCursor()
	b.Render()
}

func (b *Board) consume() {
	if b.isClick() {
		at := *b.up
		b.resetSnapshots()
		b.click(at)
		return
	}

	released := b.up != nil
	switch b.mode {
	case ModeSelect:
		b.dragSelection()
	case ModeDraw:
		b.dispatch()
	}
	if released {
		b.resetSnapshots()
	}
}

func (b *Board) isClick() bool {
	if b.press == nil || b.up == nil {
		return false
	}
	dx := math.Abs(b.press.Point.X - b.up.Point.X)
	dy := math.Abs(b.press.Point.Y - b.up.Point.Y)
	return dx <= b.clickThreshold && dy <= b.clickThreshold
}

func (b *Board) click(at Snapshot) {
	if sh := b.drawing.Take(); sh != nil {
		sh.Release()
	}
	prev := b.store.Selected()
	b.deselectAll()

	hit, ok := b.store.Topmost(b.hoveredAt(at.Point))
	if ok {
		b.selectShape(hit)
		for _, p := range prev {
			if p == hit {
				hit.Edit()
				break
			}
		}
		return
	}
	if len(prev) == 0 {
		b.active.Click(b.event(at))
	}
}

// dragSelection moves the selection by the distance the pointer travelled
// since the last tick. A release that was not a click contributes its own
// final step.
func (b *Board) dragSelection() {
	if b.press == nil || b.prevMove == nil {
		return
	}
	var to *Snapshot
	switch {
	case b.up != nil:
		to = b.up
	case b.move != nil:
		to = b.move
	default:
		return
	}
	delta := to.Point.Sub(b.prevMove.Point)
	if delta != (geom.Point{}) {
		for _, sh := range b.store.Selected() {
			sh.Translate(delta)
		}
	}
	b.prevMove, b.move = to, nil
}

func (b *Board) dispatch() {
	if b.panel == nil {
		return
	}
	if b.down != nil {
		ev := b.event(*b.down)
		b.down = nil
		b.active.MouseDown(ev)
	}
	if b.move != nil {
		ev := b.event(*b.move)
		b.prevMove, b.move = b.move, nil
		b.active.MouseMove(ev)
	}
	if b.up != nil {
		ev := b.event(*b.up)
		b.up = nil
		b.active.MouseUp(ev)
	}
}

func (b *Board) event(s Snapshot) shape.Event {
	return shape.Event{
		Point:        s.Point,
		Mods:         s.Mods,
		Slot:         &b.drawing,
		Config:       b.currentConfig(),
		Attach:       b.attach,
		SelectWithin: b.selectWithin,
		Overlay:      b.overlay,
	}
}

func (b *Board) currentConfig() shape.StyleConfig {
	if b.panel == nil {
		return shape.DefaultStyle()
	}
	return b.panel.Config()
}

// attach moves the in-progress shape into the store and selects it.
// The slot is always emptied.
func (b *Board) attach() {
	sh := b.drawing.Take()
	if sh == nil {
		return
	}
	if sh.IsEmpty() || sh.DrawingOnly() {
		sh.Release()
		return
	}
	b.store.DeselectAll()
	sh.Attach()
	b.store.Append(sh)
	b.selectShape(sh)
}

func (b *Board) selectWithin(box geom.BoundingBox) {
	b.store.DeselectAll()
	inside := b.store.Filter(func(sh shape.Shape) bool {
		sb, ok := sh.BoundedRectangle()
		return ok && box.ContainsBox(sb)
	})
	for _, sh := range inside {
		sh.Select()
	}
	if len(inside) > 0 {
		b.mode = ModeSelect
	}
	if len(inside) == 1 {
		b.selectShape(inside[0])
	}
}

// selectShape selects sh and makes its tool active so the panel shows
// its style.
func (b *Board) selectShape(sh shape.Shape) {
	sh.Select()
	b.mode = ModeSelect
	if t, ok := shape.ForKind(b.tools, sh.Kind()); ok {
		b.active = t
	}
	b.syncPanel(b.active, sh.Config())
}

func (b *Board) deselectAll() {
	b.store.DeselectAll()
	b.mode = ModeDraw
}

func (b *Board) syncPanel(t *shape.Tool, cfg shape.StyleConfig) {
	if ps, ok := b.panel.(PanelSync); ok {
		ps.Sync(t, cfg)
	}
}

func (b *Board) resetSnapshots() {
	b.down, b.move, b.prevMove, b.up, b.press = nil, nil, nil, nil, nil
}

func (b *Board) updateCursor() {
	switch {
	case b.pointer != nil && b.hovered(*b.pointer):
		b.cursor = shape.CursorPointer
	case len(b.store.Selected()) > 0:
		b.cursor = shape.CursorMove
	default:
		b.cursor = b.active.Cursor
	}
}

func (b *Board) hovered(p geom.Point) bool {
	_, ok := b.store.Topmost(b.hoveredAt(p))
	return ok
}

func (b *Board) hoveredAt(p geom.Point) func(shape.Shape) bool {
	return func(sh shape.Shape) bool { return sh.IsHovered(p, b.hoverMargin) }
}

// SelectTool activates the named tool. Pending input, the in-progress
// shape and the selection are dropped.
func (b *Board) SelectTool(name string) error {
	t, ok := shape.Lookup(b.tools, name)
	if !ok {
		return fmt.Errorf("unknown tool %q", name)
	}
	b.resetSnapshots()
	if sh := b.drawing.Take(); sh != nil {
		sh.Release()
	}
	b.deselectAll()
	b.active = t
	b.cursor = t.Cursor
	b.syncPanel(t, b.currentConfig())
	return nil
}

// DeleteSelected removes the selected shapes. The topmost remaining shape
// becomes selected so the panel keeps showing a style.
func (b *Board) DeleteSelected() {
	if len(b.store.Selected()) == 0 {
		return
	}
	b.store.Map(func(sh shape.Shape) shape.Shape {
		if sh.IsSelected() {
			return nil
		}
		return sh
	})
	b.deselectAll()
	if top, ok := b.store.Top(); ok {
		b.selectShape(top)
	}
}

// DuplicateSelected attaches a copy of every selected shape and moves the
// selection to the copies.
func (b *Board) DuplicateSelected() {
	sel := b.store.Selected()
	if len(sel) == 0 {
		return
	}
	var copies []shape.Shape
	for _, sh := range sel {
		if d, ok := sh.Duplicate(b.duplicateOffset); ok {
			copies = append(copies, d)
		}
	}
	if len(copies) == 0 {
		return
	}
	b.deselectAll()
	for _, d := range copies {
		d.Attach()
		if b.store.Append(d) {
			b.selectShape(d)
		}
	}
}

// DeselectAll clears the selection and returns to draw mode.
func (b *Board) DeselectAll() {
	b.deselectAll()
}

// ClearCanvas removes every shape.
func (b *Board) ClearCanvas() {
	b.resetSnapshots()
	if sh := b.drawing.Take(); sh != nil {
		sh.Release()
	}
	for _, sh := range b.store.Clear() {
		sh.Release()
	}
	b.mode = ModeDraw
}

// SetStyle replaces the style of every selected shape.
func (b *Board) SetStyle(cfg shape.StyleConfig) {
	for _, sh := range b.store.Selected() {
		sh.SetConfig(cfg)
	}
}

// Mode returns the interaction mode.
func (b *Board) Mode() Mode { return b.mode }

// ActiveTool returns the active tool.
func (b *Board) ActiveTool() *shape.Tool { return b.active }

// Tools returns the tool registry.
func (b *Board) Tools() []*shape.Tool { return b.tools }

// Cursor returns the cursor computed by the last tick.
func (b *Board) Cursor() shape.Cursor { return b.cursor }

// Selected returns the selected shapes, bottom first.
func (b *Board) Selected() []shape.Shape { return b.store.Selected() }

// Layers returns the attached shapes, bottom first.
func (b *Board) Layers() []shape.Shape { return b.store.All() }

// Drawing returns the in-progress shape or nil.
func (b *Board) Drawing() shape.Shape { return b.drawing.Get() }

package app

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/sketchboard/internal/panel"
	"github.com/example/sketchboard/internal/shape"
	"github.com/example/sketchboard/internal/theme"
)

const (
	toolbarHeight = 24
	panelHeight   = 24
	statusHeight  = 20
	chromeHeight  = toolbarHeight + panelHeight
	swatchSize    = 16
)

// ButtonState is how a button is painted.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, th *theme.Theme, state ButtonState)
	Rect() image.Rectangle
	Active() bool
	Activate()
}

// labelButton triggers a named key binding.
type labelButton struct {
	label  string
	rect   image.Rectangle
	active bool
	action func()
}

func (b *labelButton) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	bg, fg := th.ButtonBackground, th.ButtonText
	switch state {
	case StateHover:
		bg = th.ButtonBackgroundHover
	case StatePressed:
		bg, fg = th.ButtonBackgroundActive, th.ButtonTextActive
	}
	draw.Draw(dst, b.rect, &image.Uniform{bg}, image.Point{}, draw.Src)
	drawRect(dst, b.rect, th.ButtonBorder)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: basicfont.Face7x13,
		Dot: fixed.P(b.rect.Min.X+4, b.rect.Min.Y+16)}
	d.DrawString(b.label)
}

func (b *labelButton) Rect() image.Rectangle { return b.rect }
func (b *labelButton) Active() bool          { return b.active }

func (b *labelButton) Activate() {
	if b.action != nil {
		b.action()
	}
}

// swatchButton picks one panel entry. Widths and sizes are shown as
// numbers, colors as filled squares.
type swatchButton struct {
	fill   *color.RGBA
	label  string
	rect   image.Rectangle
	active bool
	pick   func()
}

func (b *swatchButton) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	if b.fill != nil {
		draw.Draw(dst, b.rect, &image.Uniform{*b.fill}, image.Point{}, draw.Src)
	} else {
		draw.Draw(dst, b.rect, &image.Uniform{th.ButtonBackground}, image.Point{}, draw.Src)
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.ButtonText), Face: basicfont.Face7x13,
			Dot: fixed.P(b.rect.Min.X+2, b.rect.Min.Y+12)}
		d.DrawString(b.label)
	}
	if state == StateHover {
		draw.Draw(dst, b.rect, &image.Uniform{color.RGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
	}
	if b.active {
		drawRect(dst, b.rect.Inset(-1), th.Selection)
	}
}

func (b *swatchButton) Rect() image.Rectangle { return b.rect }
func (b *swatchButton) Active() bool          { return b.active }
func (b *swatchButton) Activate()             { b.pick() }

// chrome lays out the toolbar and the style row for the current state.
type chrome struct {
	buttons []Button
	hover   int
}

func measure(label string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(label).Ceil() + 8
}

// toolbarLabel turns "Pointer Tool" bound to S into "S:Pointer".
func toolbarLabel(name, key string) string {
	short, _, _ := strings.Cut(name, " ")
	if key == "" {
		return short
	}
	return key + ":" + short
}

// layout rebuilds every button. It runs after each event so the active
// states follow the board.
func (c *chrome) layout(s *Session, width int) {
	c.buttons = c.buttons[:0]
	x := 0
	active := s.Board.ActiveTool().Name + " Tool"
	for _, bd := range s.Keys.Bindings() {
		key := ""
		if len(bd.Keys) > 0 {
			key = bd.Keys[0].String()
		}
		label := toolbarLabel(bd.Name, key)
		w := measure(label)
		if x+w > width {
			break
		}
		name := bd.Name
		c.buttons = append(c.buttons, &labelButton{
			label:  label,
			rect:   image.Rect(x, 0, x+w, toolbarHeight),
			active: name == active,
			action: func() { _ = s.Keys.Run(name) },
		})
		x += w
	}
	c.layoutPanel(s.Panel, width)
}

func (c *chrome) layoutPanel(p *panel.Panel, width int) {
	caps := p.Caps()
	if caps.NoPanel {
		return
	}
	cfg := p.Config()
	x := 4
	y := toolbarHeight + (panelHeight-swatchSize)/2
	add := func(b *swatchButton) {
		if x+swatchSize > width {
			return
		}
		b.rect = image.Rect(x, y, x+swatchSize, y+swatchSize)
		c.buttons = append(c.buttons, b)
		x += swatchSize + 2
	}
	gap := func() { x += 10 }
	colors := func(set []panel.Swatch, current color.RGBA, pick func(int) error) {
		for i, sw := range set {
			col := sw.Color
			add(&swatchButton{fill: &col, active: col == current, pick: func() { _ = pick(i) }})
		}
		gap()
	}
	numbers := func(set []float64, current float64, pick func(int) error) {
		for i, v := range set {
			add(&swatchButton{label: strconv.FormatFloat(v, 'g', -1, 64), active: v == current, pick: func() { _ = pick(i) }})
		}
		gap()
	}

	if caps.Border {
		colors(panel.BorderColors, cfg.BorderColor, p.SetBorderColor)
	}
	if caps.Background {
		colors(panel.BackgroundColors, cfg.BackgroundColor, p.SetBackgroundColor)
	}
	if caps.BorderWidth {
		numbers(panel.BorderWidths, cfg.BorderWidth, p.SetBorderWidth)
	}
	if caps.Edge {
		for _, e := range []shape.Edge{shape.EdgeRounded, shape.EdgePointy} {
			label := strings.ToUpper(e.String()[:1])
			add(&swatchButton{label: label, active: cfg.Edge == e, pick: func() { p.SetEdge(e) }})
		}
		gap()
	}
	if caps.FontColor {
		colors(panel.FontColors, cfg.FontColor, p.SetFontColor)
	}
	if caps.FontSize {
		numbers(panel.FontSizes, cfg.FontSize, p.SetFontSize)
	}
}

// hit returns the index of the button under p or -1.
func (c *chrome) hit(p image.Point) int {
	for i, b := range c.buttons {
		if p.In(b.Rect()) {
			return i
		}
	}
	return -1
}

func (c *chrome) draw(dst *image.RGBA, th *theme.Theme, width int) {
	draw.Draw(dst, image.Rect(0, 0, width, chromeHeight), &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	for i, b := range c.buttons {
		state := StateDefault
		switch {
		case b.Active():
			state = StatePressed
		case i == c.hover:
			state = StateHover
		}
		b.Draw(dst, th, state)
	}
}

func drawStatus(dst *image.RGBA, th *theme.Theme, r image.Rectangle, text string) {
	draw.Draw(dst, r, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.StatusText), Face: basicfont.Face7x13,
		Dot: fixed.P(r.Min.X+4, r.Min.Y+14)}
	d.DrawString(text)
}

func drawRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}

func fill(dst *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// Package panel is the style panel: the palettes the user picks from and
// the style new shapes are created with.
package panel

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/sketchboard/internal/shape"
)

// Swatch is a named palette entry.
type Swatch struct {
	Name  string
	Color color.RGBA
}

var (
	BackgroundColors = []Swatch{
		{"gray", hex(0xd1d5db)},
		{"blue", hex(0x93c5fd)},
		{"green", hex(0x86efac)},
		{"yellow", hex(0xfde047)},
		{"red", hex(0xfca5a5)},
	}
	BorderColors = []Swatch{
		{"gray", hex(0x374151)},
		{"blue", hex(0x1d4ed8)},
		{"green", hex(0x15803d)},
		{"yellow", hex(0xa16207)},
		{"red", hex(0xb91c1c)},
	}
	FontColors = []Swatch{
		{"black", colornames.Black},
		{"crimson", colornames.Crimson},
		{"royalblue", colornames.Royalblue},
		{"forestgreen", colornames.Forestgreen},
		{"darkorange", colornames.Darkorange},
	}
	BorderWidths = []float64{1, 3, 5}
	FontSizes    = []float64{16, 20, 28, 36}
)

func hex(v uint32) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

// Panel keeps the current style and which controls apply to the active
// tool. Changes are reported through the change callback.
type Panel struct {
	cfg      shape.StyleConfig
	caps     shape.PanelCaps
	tool     string
	onChange func(shape.StyleConfig)
}

// New returns a panel with the first entry of every palette selected.
func New() *Panel {
	return &Panel{cfg: shape.StyleConfig{
		BorderColor:     BorderColors[0].Color,
		BorderWidth:     BorderWidths[0],
		BackgroundColor: BackgroundColors[0].Color,
		Edge:            shape.EdgeRounded,
		FontColor:       FontColors[0].Color,
		FontSize:        FontSizes[1],
	}}
}

// Config returns the current style.
func (p *Panel) Config() shape.StyleConfig {
	return p.cfg
}

// Caps returns the controls that apply to the active tool.
func (p *Panel) Caps() shape.PanelCaps {
	return p.caps
}

// Tool returns the name of the tool the panel follows.
func (p *Panel) Tool() string {
	return p.tool
}

// OnChange registers fn to run after every user change.
func (p *Panel) OnChange(fn func(shape.StyleConfig)) {
	p.onChange = fn
}

// Sync follows the active tool and loads the style of the selection.
func (p *Panel) Sync(t *shape.Tool, cfg shape.StyleConfig) {
	if t != nil {
		p.caps = t.Panel
		p.tool = t.Name
	}
	if t == nil || !t.Panel.NoPanel {
		p.cfg = cfg
	}
}

func (p *Panel) changed() {
	if p.onChange != nil {
		p.onChange(p.cfg)
	}
}

// SetBorderColor picks border color i.
func (p *Panel) SetBorderColor(i int) error {
	if i < 0 || i >= len(BorderColors) {
		return fmt.Errorf("border color %d out of range", i)
	}
	p.cfg.BorderColor = BorderColors[i].Color
	p.changed()
	return nil
}

// SetBackgroundColor picks background color i.
func (p *Panel) SetBackgroundColor(i int) error {
	if i < 0 || i >= len(BackgroundColors) {
		return fmt.Errorf("background color %d out of range", i)
	}
	p.cfg.BackgroundColor = BackgroundColors[i].Color
	p.changed()
	return nil
}

// SetBorderWidth picks border width i.
func (p *Panel) SetBorderWidth(i int) error {
	if i < 0 || i >= len(BorderWidths) {
		return fmt.Errorf("border width %d out of range", i)
	}
	p.cfg.BorderWidth = BorderWidths[i]
	p.changed()
	return nil
}

// SetEdge picks the corner style.
func (p *Panel) SetEdge(e shape.Edge) {
	p.cfg.Edge = e
	p.changed()
}

// SetFontColor picks font color i.
func (p *Panel) SetFontColor(i int) error {
	if i < 0 || i >= len(FontColors) {
		return fmt.Errorf("font color %d out of range", i)
	}
	p.cfg.FontColor = FontColors[i].Color
	p.changed()
	return nil
}

// SetFontSize picks font size i.
func (p *Panel) SetFontSize(i int) error {
	if i < 0 || i >= len(FontSizes) {
		return fmt.Errorf("font size %d out of range", i)
	}
	p.cfg.FontSize = FontSizes[i]
	p.changed()
	return nil
}

// ParseEdge converts "rounded" or "pointy".
func ParseEdge(s string) (shape.Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rounded", "round":
		return shape.EdgeRounded, nil
	case "pointy", "square":
		return shape.EdgePointy, nil
	}
	return shape.EdgeRounded, fmt.Errorf("unknown edge %q", s)
}

// ColorByName looks a color up in the panel palettes and then in the SVG
// color names.
func ColorByName(name string) (color.RGBA, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, set := range [][]Swatch{BorderColors, BackgroundColors, FontColors} {
		for _, s := range set {
			if s.Name == name {
				return s.Color, true
			}
		}
	}
	c, ok := colornames.Map[name]
	return c, ok
}

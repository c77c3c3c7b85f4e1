package panel

import (
	"testing"

	"github.com/example/sketchboard/internal/shape"
)

func TestSyncFollowsTool(t *testing.T) {
	p := New()
	tools := shape.Tools()
	rect, _ := shape.Lookup(tools, "rectangle")
	ptr, _ := shape.Lookup(tools, "pointer")

	cfg := p.Config()
	cfg.BorderWidth = 5
	p.Sync(rect, cfg)
	if !p.Caps().Edge || p.Tool() != "Rectangle" || p.Config().BorderWidth != 5 {
		t.Fatalf("panel did not follow rectangle: %+v", p.Caps())
	}
	p.Sync(ptr, shape.DefaultStyle())
	if !p.Caps().NoPanel {
		t.Error("pointer should hide the panel")
	}
	if p.Config().BorderWidth != 5 {
		t.Error("pointer must not overwrite the style")
	}
}

func TestSettersReportChanges(t *testing.T) {
	p := New()
	var got []shape.StyleConfig
	p.OnChange(func(c shape.StyleConfig) { got = append(got, c) })

	if err := p.SetBorderColor(1); err != nil {
		t.Fatal(err)
	}
	if err := p.SetBackgroundColor(len(BackgroundColors)); err == nil {
		t.Fatal("expected range error")
	}
	if err := p.SetBorderWidth(2); err != nil {
		t.Fatal(err)
	}
	p.SetEdge(shape.EdgePointy)
	if len(got) != 3 {
		t.Fatalf("got %d changes", len(got))
	}
	last := got[len(got)-1]
	if last.BorderColor != BorderColors[1].Color || last.BorderWidth != 5 || last.Edge != shape.EdgePointy {
		t.Errorf("last change %+v", last)
	}
}

func TestColorByName(t *testing.T) {
	if c, ok := ColorByName("Blue"); !ok || c != BorderColors[1].Color {
		t.Errorf("palette blue = %v %v", c, ok)
	}
	if c, ok := ColorByName("teal"); !ok || c.G != 0x80 {
		t.Errorf("teal = %v %v", c, ok)
	}
	if _, ok := ColorByName("nope"); ok {
		t.Error("unknown color resolved")
	}
}

func TestParseEdge(t *testing.T) {
	if e, err := ParseEdge("Pointy"); err != nil || e != shape.EdgePointy {
		t.Errorf("ParseEdge(Pointy) = %v %v", e, err)
	}
	if _, err := ParseEdge("wavy"); err == nil {
		t.Error("expected error")
	}
}

package shape

import (
	"testing"

	"github.com/example/sketchboard/internal/geom"
	"github.com/example/sketchboard/internal/shape/shapetest"
)

func placed(t *testing.T) (*Text, *fakeOverlay) {
	t.Helper()
	o := &fakeOverlay{}
	txt := PlaceText(o, geom.Pt(100, 50), DefaultStyle())
	txt.Attach()
	return txt, o
}

func TestTextBoundsFollowElement(t *testing.T) {
	txt, o := placed(t)
	if txt.IsEmpty() {
		t.Fatal("placed text should not be empty")
	}
	b, ok := txt.BoundedRectangle()
	if !ok {
		t.Fatal("expected bounds")
	}
	want := geom.BoundingBox{TopLeft: geom.Pt(100, 50), BottomRight: geom.Pt(180, 74)}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
	o.elements[0].w = 120
	if !txt.IsHovered(geom.Pt(210, 60), 0) {
		t.Error("bounds should track the measured element")
	}
	if NewText(DefaultStyle()).IsHovered(geom.Pt(0, 0), 0) {
		t.Error("text without element should never be hovered")
	}
}

func TestTextFocusDrivesSelection(t *testing.T) {
	txt, o := placed(t)
	el := o.elements[0]
	el.Focus()
	if !txt.IsSelected() {
		t.Fatal("focus should select the text")
	}
	el.Blur()
	if txt.IsSelected() || txt.IsEditing() || el.Visible() {
		t.Fatal("blur should deselect and hide")
	}
	txt.Edit()
	if !txt.IsEditing() || !el.Visible() || !el.IsFocused() || !txt.IsSelected() {
		t.Fatal("edit should show and focus the element")
	}
}

func TestTextTranslate(t *testing.T) {
	txt, o := placed(t)
	el := o.elements[0]
	txt.Edit()
	txt.Translate(geom.Pt(5, 5))
	if el.pos != geom.Pt(100, 50) {
		t.Fatal("translate should be ignored while editing")
	}
	txt.Deselect()
	txt.Translate(geom.Pt(5, 7))
	if el.pos != geom.Pt(105, 57) {
		t.Errorf("element at %v", el.pos)
	}
	b, _ := txt.BoundedRectangle()
	if b.TopLeft != geom.Pt(105, 57) {
		t.Errorf("text at %v", b.TopLeft)
	}
}

func TestTextDrawFirstLine(t *testing.T) {
	txt, o := placed(t)
	o.elements[0].content = "hello\nworld"
	var rec shapetest.Recorder
	txt.Edit()
	txt.Draw(&rec)
	if rec.Count("text") != 0 {
		t.Fatal("text should not be painted while editing")
	}
	txt.Deselect()
	txt.Draw(&rec)
	if rec.Count(`text "hello" 100,70 20`) != 1 {
		t.Errorf("calls %v", rec.Calls)
	}
}

func TestTextDuplicate(t *testing.T) {
	if _, ok := NewText(DefaultStyle()).Duplicate(geom.Pt(20, 20)); ok {
		t.Fatal("text without element must not duplicate")
	}
	txt, o := placed(t)
	o.elements[0].content = "copy me"
	d, ok := txt.Duplicate(geom.Pt(20, 20))
	if !ok {
		t.Fatal("duplicate failed")
	}
	if len(o.elements) != 2 {
		t.Fatalf("expected cloned element, have %d", len(o.elements))
	}
	clone := o.elements[1]
	if clone.id != d.ID() || clone.content != "copy me" || clone.pos != geom.Pt(120, 70) {
		t.Errorf("clone = %+v", clone)
	}
	if d.IsAttached() || d.IsSelected() {
		t.Error("duplicate should be detached")
	}
	d.Release()
	if !clone.removed || o.elements[0].removed {
		t.Error("release should remove only the clone's element")
	}
}

func TestTextSetConfigResizesElement(t *testing.T) {
	txt, o := placed(t)
	cfg := txt.Config()
	cfg.FontSize = 32
	txt.SetConfig(cfg)
	if o.elements[0].fontSize != 32 {
		t.Errorf("font size = %v", o.elements[0].fontSize)
	}
}

func TestDefaultHandlers(t *testing.T) {
	rect, _ := Lookup(Tools(), "rectangle")
	var slot Slot
	attached := 0
	ev := Event{Slot: &slot, Config: DefaultStyle(), Attach: func() { attached++ }}

	ev.Point = geom.Pt(10, 10)
	rect.MouseDown(ev)
	first := slot.Get()
	if first == nil {
		t.Fatal("down should create a shape")
	}
	rect.MouseDown(ev)
	if slot.Get() != first {
		t.Fatal("down must not replace an in-progress shape")
	}
	ev.Point = geom.Pt(40, 30)
	rect.MouseMove(ev)
	b, ok := first.BoundedRectangle()
	if !ok || b.BottomRight != geom.Pt(40, 30) || b.TopLeft != geom.Pt(10, 10) {
		t.Fatalf("bounds = %+v", b)
	}
	rect.MouseUp(ev)
	if attached != 1 {
		t.Fatalf("up should attach once, got %d", attached)
	}
}

func TestTextToolPlacesOnClick(t *testing.T) {
	tool, _ := ForKind(Tools(), KindText)
	o := &fakeOverlay{}
	var slot Slot
	var got Shape
	ev := Event{
		Point:   geom.Pt(30, 40),
		Slot:    &slot,
		Config:  DefaultStyle(),
		Overlay: o,
		Attach: func() {
			got = slot.Take()
			got.Attach()
		},
	}
	tool.MouseDown(ev)
	if !slot.Empty() {
		t.Fatal("text tool must ignore mouse down")
	}
	tool.Click(ev)
	if got == nil || !got.IsEditing() || !o.elements[0].IsFocused() {
		t.Fatal("click should place a focused text")
	}
	got = nil
	tool.Click(ev)
	if got != nil {
		t.Fatal("click while an element has focus must not place text")
	}
}

func TestLookup(t *testing.T) {
	tools := Tools()
	for _, name := range []string{"Pointer", "pen", "RECTANGLE", "oval", "text"} {
		if _, ok := Lookup(tools, name); !ok {
			t.Errorf("tool %q not found", name)
		}
	}
	if _, ok := Lookup(tools, "eraser"); ok {
		t.Error("unexpected eraser tool")
	}
}

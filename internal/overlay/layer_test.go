package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/sketchboard/internal/geom"
)

func TestMeasureGrowsWithContent(t *testing.T) {
	w0, h0, err := Measure("", 20)
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if w0 <= 0 || h0 <= 0 {
		t.Fatalf("empty text should reserve room, got %vx%v", w0, h0)
	}
	w1, h1, _ := Measure("hello world", 20)
	if w1 <= w0 || h1 != h0 {
		t.Errorf("one line: %vx%v vs empty %vx%v", w1, h1, w0, h0)
	}
	_, h2, _ := Measure("hello\nworld", 20)
	if h2 != 2*h1 {
		t.Errorf("two lines height %v, want %v", h2, 2*h1)
	}
	wBig, _, _ := Measure("hello world", 40)
	if wBig <= w1 {
		t.Errorf("larger font should be wider: %v <= %v", wBig, w1)
	}
}

func TestFocusIsExclusive(t *testing.T) {
	l := New()
	a := l.Create("a", geom.Pt(0, 0), 20).(*Element)
	b := l.Create("b", geom.Pt(0, 40), 20).(*Element)
	var events []string
	a.OnFocus(func() { events = append(events, "a focus") })
	a.OnBlur(func() { events = append(events, "a blur") })
	b.OnFocus(func() { events = append(events, "b focus") })

	if l.Focused() {
		t.Fatal("new elements should not have focus")
	}
	a.Focus()
	a.Focus()
	b.Focus()
	want := []string{"a focus", "a blur", "b focus"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
	if l.Active() != b {
		t.Error("b should be active")
	}
}

func TestCloneAndRemove(t *testing.T) {
	l := New()
	a := l.Create("a", geom.Pt(5, 5), 20).(*Element)
	a.Insert("hi")
	a.Insert("!")
	a.Backspace()
	c := a.Clone("c")
	if c.Content() != "hi" || c.Position() != geom.Pt(5, 5) || c.Visible() {
		t.Errorf("clone = %+v", c)
	}
	if l.Len() != 2 {
		t.Fatalf("len = %d", l.Len())
	}
	a.Focus()
	a.Remove()
	if l.Focused() || l.Len() != 1 {
		t.Error("removed element should be gone and unfocused")
	}
	if _, ok := l.Lookup("c"); !ok {
		t.Error("clone should remain")
	}
}

func TestDrawVisibleOnly(t *testing.T) {
	l := New()
	e := l.Create("a", geom.Pt(10, 10), 20)
	e.SetContent("x")
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	black := color.RGBA{0, 0, 0, 255}
	l.Draw(dst, image.Point{}, black, black)
	if dst.RGBAAt(8, 8) != (color.RGBA{}) {
		t.Fatal("hidden element drawn")
	}
	e.Show()
	l.Draw(dst, image.Point{}, black, black)
	if dst.RGBAAt(8, 8) != black {
		t.Errorf("outline missing, got %v", dst.RGBAAt(8, 8))
	}
}

package shape

import (
	"errors"
	"testing"

	"github.com/example/sketchboard/internal/geom"
	"github.com/example/sketchboard/internal/shape/shapetest"
)

func drawBox(s Shape, from, to geom.Point, mods Modifiers) {
	s.Move(from, Modifiers{})
	s.Move(to, mods)
}

func TestRectangleMoveAndBounds(t *testing.T) {
	r := NewRectangle(DefaultStyle())
	if !r.IsEmpty() {
		t.Fatal("new rectangle should be empty")
	}
	if _, ok := r.BoundedRectangle(); ok {
		t.Fatal("incomplete rectangle should have no bounds")
	}
	r.Move(geom.Pt(50, 50), Modifiers{})
	if !r.IsEmpty() {
		t.Fatal("rectangle with only start should be empty")
	}
	r.Move(geom.Pt(10, 10), Modifiers{})
	b, ok := r.BoundedRectangle()
	if !ok {
		t.Fatal("expected bounds")
	}
	want := geom.BoundingBox{TopLeft: geom.Pt(10, 10), BottomRight: geom.Pt(50, 50)}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}

func TestBoxConstrainKeepsDirection(t *testing.T) {
	tests := []struct {
		name string
		to   geom.Point
		want geom.Point
	}{
		{"down right", geom.Pt(130, 110), geom.Pt(130, 130)},
		{"up left", geom.Pt(90, 60), geom.Pt(60, 60)},
		{"down left", geom.Pt(95, 140), geom.Pt(60, 140)},
		{"up right", geom.Pt(150, 80), geom.Pt(150, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range []Shape{NewRectangle(DefaultStyle()), NewEllipse(DefaultStyle())} {
				drawBox(s, geom.Pt(100, 100), tt.to, Modifiers{Shift: true})
				b, _ := s.BoundedRectangle()
				want := geom.NewBoundingBox(geom.Pt(100, 100), tt.want)
				if b != want {
					t.Errorf("%s bounds = %+v, want %+v", s.Kind(), b, want)
				}
				if b.Width() != b.Height() {
					t.Errorf("%s not square: %vx%v", s.Kind(), b.Width(), b.Height())
				}
			}
		})
	}
}

func TestPointerIgnoresConstrain(t *testing.T) {
	p := NewPointer(DefaultStyle())
	drawBox(p, geom.Pt(0, 0), geom.Pt(40, 10), Modifiers{Shift: true})
	b, _ := p.BoundedRectangle()
	if b.Width() != 40 || b.Height() != 10 {
		t.Errorf("marquee was constrained: %+v", b)
	}
}

func TestRectangleDraw(t *testing.T) {
	cfg := DefaultStyle()
	r := NewRectangle(cfg)
	var rec shapetest.Recorder
	r.Draw(&rec)
	if len(rec.Calls) != 0 {
		t.Fatalf("incomplete rectangle drew %v", rec.Calls)
	}
	drawBox(r, geom.Pt(50, 40), geom.Pt(10, 10), Modifiers{})
	r.Draw(&rec)
	if rec.Count("rrect 10,10 40x30 r10") != 2 || rec.Count("fill") != 1 || rec.Count("stroke") != 1 {
		t.Errorf("unexpected calls %v", rec.Calls)
	}

	cfg.Edge = EdgePointy
	r.SetConfig(cfg)
	rec.Reset()
	r.Draw(&rec)
	if rec.Count("rect 10,10 40x30") != 2 || rec.Count("rrect") != 0 {
		t.Errorf("pointy rectangle calls %v", rec.Calls)
	}
}

func TestDrawDoesNotMutate(t *testing.T) {
	r := NewRectangle(DefaultStyle())
	drawBox(r, geom.Pt(1, 2), geom.Pt(3, 4), Modifiers{})
	before, _ := r.BoundedRectangle()
	var rec shapetest.Recorder
	for i := 0; i < 3; i++ {
		r.Draw(&rec)
	}
	after, _ := r.BoundedRectangle()
	if before != after || r.IsSelected() || r.IsAttached() {
		t.Errorf("draw changed the shape: %+v -> %+v", before, after)
	}
}

func TestEllipseHover(t *testing.T) {
	e := NewEllipse(DefaultStyle())
	drawBox(e, geom.Pt(0, 0), geom.Pt(80, 40), Modifiers{})
	if !e.IsHovered(geom.Pt(40, 20), 0) {
		t.Error("center should be hovered")
	}
	if e.IsHovered(geom.Pt(40+40*1.0001, 20), DefaultHoverMargin) {
		t.Error("point just past rx should not be hovered")
	}
	if e.IsHovered(geom.Pt(2, 2), DefaultHoverMargin) {
		t.Error("bounding box corner should not be hovered")
	}
	var rec shapetest.Recorder
	e.Draw(&rec)
	if rec.Count("ellipse 40,20 40x20") != 2 {
		t.Errorf("ellipse calls %v", rec.Calls)
	}
}

func TestFlatEllipseIsEmpty(t *testing.T) {
	for _, end := range []geom.Point{geom.Pt(10, 60), geom.Pt(60, 10)} {
		e := NewEllipse(DefaultStyle())
		drawBox(e, geom.Pt(10, 10), end, Modifiers{})
		if !e.IsEmpty() {
			t.Errorf("ellipse to %v should be empty", end)
		}
	}
}

func TestFreehandHover(t *testing.T) {
	cfg := DefaultStyle()
	cfg.BorderWidth = 1
	f := NewFreehand(cfg)
	f.Move(geom.Pt(0, 0), Modifiers{})
	f.Move(geom.Pt(3, 0), Modifiers{})
	f.Move(geom.Pt(6, 0), Modifiers{})
	if !f.IsHovered(geom.Pt(4, 4), DefaultHoverMargin) {
		t.Error("4px from the stroke should be hovered with width 1")
	}
	if f.IsHovered(geom.Pt(4, 7), DefaultHoverMargin) {
		t.Error("7px from the stroke should not be hovered with width 1")
	}
	if !f.IsHovered(geom.Pt(4, 7), 9) {
		t.Error("a wider margin should reach 7px")
	}
	single := NewFreehand(cfg)
	single.Move(geom.Pt(10, 10), Modifiers{})
	if !single.IsHovered(geom.Pt(12, 12), DefaultHoverMargin) {
		t.Error("single point stroke should be hovered nearby")
	}
}

func TestFreehandConstrain(t *testing.T) {
	f := NewFreehand(DefaultStyle())
	f.Move(geom.Pt(10, 10), Modifiers{})
	f.Move(geom.Pt(30, 14), Modifiers{Shift: true})
	f.Move(geom.Pt(12, 40), Modifiers{Shift: true})
	got := f.Points()
	want := []geom.Point{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 10, Y: 40}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFreehandDrawSmoothing(t *testing.T) {
	f := NewFreehand(DefaultStyle())
	for _, p := range []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 10}} {
		f.Move(p, Modifiers{})
	}
	var rec shapetest.Recorder
	f.Draw(&rec)
	want := []string{"move 0,0", "line 5,0", "quad 10,0 15,5", "line 20,10"}
	for i, w := range want {
		if rec.Calls[i] != w {
			t.Fatalf("call %d = %q, want %q (all %v)", i, rec.Calls[i], w, rec.Calls)
		}
	}
	if rec.Count("stroke") != 1 {
		t.Errorf("expected one stroke, got %v", rec.Calls)
	}
}

func TestDuplicateOffsetsEveryPoint(t *testing.T) {
	rect := NewRectangle(DefaultStyle())
	drawBox(rect, geom.Pt(10, 10), geom.Pt(50, 50), Modifiers{})
	oval := NewEllipse(DefaultStyle())
	drawBox(oval, geom.Pt(5, 6), geom.Pt(7, 8), Modifiers{})
	pen := NewFreehand(DefaultStyle())
	pen.Move(geom.Pt(1, 1), Modifiers{})
	pen.Move(geom.Pt(9, 4), Modifiers{})

	for _, src := range []Shape{rect, oval, pen} {
		src.Attach()
		src.Select()
		d, ok := src.Duplicate(geom.Pt(20, 20))
		if !ok {
			t.Fatalf("%s: duplicate failed", src.Kind())
		}
		if d.ID() == src.ID() {
			t.Errorf("%s: duplicate shares id", src.Kind())
		}
		if d.IsAttached() || d.IsSelected() {
			t.Errorf("%s: duplicate should be detached and unselected", src.Kind())
		}
		sb, _ := src.BoundedRectangle()
		db, _ := d.BoundedRectangle()
		if db.TopLeft != sb.TopLeft.Add(geom.Pt(20, 20)) || db.BottomRight != sb.BottomRight.Add(geom.Pt(20, 20)) {
			t.Errorf("%s: duplicate bounds %+v from %+v", src.Kind(), db, sb)
		}
	}

	d, _ := pen.Duplicate(geom.Pt(20, 20))
	d.Translate(geom.Pt(100, 100))
	if pen.Points()[0] != geom.Pt(1, 1) {
		t.Error("duplicate shares point storage with its source")
	}
	pd := d.(*Freehand).Points()
	if pd[1] != geom.Pt(129, 124) {
		t.Errorf("duplicate point = %v", pd[1])
	}
}

func TestSelectRequiresAttach(t *testing.T) {
	r := NewRectangle(DefaultStyle())
	r.Select()
	if r.IsSelected() {
		t.Fatal("unattached shape became selected")
	}
	r.Attach()
	r.Select()
	if !r.IsSelected() {
		t.Fatal("attached shape should be selectable")
	}
	r.Edit()
	if r.IsEditing() {
		t.Error("edit should not change a rectangle")
	}
}

func TestPointerIsDrawingOnly(t *testing.T) {
	p := NewPointer(DefaultStyle())
	if !p.DrawingOnly() {
		t.Fatal("pointer must be drawing only")
	}
	p.Attach()
	if p.IsAttached() {
		t.Fatal("pointer must refuse attach")
	}
	drawBox(p, geom.Pt(0, 0), geom.Pt(10, 10), Modifiers{})
	var rec shapetest.Recorder
	p.Draw(&rec)
	if rec.Calls[0] != "dash [15 5]" || rec.Calls[len(rec.Calls)-1] != "nodash" {
		t.Errorf("marquee not dashed: %v", rec.Calls)
	}
}

func TestUnimplementedPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		var ue *UnimplementedError
		if !errors.As(err, &ue) || ue.Kind != KindText || ue.Op != "move" {
			t.Fatalf("unexpected fault %v", err)
		}
	}()
	NewText(DefaultStyle()).Move(geom.Pt(1, 1), Modifiers{})
}

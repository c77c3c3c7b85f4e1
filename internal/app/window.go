package app

import (
	"context"
	"image"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchboard/internal/frame"
	"github.com/example/sketchboard/internal/geom"
	"github.com/example/sketchboard/internal/shape"
)

const messageDuration = 2 * time.Second

// tickEvent is posted by the frame loop so ticks run on the event
// goroutine.
type tickEvent struct{}

// Window shows a session in a shiny window.
type Window struct {
	session *Session
	title   string
	onClose func()

	chrome       chrome
	width        int
	height       int
	pressed      bool
	message      string
	messageUntil time.Time
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithTitle sets the window title.
func WithTitle(title string) WindowOption { return func(w *Window) { w.title = title } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) WindowOption { return func(w *Window) { w.onClose = fn } }

// NewWindow wraps s. The session's status messages are shown in the
// window once it runs.
func NewWindow(s *Session, opts ...WindowOption) *Window {
	w := &Window{session: s, title: "Sketchboard", chrome: chrome{hover: -1}}
	for _, o := range opts {
		o(w)
	}
	s.status = w.setMessage
	return w
}

// Run executes the UI loop using shiny's driver. It blocks until the
// window closes.
func (w *Window) Run() { driver.Main(w.Main) }

// Main runs the event loop on an existing screen.
func (w *Window) Main(s screen.Screen) {
	defer func() {
		if w.onClose != nil {
			w.onClose()
		}
	}()

	cw, ch, _ := w.session.Surface.Size()
	w.width, w.height = cw, ch+chromeHeight+statusHeight
	win, err := s.NewWindow(&screen.NewWindowOptions{Width: w.width, Height: w.height, Title: w.title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer win.Release()

	var loop frame.Loop
	loop.Start(context.Background(), w.session.Config.Board.FrameInterval(), func() { win.Send(tickEvent{}) })
	defer loop.Stop()

	w.chrome.layout(w.session, w.width)
	for {
		switch e := win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			w.width, w.height = e.WidthPx, e.HeightPx
			w.chrome.layout(w.session, w.width)
			win.Send(paint.Event{})
		case tickEvent:
			w.session.Tick()
			w.chrome.layout(w.session, w.width)
			w.drawFrame(s, win)
		case paint.Event:
			w.drawFrame(s, win)
		case mouse.Event:
			w.handleMouse(e)
		case key.Event:
			w.session.Keys.Handle(e)
		case error:
			log.Printf("window: %v", e)
		}
	}
}

// canvasPoint converts window pixels into canvas coordinates.
func (w *Window) canvasPoint(x, y float32) geom.Point {
	_, _, ratio := w.session.Surface.Size()
	p := geom.ClientToCanvas(geom.Pt(float64(x), float64(y)), geom.Pt(0, chromeHeight))
	return geom.Pt(p.X/ratio, p.Y/ratio)
}

func (w *Window) handleMouse(e mouse.Event) {
	pt := image.Pt(int(e.X), int(e.Y))
	if !w.pressed && pt.Y < chromeHeight {
		idx := w.chrome.hit(pt)
		w.chrome.hover = idx
		if idx >= 0 && e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
			w.chrome.buttons[idx].Activate()
			w.chrome.layout(w.session, w.width)
		}
		return
	}
	w.chrome.hover = -1

	b := w.session.Board
	p := w.canvasPoint(e.X, e.Y)
	mods := shape.Modifiers{Shift: e.Modifiers&key.ModShift != 0}
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		w.pressed = true
		b.RegisterDown(p, mods)
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		if !w.pressed {
			return
		}
		w.pressed = false
		b.RegisterUp(p, mods)
	case e.Direction == mouse.DirNone:
		b.RegisterMove(p, mods)
	}
}

func (w *Window) setMessage(msg string) {
	w.message = msg
	w.messageUntil = time.Now().Add(messageDuration)
}

func (w *Window) statusText() string {
	if w.message != "" && time.Now().Before(w.messageUntil) {
		return w.message
	}
	return w.session.Status()
}

func (w *Window) drawFrame(s screen.Screen, win screen.Window) {
	if w.width <= 0 || w.height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Point{w.width, w.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	dst := b.RGBA()
	th := w.session.Theme
	fill(dst, dst.Bounds(), th.Background)
	w.session.Surface.CopyTo(dst, image.Pt(0, chromeHeight))
	w.session.Overlay.Draw(dst, image.Pt(0, chromeHeight), th.OverlayText, th.OverlayBorder)
	w.chrome.draw(dst, th, w.width)
	drawStatus(dst, th, image.Rect(0, w.height-statusHeight, w.width, w.height), w.statusText())

	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}

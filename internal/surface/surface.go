// Package surface is the double buffered canvas the board paints on.
// Frames are drawn off-screen with gg and copied to the front image in one
// step.
package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/example/sketchboard/internal/shape"
)

// Surface holds the back buffer and the front image shown to the user.
type Surface struct {
	mu         sync.RWMutex
	width      int
	height     int
	ratio      float64
	back       *gg.Context
	front      *image.RGBA
	background color.RGBA
	fonts      *text.FontSource
	faces      map[float64]text.Face
}

// New returns a surface cleared to background. Setup must be called
// before anything is drawn.
func New(background color.RGBA) *Surface {
	return &Surface{background: background, ratio: 1}
}

// Setup sizes the buffers for a canvas of width x height logical pixels
// shown at the given device pixel ratio.
func (s *Surface) Setup(width, height int, ratio float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("surface: invalid size %dx%d", width, height)
	}
	if ratio <= 0 {
		ratio = 1
	}
	if s.fonts == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return fmt.Errorf("surface: load font: %w", err)
		}
		s.fonts = src
		s.faces = make(map[float64]text.Face)
	}
	pw, ph := int(float64(width)*ratio), int(float64(height)*ratio)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.back != nil {
		if err := s.back.Close(); err != nil {
			log.Printf("surface: close back buffer: %v", err)
		}
	}
	s.width, s.height, s.ratio = width, height, ratio
	s.back = gg.NewContext(pw, ph)
	s.back.SetLineCap(gg.LineCapRound)
	s.back.SetLineJoin(gg.LineJoinRound)
	s.front = image.NewRGBA(image.Rect(0, 0, pw, ph))
	draw.Draw(s.front, s.front.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
	return nil
}

// SetBackground changes the clear color used by the next frame.
func (s *Surface) SetBackground(c color.RGBA) {
	s.background = c
}

// Size returns the logical size and pixel ratio.
func (s *Surface) Size() (width, height int, ratio float64) {
	return s.width, s.height, s.ratio
}

// Draw clears the back buffer, runs paint on it and copies the result to
// the front image. It does nothing before Setup.
func (s *Surface) Draw(paint func(c shape.Canvas)) {
	if s.back == nil {
		return
	}
	s.back.ClearWithColor(gg.FromColor(s.background))
	s.back.Push()
	s.back.Scale(s.ratio, s.ratio)
	paint(&canvas{Context: s.back, surface: s})
	s.back.Pop()
	s.back.ClearPath()
	if err := s.back.FlushGPU(); err != nil {
		log.Printf("surface: flush: %v", err)
	}
	frame := s.back.Image()

	s.mu.Lock()
	draw.Draw(s.front, s.front.Bounds(), frame, image.Point{}, draw.Src)
	s.mu.Unlock()
}

// Image returns a copy of the front buffer.
func (s *Surface) Image() *image.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.front == nil {
		return nil
	}
	out := image.NewRGBA(s.front.Bounds())
	copy(out.Pix, s.front.Pix)
	return out
}

// CopyTo draws the front buffer onto dst at offset.
func (s *Surface) CopyTo(dst draw.Image, offset image.Point) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.front == nil {
		return
	}
	draw.Draw(dst, s.front.Bounds().Add(offset), s.front, image.Point{}, draw.Src)
}

// Close releases the back buffer.
func (s *Surface) Close() error {
	if s.back == nil {
		return nil
	}
	err := s.back.Close()
	s.back = nil
	return err
}

func (s *Surface) face(size float64) text.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := s.fonts.Face(size)
	s.faces[size] = f
	return f
}

// canvas adapts gg.Context to shape.Canvas. Text is drawn in device
// pixels because gg places glyphs without the current transform.
type canvas struct {
	*gg.Context
	surface *Surface
}

func (c *canvas) DrawText(s string, x, y, size float64) {
	r := c.surface.ratio
	c.SetFont(c.surface.face(size * r))
	c.DrawString(s, x*r, y*r)
}

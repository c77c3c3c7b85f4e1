package overlay

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce  sync.Once
	fontErr   error
	regular   *opentype.Font
	faceCache sync.Map // map[float64]font.Face
)

const defaultSize = 20

func faceForSize(size float64) (font.Face, error) {
	if size <= 0 {
		size = defaultSize
	}
	fontOnce.Do(func() {
		regular, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("parse goregular: %w", fontErr)
	}
	if face, ok := faceCache.Load(size); ok {
		return face.(font.Face), nil
	}
	face, err := opentype.NewFace(regular, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	faceCache.Store(size, face)
	return face, nil
}

// Measure returns the box covered by text at size. Every line adds one
// line height and an empty text still reserves room for the caret.
func Measure(text string, size float64) (width, height float64, err error) {
	face, err := faceForSize(size)
	if err != nil {
		return 0, 0, err
	}
	metrics := face.Metrics()
	lineHeight := float64((metrics.Ascent + metrics.Descent).Ceil())
	drawer := &font.Drawer{Face: face}
	lines := strings.Split(text, "\n")
	for _, l := range lines {
		width = math.Max(width, float64(drawer.MeasureString(l).Ceil()))
	}
	width = math.Max(width, math.Ceil(size/2))
	return width, lineHeight * float64(len(lines)), nil
}

// DrawText renders every line of text with its top left corner at (x, y).
func DrawText(dst *image.RGBA, x, y int, text string, col color.Color, size float64) error {
	face, err := faceForSize(size)
	if err != nil {
		return err
	}
	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()
	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	for i, l := range strings.Split(text, "\n") {
		drawer.Dot = fixed.P(x, y+i*lineHeight+metrics.Ascent.Ceil())
		drawer.DrawString(l)
	}
	return nil
}

// Package render post-processes exported boards.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow drawn behind an exported board.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
	// Margin is transparent space kept around the board on every side.
	Margin int
}

// DefaultShadowOptions returns a soft shadow that suits a full board.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  16,
		Offset:  image.Pt(8, 8),
		Opacity: 0.45,
		Margin:  8,
	}
}

// ApplyShadow draws img over a blurred copy of its alpha. The result has a
// zero origin; at is where img's top-left corner landed. With no opacity
// img is returned unchanged.
func ApplyShadow(img *image.RGBA, opts ShadowOptions) (out *image.RGBA, at image.Point) {
	if img == nil || img.Bounds().Empty() || opts.Opacity <= 0 {
		return img, image.Point{}
	}
	opacity := min(opts.Opacity, 1)
	radius := max(opts.Radius, 0)
	margin := max(opts.Margin, 0)

	content := img.Bounds().Sub(img.Bounds().Min)
	shadow := content.Inset(-radius).Add(opts.Offset)
	canvas := content.Inset(-margin).Union(shadow)
	shift := canvas.Min.Mul(-1)

	mask := image.NewGray(image.Rect(0, 0, shadow.Dx(), shadow.Dy()))
	for y := 0; y < content.Dy(); y++ {
		for x := 0; x < content.Dx(); x++ {
			a := img.RGBAAt(img.Bounds().Min.X+x, img.Bounds().Min.Y+y).A
			mask.SetGray(x+radius, y+radius, color.Gray{Y: a})
		}
	}
	boxBlur(mask, radius)

	out = image.NewRGBA(canvas.Sub(canvas.Min))
	tint := image.NewUniform(color.RGBA{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(out, shadow.Add(shift), tint, image.Point{}, mask, image.Point{}, draw.Over)
	at = content.Min.Add(shift)
	draw.Draw(out, content.Add(shift), img, img.Bounds().Min, draw.Over)
	return out, at
}

// boxBlur blurs g in place with a separable box of the given radius.
// Windows are clipped at the edges.
func boxBlur(g *image.Gray, radius int) {
	if radius <= 0 {
		return
	}
	w, h := g.Bounds().Dx(), g.Bounds().Dy()
	line := make([]uint8, max(w, h))
	out := make([]uint8, max(w, h))
	for y := 0; y < h; y++ {
		row := g.Pix[y*g.Stride : y*g.Stride+w]
		blurLine(out[:w], row, radius)
		copy(row, out[:w])
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			line[y] = g.Pix[y*g.Stride+x]
		}
		blurLine(out[:h], line[:h], radius)
		for y := 0; y < h; y++ {
			g.Pix[y*g.Stride+x] = out[y]
		}
	}
}

// blurLine writes the sliding window mean of src into dst.
func blurLine(dst, src []uint8, radius int) {
	n := len(src)
	sum, lo, hi := 0, 0, -1
	for i := 0; i < n; i++ {
		for hi < min(i+radius, n-1) {
			hi++
			sum += int(src[hi])
		}
		for lo < i-radius {
			sum -= int(src[lo])
			lo++
		}
		dst[i] = uint8(sum / (hi - lo + 1))
	}
}

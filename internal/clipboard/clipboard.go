// Package clipboard places exported boards on the system clipboard as PNG.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
)

var (
	errNoDisplay = errors.New("clipboard requires DISPLAY or WAYLAND_DISPLAY")
	errNoImage   = errors.New("nothing to copy")
)

// CopyImage encodes img as PNG and publishes it on the clipboard.
func CopyImage(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return errNoImage
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode clipboard image: %w", err)
	}
	return writePNG(buf.Bytes())
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

package theme

import (
	"image/color"
)

// Theme defines the colors of the window chrome and the board.
type Theme struct {
	Name string

	// Window
	Background color.RGBA
	Foreground color.RGBA

	// Toolbar, style panel and status bar
	ToolbarBackground      color.RGBA
	ButtonBackground       color.RGBA
	ButtonBackgroundHover  color.RGBA
	ButtonBackgroundActive color.RGBA
	ButtonText             color.RGBA
	ButtonTextActive       color.RGBA
	ButtonBorder           color.RGBA
	StatusBackground       color.RGBA
	StatusText             color.RGBA

	// Board
	CanvasBackground color.RGBA
	Selection        color.RGBA
	SelectionHandle  color.RGBA
	OverlayText      color.RGBA
	OverlayBorder    color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                   "Default",
		Background:             color.RGBA{0xf3, 0xf4, 0xf6, 0xff},
		Foreground:             color.RGBA{0x11, 0x18, 0x27, 0xff},
		ToolbarBackground:      color.RGBA{0xe5, 0xe7, 0xeb, 0xff},
		ButtonBackground:       color.RGBA{0xf9, 0xfa, 0xfb, 0xff},
		ButtonBackgroundHover:  color.RGBA{0xe0, 0xe7, 0xff, 0xff},
		ButtonBackgroundActive: color.RGBA{0xc7, 0xd2, 0xfe, 0xff},
		ButtonText:             color.RGBA{0x37, 0x41, 0x51, 0xff},
		ButtonTextActive:       color.RGBA{0x1e, 0x1b, 0x4b, 0xff},
		ButtonBorder:           color.RGBA{0x9c, 0xa3, 0xaf, 0xff},
		StatusBackground:       color.RGBA{0xe5, 0xe7, 0xeb, 0xff},
		StatusText:             color.RGBA{0x37, 0x41, 0x51, 0xff},
		CanvasBackground:       color.RGBA{0xff, 0xff, 0xff, 0xff},
		Selection:              color.RGBA{0x7c, 0x3a, 0xed, 0xff},
		SelectionHandle:        color.RGBA{0xff, 0xff, 0xff, 0xff},
		OverlayText:            color.RGBA{0x11, 0x18, 0x27, 0xff},
		OverlayBorder:          color.RGBA{0x7c, 0x3a, 0xed, 0xff},
	}
}

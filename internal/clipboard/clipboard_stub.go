//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import "errors"

func writePNG([]byte) error {
	return errors.New("clipboard images are not supported on this platform")
}

package theme

import "embed"

// EmbeddedThemes holds the built-in theme files.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

package main

import (
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/example/sketchboard/internal/board"
	"github.com/example/sketchboard/internal/keymap"
	"github.com/example/sketchboard/internal/overlay"
	"github.com/example/sketchboard/internal/shape"
)

// toolsCmd lists the tools and the keyboard shortcuts.
type toolsCmd struct {
	*root
	fs *flag.FlagSet
}

func (t *toolsCmd) FlagSet() *flag.FlagSet {
	return t.fs
}

func parseToolsCmd(args []string, r *root) (*toolsCmd, error) {
	fs := flag.NewFlagSet("tools", flag.ExitOnError)
	t := &toolsCmd{root: r.subcommand("tools"), fs: fs}
	fs.Usage = usageFunc(t)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *toolsCmd) Run() error {
	b := board.New()
	tw := tabwriter.NewWriter(t.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOOL\tKEY\tCURSOR\tSTYLE")
	for _, tool := range b.Tools() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", tool.Name, strings.ToUpper(string(tool.Shortcut)), tool.Cursor, capsString(tool.Panel))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(t.out())
	fmt.Fprint(t.out(), keymap.New(b, overlay.New()).Help())
	return nil
}

func capsString(c shape.PanelCaps) string {
	if c.NoPanel {
		return "-"
	}
	var parts []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{c.Border, "border"},
		{c.BorderWidth, "width"},
		{c.Background, "background"},
		{c.Edge, "edge"},
		{c.FontColor, "font color"},
		{c.FontSize, "font size"},
	} {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, ", ")
}

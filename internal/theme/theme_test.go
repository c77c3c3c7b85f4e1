package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#7C3AED", color.RGBA{0x7c, 0x3a, 0xed, 0xff}, false},
		{"#DDD6FE80", color.RGBA{0xdd, 0xd6, 0xfe, 0x80}, false},
		{"teal", color.RGBA{0, 0x80, 0x80, 0xff}, false},
		{"#12345", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
		{"chartreusey", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v", err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 0xff}, {0xdd, 0xd6, 0xfe, 0x80}} {
		got, err := ParseColor(Hex(c))
		if err != nil || got != c {
			t.Errorf("%v -> %s -> %v %v", c, Hex(c), got, err)
		}
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Mine\nselection: #FF0000\nunknown: #000000\n# comment\n"))
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "Mine" || th.Selection != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("theme = %+v", th)
	}
	if th.CanvasBackground != Default().CanvasBackground {
		t.Error("unset fields should keep defaults")
	}
	if _, err := Parse(strings.NewReader("Selection: nope")); err == nil {
		t.Error("expected color error")
	}
}

func TestBuiltinThemesParse(t *testing.T) {
	names := Builtin()
	if len(names) != 2 || names[0] != "dark" || names[1] != "default" {
		t.Fatalf("builtin = %v", names)
	}
	l := &Loader{}
	for _, n := range names {
		th, err := l.Load(n)
		if err != nil {
			t.Fatalf("load %s: %v", n, err)
		}
		if !strings.EqualFold(th.Name, n) {
			t.Errorf("theme %s named %s", n, th.Name)
		}
	}
	dark, _ := l.Load("Dark")
	if dark.Background == Default().Background {
		t.Error("dark theme should override the background")
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ocean.theme")
	if err := os.WriteFile(path, []byte("Name: Ocean\nCanvasBackground: aliceblue\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir, Custom: map[string]*Theme{"inline": {Name: "inline"}}}

	if th, err := l.Load(path); err != nil || th.Name != "Ocean" {
		t.Errorf("by path: %v %v", th, err)
	}
	if th, err := l.Load("ocean"); err != nil || th.CanvasBackground != (color.RGBA{0xf0, 0xf8, 0xff, 0xff}) {
		t.Errorf("by config dir: %v %v", th, err)
	}
	if th, err := l.Load("inline"); err != nil || th.Name != "inline" {
		t.Errorf("inline: %v %v", th, err)
	}
	if th, err := l.Load(""); err != nil || th.Name != "Default" {
		t.Errorf("empty: %v %v", th, err)
	}
	if _, err := l.Load("missing"); err == nil {
		t.Error("expected not found")
	}
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvVar, "dark")
	if got := Resolve("mine", "cfg"); got != "mine" {
		t.Errorf("flag should win, got %s", got)
	}
	if got := Resolve("", "cfg"); got != "dark" {
		t.Errorf("env should beat config, got %s", got)
	}
	t.Setenv(EnvVar, "")
	if got := Resolve("", "cfg"); got != "cfg" {
		t.Errorf("config fallback, got %s", got)
	}
}

func TestFieldsCoverEveryColor(t *testing.T) {
	th := Default()
	fields := Fields(th)
	if len(fields) != 16 {
		t.Fatalf("got %d fields", len(fields))
	}
	if fields[0].Name != "Background" || fields[0].Color != th.Background {
		t.Errorf("first field %+v", fields[0])
	}
}

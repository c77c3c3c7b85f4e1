package notify

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/sketchboard/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func recordingNotifier(prefs Preferences) (*Notifier, *[]sent) {
	var got []sent
	n := New(prefs)
	n.send = func(title, body string, opts platform.Options) error {
		_, err := os.Stat(opts.IconPath)
		got = append(got, sent{title, body, opts, opts.IconPath != "" && err == nil})
		return nil
	}
	return n, &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	n, got := recordingNotifier(DefaultPreferences())
	n.Export("board.png")
	n.Copy("", nil)
	if len(*got) != 0 {
		t.Fatalf("sent %v", *got)
	}
	var nilNotifier *Notifier
	nilNotifier.Enable(EventCopy, true)
	nilNotifier.Copy("x", nil)
}

func TestExportUsesFileAsIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n, got := recordingNotifier(DefaultPreferences())
	n.Enable(EventExport, true)
	n.Export(path)
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	s := (*got)[0]
	if s.title != "Sketchboard" || s.body != "Exported "+path || s.opts.IconPath != path {
		t.Errorf("sent %+v", s)
	}
}

func TestCopyPreviewIsCleanedUp(t *testing.T) {
	n, got := recordingNotifier(DefaultPreferences())
	n.Enable(EventCopy, true)
	n.Copy("", image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	s := (*got)[0]
	if s.body != "Copied board to clipboard" || !s.iconExisted {
		t.Errorf("sent %+v", s)
	}
	if _, err := os.Stat(s.opts.IconPath); !os.IsNotExist(err) {
		t.Errorf("preview left behind: %v", err)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("SKETCHBOARD_NOTIFY_TITLE", "Board")
	t.Setenv("SKETCHBOARD_NOTIFY_COPY_TEXT", "Clipped %s")
	prefs := LoadPreferences()
	if prefs.Title != "Board" || prefs.Events[EventCopy].Template != "Clipped %s" {
		t.Errorf("prefs = %+v", prefs)
	}
	if prefs.Events[EventExport].Template != "Exported %s" {
		t.Error("export template should keep its default")
	}
}

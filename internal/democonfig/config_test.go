package democonfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Window.Width != 800 || c.Window.Height != 480 {
		t.Errorf("window = %dx%d, want 800x480", c.Window.Width, c.Window.Height)
	}
	if c.Drag.Threshold != 0 {
		t.Errorf("threshold = %v, want 0", c.Drag.Threshold)
	}
	if c.Drag.PreviewAlpha != 0.5 {
		t.Errorf("preview alpha = %v, want 0.5", c.Drag.PreviewAlpha)
	}
	if got := len(c.Options()); got != 4 {
		t.Errorf("Options() returned %d options, want 4", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	data := []byte(`
script = "drag.json"

[window]
title = "bins"
width = 1024

[drag]
threshold = 3.5
preview_alpha = 0.25
end_drag_on_teardown = true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Window.Title != "bins" || c.Window.Width != 1024 || c.Window.Height != 480 {
		t.Errorf("window = %+v", c.Window)
	}
	if c.Drag.Threshold != 3.5 || c.Drag.PreviewAlpha != 0.25 || !c.Drag.EndDragOnTeardown {
		t.Errorf("drag = %+v", c.Drag)
	}
	if c.Script != "drag.json" {
		t.Errorf("script = %q, want drag.json", c.Script)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("POINTERDND_DRAG_THRESHOLD", "8")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Drag.Threshold != 8 {
		t.Errorf("threshold = %v, want 8", c.Drag.Threshold)
	}
}

func TestLoadRejectsBadAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	if err := os.WriteFile(path, []byte("[drag]\npreview_alpha = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for preview_alpha > 1")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

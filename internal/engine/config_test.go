package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Width != 1024 || config.Height != 768 {
		t.Errorf("unexpected default window size %dx%d", config.Width, config.Height)
	}
	if config.TextureDir != "textures" {
		t.Errorf("unexpected default texture dir %q", config.TextureDir)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}

	if config != DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", config)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	want := DefaultConfig()
	want.Width = 1920
	want.Height = 1080
	want.Title = "Tabletop"
	want.VSync = false
	want.TextureDir = "assets"

	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"width": 800}`), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Width != 800 {
		t.Errorf("width = %d, want 800", config.Width)
	}
	// Fields absent from the file keep their defaults.
	if config.Height != DefaultConfig().Height {
		t.Errorf("height = %d, want default %d", config.Height, DefaultConfig().Height)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseBranch != "origin/dev" {
		t.Errorf("BaseBranch = %q, expected %q", cfg.BaseBranch, "origin/dev")
	}
	if cfg.Remote != "origin" {
		t.Errorf("Remote = %q, expected %q", cfg.Remote, "origin")
	}
	if cfg.IgnorePattern != "-eld" {
		t.Errorf("IgnorePattern = %q, expected %q", cfg.IgnorePattern, "-eld")
	}
	if cfg.WindowDays != 60 {
		t.Errorf("WindowDays = %d, expected 60", cfg.WindowDays)
	}
	if !cfg.Fetch {
		t.Errorf("Fetch = false, expected true")
	}
	if cfg.Jobs != 1 {
		t.Errorf("Jobs = %d, expected 1", cfg.Jobs)
	}
	if cfg.Output.Format != "console" {
		t.Errorf("Output.Format = %q, expected %q", cfg.Output.Format, "console")
	}
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BaseBranch != "origin/dev" {
		t.Errorf("BaseBranch = %q, expected default", cfg.BaseBranch)
	}
}

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"baseBranch": "origin/main", "windowDays": 90, "fetch": false}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.BaseBranch != "origin/main" {
		t.Errorf("BaseBranch = %q, expected %q", cfg.BaseBranch, "origin/main")
	}
	if cfg.WindowDays != 90 {
		t.Errorf("WindowDays = %d, expected 90", cfg.WindowDays)
	}
	if cfg.Fetch {
		t.Errorf("Fetch = true, expected false")
	}
	// Untouched fields keep their defaults.
	if cfg.IgnorePattern != "-eld" {
		t.Errorf("IgnorePattern = %q, expected default", cfg.IgnorePattern)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for invalid JSON, got nil")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.BaseBranch = "origin/main"
	cfg.IgnoreGlobs = []string{"release/**"}

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.BaseBranch != "origin/main" {
		t.Errorf("BaseBranch = %q, expected %q", loaded.BaseBranch, "origin/main")
	}
	if len(loaded.IgnoreGlobs) != 1 || loaded.IgnoreGlobs[0] != "release/**" {
		t.Errorf("IgnoreGlobs = %v, expected [release/**]", loaded.IgnoreGlobs)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.AppPath != "/Applications/TIDAL.app" {
		t.Errorf("AppPath = %q, want %q", cfg.AppPath, "/Applications/TIDAL.app")
	}
	if cfg.ProcessName != "TIDAL" {
		t.Errorf("ProcessName = %q, want %q", cfg.ProcessName, "TIDAL")
	}
	if cfg.SentinelTitle != "TIDAL" {
		t.Errorf("SentinelTitle = %q, want %q", cfg.SentinelTitle, "TIDAL")
	}
	if cfg.PlaybackMenu != "Playback" {
		t.Errorf("PlaybackMenu = %q, want %q", cfg.PlaybackMenu, "Playback")
	}
	if cfg.PollDuration() != 10*time.Second {
		t.Errorf("PollDuration() = %v, want %v", cfg.PollDuration(), 10*time.Second)
	}
	if cfg.ScriptTimeoutDuration() != 5*time.Second {
		t.Errorf("ScriptTimeoutDuration() = %v, want %v", cfg.ScriptTimeoutDuration(), 5*time.Second)
	}
	if cfg.OutputFormat != "{{.Short}}" {
		t.Errorf("OutputFormat = %q, want %q", cfg.OutputFormat, "{{.Short}}")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TIDALBAR_POLL_INTERVAL", "3")
	t.Setenv("TIDALBAR_SCRIPT_TIMEOUT", "0")
	t.Setenv("TIDALBAR_SENTINEL_TITLE", "Launch Tidal")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.PollInterval != 3 {
		t.Errorf("PollInterval = %d, want 3", cfg.PollInterval)
	}
	if cfg.ScriptTimeoutDuration() != 0 {
		t.Errorf("ScriptTimeoutDuration() = %v, want 0", cfg.ScriptTimeoutDuration())
	}
	if cfg.SentinelTitle != "Launch Tidal" {
		t.Errorf("SentinelTitle = %q, want %q", cfg.SentinelTitle, "Launch Tidal")
	}
}

func TestLoad_InvalidPollInterval(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TIDALBAR_POLL_INTERVAL", "-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.PollInterval != 10 {
		t.Errorf("PollInterval = %d, want fallback 10", cfg.PollInterval)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	cfg.AppPath = "/Applications/TIDAL Beta.app"
	cfg.OutputWidth = 24

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "tidalbar", "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if loaded.AppPath != cfg.AppPath {
		t.Errorf("AppPath = %q, want %q", loaded.AppPath, cfg.AppPath)
	}
	if loaded.OutputWidth != 24 {
		t.Errorf("OutputWidth = %d, want 24", loaded.OutputWidth)
	}
}

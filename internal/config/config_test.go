package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsErrNotConfiguredWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := Load()
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestLoadOrDefaultFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadOrDefault()
	if err != nil {
		t.Fatalf("load or default: %v", err)
	}
	if cfg.Theme != DefaultTheme || cfg.Device != DefaultDevice {
		t.Fatalf("expected default theme/device, got %q/%q", cfg.Theme, cfg.Device)
	}
	if cfg.ExportDir != filepath.Join(home, "mdcards") {
		t.Fatalf("unexpected export dir %q", cfg.ExportDir)
	}
	if cfg.DraftsDir != filepath.Join(home, ".mdcards", "drafts") {
		t.Fatalf("unexpected drafts dir %q", cfg.DraftsDir)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Config{
		ExportDir:    "~/cards",
		Theme:        " Night ",
		Device:       "tablet",
		Author:       "  Jo  ",
		FontSize:     "18",
		FontWeight:   "600",
		HistoryLimit: 200,
		Keybindings:  map[string]string{"undo": "ctrl+u"},
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	exists, err := Exists()
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if want := filepath.Join(home, "cards"); loaded.ExportDir != want {
		t.Fatalf("expected export dir %q, got %q", want, loaded.ExportDir)
	}
	if loaded.Theme != "night" {
		t.Fatalf("expected theme %q, got %q", "night", loaded.Theme)
	}
	if loaded.Author != "Jo" {
		t.Fatalf("expected trimmed author, got %q", loaded.Author)
	}
	if loaded.FontSize != "18px" || loaded.FontWeight != "600" {
		t.Fatalf("unexpected font settings %q/%q", loaded.FontSize, loaded.FontWeight)
	}
	if loaded.HistoryLimit != 200 {
		t.Fatalf("expected history limit 200, got %d", loaded.HistoryLimit)
	}
	if loaded.Keybindings["undo"] != "ctrl+u" {
		t.Fatalf("expected keybinding override to persist, got %v", loaded.Keybindings)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config path: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected config mode 0600, got %o", perm)
	}
}

func TestNormalizeReplacesInvalidValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name        string
		in          Config
		wantSize    string
		wantWeight  string
		wantHistory int
	}{
		{name: "zero values", in: Config{}, wantSize: "14px", wantWeight: "400", wantHistory: 50},
		{name: "too small font", in: Config{FontSize: "8px"}, wantSize: "14px", wantWeight: "400", wantHistory: 50},
		{name: "too large font", in: Config{FontSize: "40px"}, wantSize: "14px", wantWeight: "400", wantHistory: 50},
		{name: "garbage font", in: Config{FontSize: "large"}, wantSize: "14px", wantWeight: "400", wantHistory: 50},
		{name: "bounds font", in: Config{FontSize: "32PX"}, wantSize: "32px", wantWeight: "400", wantHistory: 50},
		{name: "bad weight", in: Config{FontWeight: "bold"}, wantSize: "14px", wantWeight: "400", wantHistory: 50},
		{name: "light weight", in: Config{FontWeight: "300"}, wantSize: "14px", wantWeight: "300", wantHistory: 50},
		{name: "negative history", in: Config{HistoryLimit: -1}, wantSize: "14px", wantWeight: "400", wantHistory: 50},
		{name: "huge history", in: Config{HistoryLimit: 5000}, wantSize: "14px", wantWeight: "400", wantHistory: 50},
		{name: "small history", in: Config{HistoryLimit: 1}, wantSize: "14px", wantWeight: "400", wantHistory: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			if got.FontSize != tt.wantSize {
				t.Fatalf("font size: got %q, want %q", got.FontSize, tt.wantSize)
			}
			if got.FontWeight != tt.wantWeight {
				t.Fatalf("font weight: got %q, want %q", got.FontWeight, tt.wantWeight)
			}
			if got.HistoryLimit != tt.wantHistory {
				t.Fatalf("history limit: got %d, want %d", got.HistoryLimit, tt.wantHistory)
			}
		})
	}
}

func TestRestoreDefaultsResetsFontsOnly(t *testing.T) {
	cfg := Config{
		Theme:      "mint",
		FontFamily: "Georgia",
		FontSize:   "20px",
		FontWeight: "700",
	}
	got := RestoreDefaults(cfg)
	if got.FontFamily != "" || got.FontSize != DefaultFontSize || got.FontWeight != DefaultFontWeight {
		t.Fatalf("expected default fonts, got %+v", got)
	}
	if got.Theme != "mint" {
		t.Fatalf("expected theme untouched, got %q", got.Theme)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]string{
		"~":          home,
		"~/cards":    filepath.Join(home, "cards"),
		"/abs/cards": "/abs/cards",
		"rel":        "rel",
	}
	for in, want := range tests {
		got, err := ExpandHome(in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", in, got, want)
		}
	}
}

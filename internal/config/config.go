package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/treykane/md-cards/internal/history"
	"github.com/treykane/md-cards/internal/logging"
)

const (
	configDirName  = ".mdcards"
	configFileName = "config.json"
)

// Font defaults mirror the editor's stock appearance.
const (
	DefaultFontSize   = "14px"
	DefaultFontWeight = "400"
	DefaultTheme      = "classic"
	DefaultDevice     = "phone"
	DefaultGlamour    = "dark"

	minFontSize     = 10
	maxFontSize     = 32
	maxHistoryLimit = 1000
)

var validFontWeights = map[string]bool{
	"300": true,
	"400": true,
	"500": true,
	"600": true,
	"700": true,
}

var log = logging.New("config")

var ErrNotConfigured = errors.New("md-cards is not configured")

// Config stores user-defined md-cards settings.
type Config struct {
	ExportDir    string            `json:"export_dir"`
	DraftsDir    string            `json:"drafts_dir"`
	Theme        string            `json:"theme"`
	Device       string            `json:"device"`
	Author       string            `json:"author,omitempty"`
	FontFamily   string            `json:"font_family,omitempty"`
	FontSize     string            `json:"font_size"`
	FontWeight   string            `json:"font_weight"`
	HistoryLimit int               `json:"history_limit"`
	GlamourStyle string            `json:"glamour_style,omitempty"`
	Keybindings  map[string]string `json:"keybindings,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		ExportDir:    filepath.Join(home, "mdcards"),
		DraftsDir:    filepath.Join(home, configDirName, "drafts"),
		Theme:        DefaultTheme,
		Device:       DefaultDevice,
		FontSize:     DefaultFontSize,
		FontWeight:   DefaultFontWeight,
		HistoryLimit: history.DefaultCapacity,
		GlamourStyle: DefaultGlamour,
	}, nil
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat config path: %w", err)
}

// Load reads and normalizes the saved configuration. A missing file yields
// ErrNotConfigured so callers can fall back to Default.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return Normalize(cfg)
}

// LoadOrDefault is Load with the ErrNotConfigured case mapped to Default.
func LoadOrDefault() (Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNotConfigured) {
		return Default()
	}
	return cfg, err
}

// Save normalizes and writes configuration to disk.
func Save(cfg Config) error {
	cfg, err := Normalize(cfg)
	if err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

// Normalize fills defaults for empty fields, expands "~" in paths, and
// replaces invalid font and history values with their defaults.
func Normalize(cfg Config) (Config, error) {
	defaults, err := Default()
	if err != nil {
		return Config{}, err
	}

	if cfg.ExportDir, err = normalizeDir(cfg.ExportDir, defaults.ExportDir); err != nil {
		return Config{}, fmt.Errorf("invalid export_dir: %w", err)
	}
	if cfg.DraftsDir, err = normalizeDir(cfg.DraftsDir, defaults.DraftsDir); err != nil {
		return Config{}, fmt.Errorf("invalid drafts_dir: %w", err)
	}

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if cfg.Theme == "" {
		cfg.Theme = defaults.Theme
	}
	cfg.Device = strings.ToLower(strings.TrimSpace(cfg.Device))
	if cfg.Device == "" {
		cfg.Device = defaults.Device
	}
	cfg.Author = strings.TrimSpace(cfg.Author)
	cfg.FontFamily = strings.TrimSpace(cfg.FontFamily)

	if size, ok := NormalizeFontSize(cfg.FontSize); ok {
		cfg.FontSize = size
	} else {
		if cfg.FontSize != "" {
			log.Warn("invalid font_size, using default", "value", cfg.FontSize)
		}
		cfg.FontSize = DefaultFontSize
	}

	cfg.FontWeight = strings.TrimSpace(cfg.FontWeight)
	if !validFontWeights[cfg.FontWeight] {
		if cfg.FontWeight != "" {
			log.Warn("invalid font_weight, using default", "value", cfg.FontWeight)
		}
		cfg.FontWeight = DefaultFontWeight
	}

	if cfg.HistoryLimit <= 0 || cfg.HistoryLimit > maxHistoryLimit {
		if cfg.HistoryLimit != 0 {
			log.Warn("invalid history_limit, using default", "value", cfg.HistoryLimit)
		}
		cfg.HistoryLimit = history.DefaultCapacity
	}

	cfg.GlamourStyle = strings.ToLower(strings.TrimSpace(cfg.GlamourStyle))
	if cfg.GlamourStyle == "" {
		cfg.GlamourStyle = defaults.GlamourStyle
	}
	return cfg, nil
}

// RestoreDefaults resets the font settings and leaves everything else as is.
func RestoreDefaults(cfg Config) Config {
	cfg.FontFamily = ""
	cfg.FontSize = DefaultFontSize
	cfg.FontWeight = DefaultFontWeight
	return cfg
}

// NormalizeFontSize accepts "NN" or "NNpx" within the supported range and
// returns the canonical "NNpx" form.
func NormalizeFontSize(value string) (string, bool) {
	trimmed := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(value)), "px")
	size, err := strconv.Atoi(trimmed)
	if err != nil || size < minFontSize || size > maxFontSize {
		return "", false
	}
	return strconv.Itoa(size) + "px", true
}

func normalizeDir(path, fallback string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = fallback
	}

	expanded, err := ExpandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}

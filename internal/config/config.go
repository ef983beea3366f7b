// Package config loads the tabdeck configuration file.
//
// Configuration lives in ~/.config/tabdeck/config.toml. A missing file
// yields the built-in defaults; a present but invalid file is a hard error,
// never silently clamped.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds everything the demo needs to build a controller.
type Config struct {
	Tabs          []string
	AnimationMs   int
	Alignment     string // "left" or "center"
	FixedWidth    bool
	FixedFraction float64
	Spacing       float64
	Padding       float64
	Scale         float64
	Theme         string
}

const defaultConfigPath = "~/.config/tabdeck/config.toml"

func defaults() Config {
	return Config{
		Tabs:          []string{"Overview", "Queue", "History", "Peers", "Settings"},
		AnimationMs:   300,
		Alignment:     "left",
		FixedFraction: 0,
		Spacing:       1,
		Padding:       1,
		Scale:         1,
		Theme:         "Dracula",
	}
}

// Load locates and parses the config, falling back to defaults when the
// file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Tabs          []string `toml:"tabs"`
		AnimationMs   *int     `toml:"animation_ms"`
		Alignment     string   `toml:"alignment"`
		FixedWidth    *bool    `toml:"fixed_width"`
		FixedFraction *float64 `toml:"fixed_fraction"`
		Spacing       *float64 `toml:"spacing"`
		Padding       *float64 `toml:"padding"`
		Scale         *float64 `toml:"scale"`
		Theme         string   `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Tabs != nil {
		cfg.Tabs = raw.Tabs
	}
	if raw.AnimationMs != nil {
		cfg.AnimationMs = *raw.AnimationMs
	}
	if a := strings.TrimSpace(raw.Alignment); a != "" {
		cfg.Alignment = a
	}
	if raw.FixedWidth != nil {
		cfg.FixedWidth = *raw.FixedWidth
	}
	if raw.FixedFraction != nil {
		cfg.FixedFraction = *raw.FixedFraction
	}
	if raw.Spacing != nil {
		cfg.Spacing = *raw.Spacing
	}
	if raw.Padding != nil {
		cfg.Padding = *raw.Padding
	}
	if raw.Scale != nil {
		cfg.Scale = *raw.Scale
	}
	if t := strings.TrimSpace(raw.Theme); t != "" {
		cfg.Theme = t
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Tabs) == 0 {
		return fmt.Errorf("config: tabs must name at least one item")
	}
	if c.AnimationMs < 0 {
		return fmt.Errorf("config: animation_ms %d, want >= 0", c.AnimationMs)
	}
	switch c.Alignment {
	case "left", "center":
	default:
		return fmt.Errorf("config: alignment %q, want left or center", c.Alignment)
	}
	if c.FixedFraction < 0 || c.FixedFraction > 1 {
		return fmt.Errorf("config: fixed_fraction %v, want [0, 1]", c.FixedFraction)
	}
	if c.Spacing < 0 {
		return fmt.Errorf("config: spacing %v, want >= 0", c.Spacing)
	}
	if c.Padding < 0 {
		return fmt.Errorf("config: padding %v, want >= 0", c.Padding)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale %v, want > 0", c.Scale)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

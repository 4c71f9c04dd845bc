// Package config handles the settings file and home directory resolution.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-ports/zoo/internal/palette"
)

// FileName is the settings file kept in the home directory.
const FileName = "settings.yaml"

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

// Settings is the persisted user configuration.
type Settings struct {
	ScreenColors map[palette.ScreenID]palette.Color `yaml:"screen_colors"`
	IgnoreCase   bool                               `yaml:"ignore_case"` // name lookups use case folding
	Seed         bool                               `yaml:"seed"`        // start with sample records
}

// Default returns Settings populated with the built-in screen colours.
func Default() *Settings {
	return &Settings{
		ScreenColors: palette.DefaultColors(),
	}
}

// Load reads a settings file from path.
// If the file does not exist it returns Default() with no error.
// Missing keys retain their default values; unknown screens or colours are
// skipped with a warning.
func Load(path string) (*Settings, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	// Unmarshal into a plain map so we can apply only the keys that are present.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if colors, ok := raw["screen_colors"].(map[string]any); ok {
		for k, v := range colors {
			id, err := palette.ParseScreen(k)
			if err != nil {
				slog.Warn("settings: skipping screen", "screen", k, "err", err)
				continue
			}
			name, _ := v.(string)
			col, err := palette.ParseColor(name)
			if err != nil {
				slog.Warn("settings: skipping color", "screen", k, "color", v, "err", err)
				continue
			}
			cfg.ScreenColors[id] = col
		}
	}
	if v, ok := raw["ignore_case"].(bool); ok {
		cfg.IgnoreCase = v
	}
	if v, ok := raw["seed"].(bool); ok {
		cfg.Seed = v
	}

	return cfg, nil
}

// Save writes s to path, creating the parent directory when needed.
func Save(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o600)
}

// ---------------------------------------------------------------------------
// Home resolution
// ---------------------------------------------------------------------------

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}

// ResolveHome returns the settings directory and the source of the resolution.
// Priority: ZOO_HOME env → ~/.zoo
// source is one of "env" or "default".
func ResolveHome() (path, source string) {
	if env := os.Getenv("ZOO_HOME"); env != "" {
		p, err := normalizePath(env)
		if err == nil {
			return p, "env"
		}
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".zoo"), "default"
}

// GetHome returns the resolved settings directory.
func GetHome() string {
	path, _ := ResolveHome()
	return path
}

// SettingsPath returns the settings file location inside home.
func SettingsPath(home string) string {
	return filepath.Join(home, FileName)
}

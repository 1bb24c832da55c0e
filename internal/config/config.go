// Package config handles global tourtag configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/tourtag/internal/categories"
	"github.com/aidanlsb/tourtag/internal/paths"
)

// Config represents the global tourtag configuration.
type Config struct {
	// CategoriesFile overrides the category list location
	// (default: <task data dir>/tour-categories.txt).
	CategoriesFile string `toml:"categories_file"`

	// HooksDir overrides where `tourtag install` writes hook scripts
	// (default: <task data dir>/hooks).
	HooksDir string `toml:"hooks_dir"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and rendered guides.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for code blocks in guides.
	CodeTheme string `toml:"code_theme"`
}

// CategoriesPath returns the category file to load. An explicit flag value
// wins, then categories_file, then the default inside the task data
// directory (dataDir may be empty).
func (c *Config) CategoriesPath(flagValue, dataDir string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return paths.ExpandHome(v)
	}
	if c != nil {
		if v := strings.TrimSpace(c.CategoriesFile); v != "" {
			return paths.ExpandHome(v)
		}
	}
	return categories.DefaultPath(dataDir)
}

// HooksPath returns the directory hook scripts are installed into.
func (c *Config) HooksPath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return paths.ExpandHome(v)
	}
	if c != nil {
		if v := strings.TrimSpace(c.HooksDir); v != "" {
			return paths.ExpandHome(v)
		}
	}
	return paths.HooksDir("")
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// ResolveConfigPath resolves the effective config path from an optional override.
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return paths.ExpandHome(explicitConfigPath)
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/tourtag/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "tourtag", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "tourtag", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

const defaultConfig = `# tourtag configuration

# Category list used to recognize tour.<category> projects.
# Plain text (one per line) or .yaml/.yml.
# categories_file = "~/.task/tour-categories.txt"

# Where 'tourtag install' writes on-add-tour / on-modify-tour.
# hooks_dir = "~/.task/hooks"

# Optional accent color for terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

// CreateDefault writes a commented config template to path if no file
// exists there. It reports whether a file was created.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}

// Package config handles reading and writing ~/.wharf/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version  int           `yaml:"version"`
	Provider string        `yaml:"provider"` // "claude" | "gemini"
	Roots    RootsConfig   `yaml:"roots"`
	Display  DisplayConfig `yaml:"display"`
}

// RootsConfig overrides the provider config directories. Empty values fall
// back to the conventional locations under the home directory.
type RootsConfig struct {
	Claude string `yaml:"claude"`
	Gemini string `yaml:"gemini"`
}

// DisplayConfig controls rendering.
type DisplayConfig struct {
	// FallbackHeight is the viewport height used when the terminal size
	// cannot be determined.
	FallbackHeight int    `yaml:"fallback_height"`
	CodeTheme      string `yaml:"code_theme"`     // chroma style name
	MarkdownStyle  string `yaml:"markdown_style"` // glamour style name, "auto" probes the terminal
}

const configDirName = ".wharf"
const configFile = "config.yaml"

// Dir returns the wharf config directory under home.
func Dir(home string) string {
	return filepath.Join(home, configDirName)
}

// ReadConfig reads config.yaml from the wharf directory under home.
// Returns an error if the file is not found or the YAML is malformed.
func ReadConfig(home string) (*Config, error) {
	path := filepath.Join(Dir(home), configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml under home, creating the wharf
// directory if it does not exist.
func WriteConfig(home string, cfg *Config) error {
	dirPath := Dir(home)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Provider: "claude",
		Display: DisplayConfig{
			FallbackHeight: 24,
			CodeTheme:      "monokai",
			MarkdownStyle:  "auto",
		},
	}
}

// Load reads the config under home, falling back to defaults when no config
// file exists yet. Defaults also fill any blank fields of a partial file.
func Load(home string) *Config {
	cfg, err := ReadConfig(home)
	if err != nil {
		return DefaultConfig()
	}

	def := DefaultConfig()
	if cfg.Provider == "" {
		cfg.Provider = def.Provider
	}
	if cfg.Display.FallbackHeight <= 0 {
		cfg.Display.FallbackHeight = def.Display.FallbackHeight
	}
	if cfg.Display.CodeTheme == "" {
		cfg.Display.CodeTheme = def.Display.CodeTheme
	}
	if cfg.Display.MarkdownStyle == "" {
		cfg.Display.MarkdownStyle = def.Display.MarkdownStyle
	}
	return cfg
}

// ProviderRoot resolves the config directory for the named provider,
// honouring the configured override.
func (c *Config) ProviderRoot(name, home string) string {
	switch name {
	case "claude":
		if c.Roots.Claude != "" {
			return c.Roots.Claude
		}
		return filepath.Join(home, ".claude")
	case "gemini":
		if c.Roots.Gemini != "" {
			return c.Roots.Gemini
		}
		return filepath.Join(home, ".gemini")
	default:
		return ""
	}
}

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// configNames are tried in order inside every search directory.
var configNames = []string{"platformer.yaml", "platformer.yml", "platformer.toml"}

// FormatFromPath picks the encoding from a file extension.
// Unknown extensions are treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// ParseFormat validates a format name given on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unknown format %q (want yaml or toml)", name)
	}
}

// Load loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.{yaml,toml}
// -> ./configs/platformer.{yaml,toml} -> embedded default -> DefaultPlatformerConfig.
// A custom path must exist and be valid; the other locations are skipped
// when missing or unparsable.
func Load(customPath string) (PlatformerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	var dirs []string
	if dir := userConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "configs")

	for _, dir := range dirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if cfg, err := LoadFile(path); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Decode(defaultPlatformerYAML, FormatYAML)
	if err != nil {
		return DefaultPlatformerConfig(), "built-in", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// LoadFile reads, decodes and validates a single config file.
func LoadFile(path string) (PlatformerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlatformerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses and validates config data in the given format.
// Fields absent from the data keep their DefaultPlatformerConfig values,
// except lists, which are replaced as a whole when present.
func Decode(data []byte, format Format) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	cfg.Assets = nil
	cfg.Level.Platforms = nil
	cfg.Level.Backgrounds = nil

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse yaml: %w", err)
		}
	}

	defaults := DefaultPlatformerConfig()
	if cfg.Assets == nil {
		cfg.Assets = defaults.Assets
	}
	if cfg.Level.Platforms == nil {
		cfg.Level.Platforms = defaults.Level.Platforms
	}
	if cfg.Level.Backgrounds == nil {
		cfg.Level.Backgrounds = defaults.Level.Backgrounds
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Encode writes the configuration in the given format.
func Encode(cfg PlatformerConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: failed to encode toml: %w", err)
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs")
}

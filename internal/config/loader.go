package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadOmega loads the Omega configuration.
// Search order: customPath -> ~/.omega/configs/omega.{yaml,toml} ->
// ./configs/omega.{yaml,toml} -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadOmega(customPath string) (OmegaConfig, error) {
	// Custom path errors are reported, the fallbacks are best effort
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return OmegaConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(customPath, data)
		if err != nil {
			return OmegaConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(path, data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse("omega.yaml", defaultOmegaYAML)
	if err != nil {
		return DefaultOmegaConfig(), nil
	}
	return cfg, nil
}

// Parse decodes a configuration document on top of the defaults and validates
// the result. The format is chosen from the file extension: ".toml" selects
// TOML, anything else is treated as YAML.
func Parse(name string, data []byte) (OmegaConfig, error) {
	cfg := DefaultOmegaConfig()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return OmegaConfig{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return OmegaConfig{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return OmegaConfig{}, err
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	for _, name := range []string{"omega.yaml", "omega.toml"} {
		if p := userConfigPath(name); p != "" {
			paths = append(paths, p)
		}
	}
	return append(paths,
		filepath.Join("configs", "omega.yaml"),
		filepath.Join("configs", "omega.toml"),
	)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".omega", "configs", filename)
}

// Encode renders cfg as "yaml" or "toml".
func Encode(cfg OmegaConfig, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(cfg)
	case "toml":
		return toml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

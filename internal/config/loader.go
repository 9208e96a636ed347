package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFrogger loads a level configuration.
// Search order: customPath -> ~/.frogger/levels/<level>.yaml ->
// ./configs/<level>.yaml -> embedded default for <level>.
// The returned config is always validated.
func LoadFrogger(customPath, level string) (FroggerConfig, error) {
	if level == "" {
		level = DefaultLevel
	}
	filename := level + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FroggerConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User and local overrides are best-effort: a broken file falls through.
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	data := GetDefaultYAML(level)
	if data == nil {
		if level == DefaultLevel {
			return DefaultFroggerConfig(), nil
		}
		return FroggerConfig{}, fmt.Errorf("%w: no built-in level %q", ErrInvalidConfig, level)
	}
	cfg, err := Parse(data)
	if err != nil {
		return FroggerConfig{}, fmt.Errorf("embedded level %s: %w", level, err)
	}
	return cfg, nil
}

// Parse decodes and validates a level from YAML.
// A missing safe_row key means no safe row.
func Parse(data []byte) (FroggerConfig, error) {
	cfg := FroggerConfig{SafeRow: -1}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FroggerConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FroggerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a level as YAML.
func Marshal(cfg FroggerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user level file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frogger", "levels", filename)
}

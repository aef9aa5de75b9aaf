package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownRuleset is returned for a ruleset name with no built-in default.
var ErrUnknownRuleset = errors.New("unknown ruleset")

// Load loads a ruleset configuration. Fields missing from a file keep the
// built-in value of the named ruleset.
// Search order: customPath -> ~/.tetris/configs/<ruleset>.yaml -> ./configs/<ruleset>.yaml -> embedded default
func Load(customPath, ruleset string) (RulesetConfig, error) {
	if ruleset == "" {
		ruleset = RulesetStandard
	}
	base, err := Default(ruleset)
	if err != nil {
		return RulesetConfig{}, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := ruleset + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath, base); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", filename), base); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	data, _ := DefaultYAML(ruleset)
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or malformed files are
// skipped so the next location in the search order is used.
func tryLoad(path string, base RulesetConfig) (RulesetConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RulesConfig externalizes the environment-specific tuning data the analyzer
// uses: reserved names, multi-word tool families, path prefixes stripped
// during env var naming, and substrings that mark pasted text. Loaded from an
// optional YAML file so deployments can adjust it without code changes.
type RulesConfig struct {
	ReservedWords []string `yaml:"reserved_words"`
	KnownTools    []string `yaml:"known_tools"`
	StripPrefixes []string `yaml:"strip_prefixes"`
	PastePatterns []string `yaml:"paste_patterns"`
}

// DefaultRulesConfig returns an empty rules set; the built-in defaults in the
// name generator and paste filter still apply
func DefaultRulesConfig() *RulesConfig {
	return &RulesConfig{}
}

// LoadRulesConfig reads a YAML rules file. A missing path yields the defaults
// rather than an error so the rules file stays optional.
func LoadRulesConfig(path string) (*RulesConfig, error) {
	if path == "" {
		return DefaultRulesConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRulesConfig(), nil
		}
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules RulesConfig
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	return &rules, nil
}

// SaveRulesConfig writes a rules file, used to seed an editable template
func SaveRulesConfig(path string, rules *RulesConfig) error {
	data, err := yaml.Marshal(rules)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	if err := Normalize(&cfg, BaseDirFromConfigPath(path)); err != nil {
		return Config{}, err
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads path when set, otherwise searches upward from the
// working directory and falls back to defaults when nothing is found.
func LoadOrDefault(path string) (Config, string, error) {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return Config{}, "", fmt.Errorf("resolve config path: %w", err)
		}
		cfg, err := Load(abs)
		return cfg, abs, err
	}
	found, err := FindConfigPath("")
	if err == nil {
		cfg, err := Load(found)
		return cfg, found, err
	}
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		return Config{}, "", fmt.Errorf("get working directory: %w", wdErr)
	}
	cfg := Default()
	if err := Normalize(&cfg, wd); err != nil {
		return Config{}, "", err
	}
	return cfg, "", nil
}

// Parse decodes a single YAML document, rejecting unknown fields.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

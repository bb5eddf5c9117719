package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the conventional name of the configuration file.
const FileName = "sie4.yaml"

// Config represents the top-level sie4.yaml configuration.
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Log    LogConfig    `yaml:"log"`
}

// ParserConfig controls how SIE files are read.
type ParserConfig struct {
	Currency string `yaml:"currency"` // amounts before any #VALUTA
	Charset  string `yaml:"charset"`  // "cp437" (#FORMAT PC8) or "utf-8"
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a sie4.yaml file from disk. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			Currency: "SEK",
			Charset:  "cp437",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

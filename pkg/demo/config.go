package demo

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults that can be loaded from a YAML file with -config.
// Command-line flags take precedence over it.
type Config struct {
	Sections []string `yaml:"sections"`
	Color    string   `yaml:"color"`
	JSON     bool     `yaml:"json"`
}

// LoadConfig reads a Config from the named YAML file. Unknown fields are
// errors. An empty file yields the zero Config.
func LoadConfig(fname string) (*Config, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", fname, err)
	}
	return &cfg, nil
}

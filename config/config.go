package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/timewinder-dev/monty/interp"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Interp InterpConfig `toml:"interp" yaml:"interp"`
}

type InterpConfig struct {
	MaxStack        int  `toml:"max_stack,omitempty" yaml:"max_stack,omitempty"`
	StrictArguments bool `toml:"strict_arguments,omitempty" yaml:"strict_arguments,omitempty"`
	Debug           bool `toml:"debug,omitempty" yaml:"debug,omitempty"`
}

func parseTOML(r io.Reader) (*Config, error) {
	var out Config
	_, err := toml.NewDecoder(r).Decode(&out)
	return &out, err
}

func parseYAML(r io.Reader) (*Config, error) {
	var out Config
	err := yaml.NewDecoder(r).Decode(&out)
	if err == io.EOF {
		err = nil
	}
	return &out, err
}

// Load reads a config file. Files ending in .yaml or .yml are YAML,
// everything else is TOML.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var c *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c, err = parseYAML(f)
	default:
		c, err = parseTOML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Interp.MaxStack < 0 {
		return fmt.Errorf("max_stack must not be negative, got %d", c.Interp.MaxStack)
	}
	return nil
}

// Options converts the interpreter section into machine options.
func (c *Config) Options() interp.Options {
	return interp.Options{
		MaxStack:        c.Interp.MaxStack,
		StrictArguments: c.Interp.StrictArguments,
	}
}

// Package config loads grove-cdhit settings from cdhit.yml files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-cdhit/pkg/cdhit"
)

// FileName is the name of project and global configuration files.
const FileName = "cdhit.yml"

// Install methods.
const (
	MethodConda  = "conda"
	MethodPath   = "path"
	MethodStatic = "static"
)

// Config is the top-level structure of cdhit.yml.
type Config struct {
	LogLevel string               `yaml:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	Install  Install              `yaml:"install"`
	Defaults map[string]OptionMap `yaml:"defaults,omitempty" jsonschema:"description=Default options per command; order is preserved"`
}

// Install describes how the cd-hit binaries are obtained.
type Install struct {
	Method   string   `yaml:"method,omitempty" jsonschema:"enum=conda,enum=path,enum=static"`
	Frontend string   `yaml:"frontend,omitempty" jsonschema:"description=conda-compatible binary used for installs (conda or mamba)"`
	Prefix   string   `yaml:"prefix,omitempty" jsonschema:"description=Conda environment prefix the package is installed into"`
	Channels []string `yaml:"channels,omitempty"`
	Version  string   `yaml:"version,omitempty"`
	Build    string   `yaml:"build,omitempty"`
	Path     string   `yaml:"path,omitempty" jsonschema:"description=Path to the cd-hit binary when method is static"`
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Install: Install{
			Method:   MethodConda,
			Frontend: "conda",
			Prefix:   "~/.local/share/grove-cdhit/conda",
			Channels: []string{"conda-forge", "bioconda"},
			Version:  "4.6.6",
			Build:    "0",
		},
	}
}

// LoadFile reads a single configuration file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.overlay(path, false); err != nil {
		return nil, err
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom layers the global configuration file and dir/cdhit.yml over the
// defaults. Missing files are skipped.
func LoadFrom(dir string) (*Config, error) {
	cfg := Default()

	if configDir, err := os.UserConfigDir(); err == nil {
		if err := cfg.overlay(filepath.Join(configDir, "grove-cdhit", FileName), true); err != nil {
			return nil, err
		}
	}
	if err := cfg.overlay(filepath.Join(dir, FileName), true); err != nil {
		return nil, err
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) overlay(path string, optional bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	// Defaults for the same command are merged flag by flag rather than
	// replaced, so a later file only overrides the flags it names.
	previous := c.Defaults
	c.Defaults = nil
	if err := yaml.Unmarshal(data, c); err != nil {
		c.Defaults = previous
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	c.Defaults = mergeDefaults(previous, c.Defaults)
	return nil
}

func mergeDefaults(base, over map[string]OptionMap) map[string]OptionMap {
	if len(base) == 0 {
		return over
	}
	merged := make(map[string]OptionMap, len(base)+len(over))
	for name, opts := range base {
		merged[name] = opts
	}
	for name, opts := range over {
		merged[name] = OptionMap{Options: merged[name].Options.Merge(opts.Options)}
	}
	return merged
}

func (c *Config) finish() error {
	prefix, err := expandHome(c.Install.Prefix)
	if err != nil {
		return err
	}
	c.Install.Prefix = prefix
	return c.Validate()
}

// Validate checks the install method and the command names under defaults.
func (c *Config) Validate() error {
	switch c.Install.Method {
	case MethodConda:
		if c.Install.Prefix == "" {
			return errors.New("install.prefix is required for the conda method")
		}
		if c.Install.Version == "" {
			return errors.New("install.version is required for the conda method")
		}
	case MethodPath:
	case MethodStatic:
		if c.Install.Path == "" {
			return errors.New("install.path is required for the static method")
		}
	default:
		return fmt.Errorf("unknown install method %q", c.Install.Method)
	}

	for name := range c.Defaults {
		if _, err := cdhit.ParseCommandName(name); err != nil {
			return fmt.Errorf("defaults: %w", err)
		}
	}
	return nil
}

// DefaultOptions returns the configured default options for command, or nil.
func (c *Config) DefaultOptions(command cdhit.CommandName) *cdhit.Options {
	if m, ok := c.Defaults[string(command)]; ok {
		return m.Options
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

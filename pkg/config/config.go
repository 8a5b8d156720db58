// Package config loads sitesplit defaults from a TOML file.
//
// A config file is looked up in this order, first match wins:
//
//  1. the path given with --config (must exist)
//  2. ./sitesplit.toml
//  3. ~/.config/sitesplit/config.toml
//
// Without a file, [Default] applies. Command-line flags always override
// config values. Example:
//
//	# sitesplit.toml
//	prefix = true        # number split files by site position
//	prefix_width = 4     # minimum prefix width
//	indent = "  "        # indent of per-site and settings files
//	output_prefix = "gen-"
//	verbose = false
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/matzehuels/sitesplit/pkg/convert"
	"github.com/matzehuels/sitesplit/pkg/errors"
)

const (
	appName = "sitesplit"

	// FileName is the name of the project-local config file.
	FileName = appName + ".toml"

	maxPrefixWidth = 9
)

// Config holds the settings a config file can provide.
type Config struct {
	Prefix       bool   `toml:"prefix"`
	PrefixWidth  int    `toml:"prefix_width"`
	Indent       string `toml:"indent"`
	OutputPrefix string `toml:"output_prefix"`
	Verbose      bool   `toml:"verbose"`

	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PrefixWidth:  convert.DefaultPrefixWidth,
		Indent:       convert.DefaultIndent,
		OutputPrefix: convert.DefaultOutputPrefix,
	}
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Load resolves and reads the config file. An explicit path must exist; the
// implicit locations are optional.
func Load(explicit string) (*Config, error) {
	if explicit != "" {
		path, err := homedir.Expand(explicit)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "config path %s", explicit)
		}
		return LoadFile(path)
	}

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return Default(), nil
}

// LoadFile reads the config at path on top of [Default]. Unknown keys are
// rejected so typos do not pass silently.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.PrefixWidth < 1 || c.PrefixWidth > maxPrefixWidth {
		return errors.New(errors.ErrCodeInvalidConfig, "prefix_width must be between 1 and %d, got %d", maxPrefixWidth, c.PrefixWidth)
	}
	if c.Indent == "" || strings.Trim(c.Indent, " \t") != "" {
		return errors.New(errors.ErrCodeInvalidConfig, "indent must be spaces or tabs, got %q", c.Indent)
	}
	if strings.ContainsAny(c.OutputPrefix, `/\`) {
		return errors.New(errors.ErrCodeInvalidConfig, "output_prefix cannot contain path separators")
	}
	return nil
}

// Options converts the config into convert options.
func (c *Config) Options() convert.Options {
	return convert.Options{
		Prefix:       c.Prefix,
		PrefixWidth:  c.PrefixWidth,
		Indent:       c.Indent,
		OutputPrefix: c.OutputPrefix,
	}
}

// SearchPaths returns the implicit config locations in lookup order.
func SearchPaths() []string {
	paths := []string{FileName}
	if home, err := homedir.Dir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return paths
}

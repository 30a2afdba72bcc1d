// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the lines tool.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/geom/base/errors"
	"cogentcore.org/geom/logx"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Formats are the supported output formats.
var Formats = []string{"json", "yaml", "toml"}

// EnvPrefix is the prefix of environment variables that set config fields,
// for example LINES_FORMAT or LINES_SPHERE_SEED.
const EnvPrefix = "LINES"

// Config is the main config struct
// that contains all of the configuration
// options for the lines tool.
type Config struct {

	// the output format of command results: json, yaml, or toml
	Format string `mapstructure:"format" toml:"format" yaml:"format"`

	// the logging level: debug, info, warn, or error
	LogLevel string `mapstructure:"log_level" toml:"log_level" yaml:"log_level"`

	// the number of spaces used to indent json and yaml output
	Indent int `mapstructure:"indent" toml:"indent" yaml:"indent"`

	// the configuration options for the sphere command
	Sphere Sphere `mapstructure:"sphere" toml:"sphere" yaml:"sphere"`
}

// Sphere has the configuration options for the sphere command.
type Sphere struct {

	// the dimension of the generated unit vectors
	Dim int `mapstructure:"dim" toml:"dim" yaml:"dim"`

	// the number of vectors to generate
	Count int `mapstructure:"count" toml:"count" yaml:"count"`

	// the random seed; 0 uses the global random source
	Seed int64 `mapstructure:"seed" toml:"seed" yaml:"seed"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Format:   "json",
		LogLevel: "warn",
		Indent:   2,
		Sphere: Sphere{
			Dim:   3,
			Count: 1,
		},
	}
}

// Validate returns an error if the config has invalid values.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Formats, c.Format) {
		errs = append(errs, errors.Errorf("invalid format %q (must be one of %s)", c.Format, strings.Join(Formats, ", ")))
	}
	if _, err := logx.LevelFromString(c.LogLevel); err != nil {
		errs = append(errs, errors.Errorf("invalid log level %q: %w", c.LogLevel, err))
	}
	if c.Indent < 0 {
		errs = append(errs, errors.Errorf("invalid indent %d (must be >= 0)", c.Indent))
	}
	if c.Sphere.Dim <= 0 {
		errs = append(errs, errors.Errorf("invalid sphere dim %d (must be > 0)", c.Sphere.Dim))
	}
	if c.Sphere.Count < 0 {
		errs = append(errs, errors.Errorf("invalid sphere count %d (must be >= 0)", c.Sphere.Count))
	}
	return errors.Join(errs...)
}

// Load returns the configuration built from the defaults, the given
// config file (toml, yaml, or json; ignored if empty), environment
// variables with the [EnvPrefix], and the given flags, in increasing
// order of precedence. Flags are bound by their config key, with
// dots replaced by dashes (for example "sphere-seed"); flags may be nil.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range v.AllKeys() {
			f := flags.Lookup(strings.ReplaceAll(strings.ReplaceAll(key, ".", "-"), "_", "-"))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Errorf("config.Load: binding flag %q: %w", f.Name, err)
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Errorf("config.Load: reading %q: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("format", cfg.Format)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("indent", cfg.Indent)
	v.SetDefault("sphere.dim", cfg.Sphere.Dim)
	v.SetDefault("sphere.count", cfg.Sphere.Count)
	v.SetDefault("sphere.seed", cfg.Sphere.Seed)
}

// Save saves the config to the given file, in toml or yaml
// format depending on the file extension.
func (c *Config) Save(file string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		b, err = toml.Marshal(c)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(c)
	default:
		return errors.Errorf("config.Save: unsupported file extension %q", ext)
	}
	if err != nil {
		return errors.Errorf("config.Save: %w", err)
	}
	return os.WriteFile(file, b, 0666)
}

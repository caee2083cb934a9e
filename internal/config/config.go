// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "dynmat"
	// EnvPrefix prefixes every environment override (DYNMAT_ELEMENT, ...).
	EnvPrefix = "DYNMAT"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// configFilePathOverride is set from the --config flag.
var configFilePathOverride string

// SetConfigFilePathOverride makes Load read path exclusively.
func SetConfigFilePathOverride(path string) { configFilePathOverride = path }

// ConfigDir returns $XDG_CONFIG_HOME/dynmat or the platform equivalent.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	return filepath.Join(dir, AppName), nil
}

// Load resolves the configuration from defaults, the config file and the
// environment. A missing default config file is not an error; a missing
// --config file is.
func Load() (*Config, error) {
	if configFilePathOverride != "" {
		if !fileExists(configFilePathOverride) {
			return nil, fmt.Errorf("load configuration: %w: %s", ErrConfigNotFound, configFilePathOverride)
		}
		return LoadFile(configFilePathOverride)
	}

	if cfgDir, err := ConfigDir(); err == nil {
		if p := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt); fileExists(p) {
			return LoadFile(p)
		}
	}
	if local := ConfigFileName + "." + ConfigFileExt; fileExists(local) {
		return LoadFile(local)
	}

	return LoadFile("")
}

// LoadFile resolves the configuration using path as the only config file.
// An empty path means defaults plus environment.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load configuration %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}

	return &cfg, nil
}

// newViper returns a Viper instance with defaults and env binding applied.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("element", string(defaults.Element))
	v.SetDefault("format.separator", defaults.Format.Separator)
	v.SetDefault("format.verb", defaults.Format.Verb)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.verbose", defaults.Log.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Validate checks the fields that viper cannot type-check.
func (c *Config) Validate() error {
	if err := c.Element.Validate(); err != nil {
		return err
	}
	if !strings.HasPrefix(c.Format.Verb, "%") {
		return fmt.Errorf("%w: verb %q must start with '%%'", ErrInvalidFormat, c.Format.Verb)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}

	return nil
}

// LogLevel returns the effective log level; Verbose forces debug.
func (c *Config) LogLevel() log.Level {
	if c.Log.Verbose {
		return log.DebugLevel
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}

// TOML renders the configuration as a TOML document.
func (c *Config) TOML() (string, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("render configuration: %w", err)
	}

	return string(b), nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

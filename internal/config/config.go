// Package config resolves run settings from flags, TEMPLATE_CHECK_*
// environment variables and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "TEMPLATE_CHECK"

// Config holds the settings for one validation run.
type Config struct {
	Root      string `mapstructure:"root"`
	Checklist string `mapstructure:"checklist"`
	Format    string `mapstructure:"format"`
	LogLevel  string `mapstructure:"log_level"`
}

var validFormats = map[string]bool{"text": true, "json": true, "markdown": true, "gha": true}

// Load builds a Config. Flags that were set win over the environment,
// which wins over defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("root", "")
	v.SetDefault("checklist", "")
	v.SetDefault("format", "text")
	v.SetDefault("log_level", "warn")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"root":      "root",
			"checklist": "checklist",
			"format":    "format",
			"log_level": "log-level",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if !validFormats[cfg.Format] {
		return nil, fmt.Errorf("invalid output format %q: must be one of text, json, markdown, gha", cfg.Format)
	}

	return &cfg, nil
}

// ResolveRoot returns the configured root, or the directory one level
// above the one holding the running executable.
func (c *Config) ResolveRoot() (string, error) {
	if c.Root != "" {
		return filepath.Abs(c.Root)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

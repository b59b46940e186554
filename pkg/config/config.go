// Package config loads pickdate settings from .pickdate.yaml, the
// environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/datepicker/pkg/picker"
)

const (
	// EnvPrefix prefixes every environment override, e.g. PICKDATE_LANG.
	EnvPrefix = "PICKDATE"
	// PathEnv names an extra directory searched first for the config file.
	PathEnv = "PICKDATE_CONFIG_PATH"

	defaultPath = "~/.pickdate"
	defaultName = "default"
)

// Config is the loaded configuration.
type Config struct {
	// Path is the store directory, with ~ expanded.
	Path string
	// Name is the selection record used when a command gets no --name.
	Name string
	// File is the config file that was read, empty when none was found.
	File    string
	Options picker.Options
}

// BasePath returns the store directory.
func (c *Config) BasePath() string {
	return c.Path
}

// Load reads the configuration with a fresh viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom reads the configuration through v. Flags bound to v before the
// call take precedence over the file and the environment.
func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetConfigName(".pickdate") // .yaml is implicit
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(PathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	opts := picker.DefaultOptions()
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("config: decode options: %w", err)
	}
	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("config: expand path: %w", err)
	}
	return &Config{
		Path:    path,
		Name:    v.GetString("name"),
		File:    v.ConfigFileUsed(),
		Options: opts,
	}, nil
}

// setDefaults registers every key so that environment overrides are seen by
// Unmarshal.
func setDefaults(v *viper.Viper) {
	d := picker.DefaultOptions()
	v.SetDefault("path", defaultPath)
	v.SetDefault("name", defaultName)

	v.SetDefault("lang", d.Lang)
	v.SetDefault("format", d.Format)
	v.SetDefault("autoclose", d.Autoclose)
	v.SetDefault("toggleActive", d.ToggleActive)
	v.SetDefault("forceParse", d.ForceParse)
	v.SetDefault("enableOnReadonly", d.EnableOnReadonly)
	v.SetDefault("immediateUpdates", d.ImmediateUpdates)
	v.SetDefault("title", d.Title)
	v.SetDefault("keyboard.navigation", d.Keyboard.Navigation)
	v.SetDefault("today.button", d.Today.Button)
	v.SetDefault("today.highlight", d.Today.Highlight)
	v.SetDefault("view.start", d.View.Start)
	v.SetDefault("view.min", d.View.Min)
	v.SetDefault("view.max", d.View.Max)
	v.SetDefault("multidate.enabled", d.Multidate.Enabled)
	v.SetDefault("multidate.limit", d.Multidate.Limit)
	v.SetDefault("multidate.separator", d.Multidate.Separator)
	v.SetDefault("week.start", d.Week.Start)
	v.SetDefault("date.start", d.Date.Start)
	v.SetDefault("date.end", d.Date.End)
	v.SetDefault("date.default", d.Date.Default)
	v.SetDefault("date.disabled", []string{})
	v.SetDefault("date.rule", d.Date.Rule)
	v.SetDefault("date.cron", d.Date.Cron)
	v.SetDefault("date.count", d.Date.Count)
	v.SetDefault("date.toggle", d.Date.Toggle)
	v.SetDefault("daysOfWeek.disabled", []int{})
	v.SetDefault("daysOfWeek.highlighted", []int{})
}

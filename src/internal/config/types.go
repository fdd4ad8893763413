package config

import (
	"os"

	"github.com/maksimkurb/ip2networkd/src/internal/filter"
)

const (
	DefaultFileMode uint32 = 0o644
	DefaultDirMode  uint32 = 0o755
)

type Config struct {
	// Output controls how unit files are written.
	Output *OutputConfig `toml:"output" json:"output"`
	// Filter adds exclusions on top of the built-in filtering rules.
	Filter *FilterConfig `toml:"filter" json:"filter"`

	_absConfigFilePath string
}

type OutputConfig struct {
	// FileMode is the permission of generated unit files (default: 0o644).
	FileMode uint32 `toml:"file_mode" json:"file_mode" validate:"min=1,max=511"`
	// DirMode is the permission of the output directory when it has to be created (default: 0o755).
	DirMode uint32 `toml:"dir_mode" json:"dir_mode" validate:"min=1,max=511"`
	// Header is written as a comment block at the top of every unit. Available variables: {{ifname}}, {{mac}}, {{link_type}}.
	Header string `toml:"header" json:"header" validate:"header_template"`
}

type FilterConfig struct {
	// ExcludeInterfaces skips interfaces whose name matches one of these glob patterns (e.g. "docker*", "veth*").
	ExcludeInterfaces []string `toml:"exclude_interfaces" json:"exclude_interfaces" validate:"dive,required,glob"`
	// ExcludeRouteProtocols drops routes of these protocols in addition to dhcp, kernel and ra.
	ExcludeRouteProtocols []string `toml:"exclude_route_protocols" json:"exclude_route_protocols" validate:"dive,required"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if c.Output.FileMode == 0 {
		c.Output.FileMode = DefaultFileMode
	}
	if c.Output.DirMode == 0 {
		c.Output.DirMode = DefaultDirMode
	}
	if c.Filter == nil {
		c.Filter = &FilterConfig{}
	}
}

// GetConfigFilePath returns the absolute path the config was loaded from, empty for defaults.
func (c *Config) GetConfigFilePath() string {
	return c._absConfigFilePath
}

func (c *Config) FileMode() os.FileMode {
	return os.FileMode(c.Output.FileMode)
}

func (c *Config) DirMode() os.FileMode {
	return os.FileMode(c.Output.DirMode)
}

// FilterRules converts the filter section into filtering rules.
func (c *Config) FilterRules() filter.Rules {
	return filter.Rules{
		ExcludeInterfaces:     c.Filter.ExcludeInterfaces,
		ExcludeRouteProtocols: c.Filter.ExcludeRouteProtocols,
	}
}

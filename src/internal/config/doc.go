// Package config handles the optional TOML configuration of ip2networkd.
//
// Without a config file the defaults reproduce the plain conversion: units are
// written with mode 0644, the directory with 0755, no header and only the
// built-in filtering rules.
//
//	[output]
//	file_mode = 0o640
//	header = "Generated by ip2networkd for {{ifname}} ({{mac}})"
//
//	[filter]
//	exclude_interfaces = ["docker*", "veth*"]
//	exclude_route_protocols = ["bird"]
//
// Configuration is validated with go-playground/validator; ValidateConfig
// returns every problem at once as ValidationErrors.
package config

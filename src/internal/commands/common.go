package commands

import (
	"fmt"

	"github.com/maksimkurb/ip2networkd/src/internal/config"
	"github.com/maksimkurb/ip2networkd/src/internal/errors"
	"github.com/maksimkurb/ip2networkd/src/internal/filter"
	"github.com/maksimkurb/ip2networkd/src/internal/iproute"
	"github.com/maksimkurb/ip2networkd/src/internal/log"
	"github.com/maksimkurb/ip2networkd/src/internal/networkd"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	// ConfigPath is optional; defaults are used when empty.
	ConfigPath string
	Verbose    bool
	Live       bool
}

// loadAndValidateConfigOrFail loads the configuration file, or the defaults when
// no path is given, and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(configPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, errors.NewValidationError("configuration validation failed", err)
	}

	if log.IsVerbose() {
		if buf, err := cfg.SerializeConfig(); err == nil {
			log.Debugf("Effective configuration:\n%s", buf.String())
		}
	}

	return cfg, nil
}

// expectArgs checks the positional argument count.
func expectArgs(args []string, names ...string) error {
	if len(args) != len(names) {
		return errors.NewUsageError(fmt.Sprintf("expected %d arguments (%v), got %d", len(names), names, len(args)))
	}
	return nil
}

// generateUnits filters the snapshot and writes one unit per remaining interface.
func generateUnits(cfg *config.Config, interfaces []iproute.Interface, ipv4Routes, ipv6Routes []iproute.Route, outputDir string) ([]string, error) {
	rules := cfg.FilterRules()
	filteredInterfaces := filter.Interfaces(interfaces, rules)
	filteredRoutes := filter.Routes(filter.Concat(ipv4Routes, ipv6Routes), rules)

	log.Infof("Kept %d of %d interfaces and %d of %d routes",
		len(filteredInterfaces), len(interfaces),
		len(filteredRoutes), len(ipv4Routes)+len(ipv6Routes))

	writer := networkd.NewWriter(outputDir)
	writer.FileMode = cfg.FileMode()
	writer.DirMode = cfg.DirMode()
	if cfg.Output.Header != "" {
		header, err := networkd.NewHeaderTemplate(cfg.Output.Header)
		if err != nil {
			return nil, errors.NewValidationError("invalid output.header", err)
		}
		writer.Header = header
	}

	written, err := writer.WriteAll(filteredInterfaces, filteredRoutes)
	if err != nil {
		return written, err
	}

	log.Infof("Wrote %d network units to %s", len(written), outputDir)
	return written, nil
}

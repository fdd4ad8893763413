package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	domainerrors "github.com/maksimkurb/ip2networkd/src/internal/errors"
	"github.com/maksimkurb/ip2networkd/src/internal/log"
)

// LoadConfig reads a TOML config file. Missing keys take their defaults and
// unknown keys are rejected.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, domainerrors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, domainerrors.NewConfigError(fmt.Sprintf("failed to read config file %s", configFile), err)
	}

	config, err := ParseConfig(content)
	if err != nil {
		return nil, err
	}
	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	return config, nil
}

// ParseConfig decodes TOML content and applies defaults.
func ParseConfig(content []byte) (*Config, error) {
	var config Config

	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, domainerrors.NewConfigError("failed to parse config file", err)
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			log.Errorf("%s", serr.String())
			return nil, domainerrors.NewConfigError("config file contains unknown keys", err)
		}
		return nil, domainerrors.NewConfigError("failed to parse config file", err)
	}

	config.applyDefaults()
	return &config, nil
}

// SerializeConfig encodes the configuration back to TOML.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

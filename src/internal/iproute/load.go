package iproute

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/ip2networkd/src/internal/errors"
	"github.com/maksimkurb/ip2networkd/src/internal/log"
	"github.com/maksimkurb/ip2networkd/src/internal/utils"
)

// DecodeInterfaces parses an `ip -j addr` document.
func DecodeInterfaces(r io.Reader) ([]Interface, error) {
	var interfaces []Interface
	if err := decodeArray(r, &interfaces); err != nil {
		return nil, err
	}
	return interfaces, nil
}

// DecodeRoutes parses an `ip -j route` document.
func DecodeRoutes(r io.Reader) ([]Route, error) {
	var routes []Route
	if err := decodeArray(r, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// LoadInterfaces reads and parses an `ip -j addr` document from path.
func LoadInterfaces(path string) ([]Interface, error) {
	var interfaces []Interface
	err := loadFile(path, func(r io.Reader) error {
		var err error
		interfaces, err = DecodeInterfaces(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d interfaces from %s", len(interfaces), path)
	return interfaces, nil
}

// LoadRoutes reads and parses an `ip -j route` document from path.
func LoadRoutes(path string) ([]Route, error) {
	var routes []Route
	err := loadFile(path, func(r io.Reader) error {
		var err error
		routes, err = DecodeRoutes(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d routes from %s", len(routes), path)
	return routes, nil
}

func loadFile(path string, decode func(io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.NewInputError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer utils.CloseOrWarn(file)

	if err := decode(file); err != nil {
		return errors.NewInputError(fmt.Sprintf("failed to parse %s", path), err)
	}
	return nil
}

// decodeArray requires the document to be a single JSON array.
func decodeArray(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after the top-level array")
	}
	return nil
}

package networkd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/maksimkurb/ip2networkd/src/internal/errors"
	"github.com/maksimkurb/ip2networkd/src/internal/iproute"
	"github.com/maksimkurb/ip2networkd/src/internal/log"
	"github.com/maksimkurb/ip2networkd/src/internal/utils"
)

const (
	DefaultFileMode os.FileMode = 0644
	DefaultDirMode  os.FileMode = 0755
)

// Writer writes one unit per interface into Dir.
type Writer struct {
	Dir      string
	FileMode os.FileMode
	DirMode  os.FileMode
	// Header is optional.
	Header *HeaderTemplate
}

// NewWriter returns a Writer with default permissions and no header.
func NewWriter(dir string) *Writer {
	return &Writer{
		Dir:      dir,
		FileMode: DefaultFileMode,
		DirMode:  DefaultDirMode,
	}
}

// WriteAll creates Dir if needed, then writes the units sequentially, replacing
// existing files. It stops at the first failure and returns the paths written
// so far.
func (wr *Writer) WriteAll(interfaces []iproute.Interface, routes []iproute.Route) ([]string, error) {
	if err := utils.EnsureDir(wr.Dir, wr.DirMode); err != nil {
		return nil, errors.NewOutputError(fmt.Sprintf("failed to create directory %s", wr.Dir), err)
	}

	written := make([]string, 0, len(interfaces))
	for _, iface := range interfaces {
		path, err := wr.Write(iface, routes)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// Write renders and writes the unit of a single interface. Dir must exist.
func (wr *Writer) Write(iface iproute.Interface, routes []iproute.Route) (string, error) {
	unit, err := BuildUnit(iface, routes)
	if err != nil {
		return "", err
	}
	unit.Header = wr.Header.Render(iface)

	path := filepath.Join(wr.Dir, UnitFileName(iface.IfName))
	if err := utils.WriteFile(path, unit.Bytes(), wr.FileMode); err != nil {
		return "", errors.NewOutputError(fmt.Sprintf("failed to write %s", path), err)
	}

	log.Debugf("Wrote %s (%d addresses, %d routes)", path, len(iface.AddrInfo), len(unit.Sections)-2)
	return path, nil
}

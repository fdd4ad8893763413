package utils

import (
	"io"
	"os"

	"github.com/maksimkurb/ip2networkd/src/internal/log"
)

// CloseOrWarn closes a read-only resource, logging a failure instead of returning it.
func CloseOrWarn(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}

// WriteFile creates or truncates path, writes data and closes the file.
// A failed close is reported, since buffered data may not have reached the disk.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// EnsureDir creates dir and its parents if missing.
func EnsureDir(dir string, perm os.FileMode) error {
	return os.MkdirAll(dir, perm)
}

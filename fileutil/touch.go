package fileutil

import (
	"os"
	"time"
)

// Touch creates an empty file at path if none exists, or updates the
// modification time of the existing one.
func Touch(path string) error {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, defaultFileMode)
		if err != nil {
			return err
		}
		return f.Close()
	}

	now := time.Now()
	return os.Chtimes(path, now, now)
}

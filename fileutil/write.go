package fileutil

import "os"

const (
	defaultFileMode = 0o644
	defaultDirMode  = 0o755
)

// WriteBytes writes data to the file, creating it if absent and
// truncating it otherwise.
func WriteBytes(data []byte, path string) error {
	return os.WriteFile(path, data, defaultFileMode)
}

// WriteText writes data to the file as UTF-8 text, creating it if
// absent and truncating it otherwise.
func WriteText(data string, path string) error {
	return WriteBytes([]byte(data), path)
}

// AppendBytes appends data to the end of the file, creating it if
// absent.
func AppendBytes(data []byte, path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultFileMode)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		CloseQuietly(f)
		return err
	}
	return f.Close()
}

// AppendText appends data to the end of the file as UTF-8 text,
// creating it if absent.
func AppendText(data string, path string) error {
	return AppendBytes([]byte(data), path)
}

package fileutil

import (
	"bufio"
	"io"
	"os"

	"go.ytsaurus.tech/library/go/core/log"
)

// Reader is a buffered UTF-8 text stream over a file. The caller owns
// the lifecycle and must Close it.
type Reader struct {
	*bufio.Reader
	f *os.File
}

// OpenReader opens the file at path for buffered reading.
func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{Reader: bufio.NewReader(f), f: f}, nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.f.Close()
}

// Writer is a buffered UTF-8 text stream over a file. The caller owns
// the lifecycle and must Close it; Close flushes buffered data first.
type Writer struct {
	*bufio.Writer
	f *os.File
}

// OpenWriter opens the file at path for buffered writing, creating it
// if absent and truncating it otherwise.
func OpenWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultFileMode)
	if err != nil {
		return nil, err
	}
	return &Writer{Writer: bufio.NewWriter(f), f: f}, nil
}

// Close flushes buffered data and releases the underlying file handle.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		CloseQuietly(w.f)
		return err
	}
	return w.f.Close()
}

// CloseQuietly closes c, logging the error instead of returning it.
// Meant for defer sites where a close error has nowhere useful to go.
func CloseQuietly(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn("Close error", log.Error(err))
	}
}

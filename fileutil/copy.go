package fileutil

import (
	"errors"
	"io"
	"os"
	"syscall"

	"go.ytsaurus.tech/library/go/core/xerrors"
)

// ErrSameFile is returned when a copy or move would read and write the
// same file.
var ErrSameFile = xerrors.NewSentinel("fileutil: source and destination are the same file")

// Copy copies the file contents and permission bits of src to dst,
// truncating dst if it exists.
func Copy(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return ErrSameFile
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer CloseQuietly(in)

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		CloseQuietly(out)
		return err
	}
	return out.Close()
}

// Move renames src to dst. When the rename fails because src and dst
// live on different filesystems it falls back to copy plus delete; any
// other error is returned as is.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if err := Copy(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

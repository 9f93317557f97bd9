package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"go.ytsaurus.tech/library/go/core/log"
)

const copyDirConcurrency = 8

// Exists reports whether path exists, regardless of its kind.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureParentDirs creates the parent directory of path and all missing
// ancestors.
func EnsureParentDirs(path string) error {
	return os.MkdirAll(filepath.Dir(path), defaultDirMode)
}

// CopyDir recursively copies the directory tree rooted at src into dst,
// creating dst if needed. Directories are created up front, then file
// copies fan out over a bounded worker group. Symlinks and other
// non-regular files are skipped.
func CopyDir(src, dst string) error {
	logger.Debug("Copying directory", log.String("from", src), log.String("to", dst))

	var files [][2]string
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, info.Mode().Perm())
		}
		if !d.Type().IsRegular() {
			logger.Debug("Skipping non-regular file", log.String("path", path))
			return nil
		}
		files = append(files, [2]string{path, target})
		return nil
	})
	if err != nil {
		return err
	}

	g := new(errgroup.Group)
	g.SetLimit(copyDirConcurrency)
	for _, pair := range files {
		g.Go(func() error {
			return Copy(pair[0], pair[1])
		})
	}
	return g.Wait()
}

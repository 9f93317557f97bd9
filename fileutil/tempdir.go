package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/atomic"
	"go.ytsaurus.tech/library/go/core/xerrors"
)

var tempDirSeq atomic.Int64

const tempDirAttempts = 10000

// TempDir creates a uniquely named directory under the system temp root
// and returns its path. Names are <unix-millis>-<counter>; the
// process-wide counter disambiguates calls landing on the same
// millisecond. Cleanup is the caller's job.
func TempDir() (string, error) {
	base := time.Now().UnixMilli()
	for i := 0; i < tempDirAttempts; i++ {
		dir := filepath.Join(os.TempDir(), fmt.Sprintf("%d-%d", base, tempDirSeq.Inc()))
		err := os.Mkdir(dir, 0o700)
		if err == nil {
			return dir, nil
		}
		if !os.IsExist(err) {
			return "", err
		}
	}
	return "", xerrors.Errorf("fileutil: failed to create temp dir under %s within %d attempts", os.TempDir(), tempDirAttempts)
}

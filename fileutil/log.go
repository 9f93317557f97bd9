package fileutil

import (
	"go.ytsaurus.tech/library/go/core/log"
	"go.ytsaurus.tech/library/go/core/log/nop"
)

var logger log.Logger = &nop.Logger{}

// SetLogger installs a logger for the few diagnostics this package
// emits (swallowed close errors, directory copies). Passing nil restores
// the default no-op logger. Not safe to call concurrently with other
// package functions.
func SetLogger(l log.Logger) {
	if l == nil {
		l = &nop.Logger{}
	}
	logger = l
}

// Package fileutil provides small file helpers: whole-file read/write,
// copy/move, touch, temp-directory creation and buffered text streams.
//
// Text operations use UTF-8 throughout. I/O errors from the operating
// system propagate to the caller unmodified; the package only mints its
// own errors for argument misuse. Nothing is retried.
package fileutil

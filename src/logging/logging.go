// Package logging wraps astilog behind two small helpers so the rest of
// this module never imports it directly.
package logging

import (
	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// Error logs a recoverable failure, wrapped with msg, and returns
// control to the caller. Used for a worker's serialization decode
// failure.
func Error(err error, msg string) {
	astilog.Error(errors.Wrap(err, msg))
}

// Fatal logs an unrecoverable setup failure and terminates the process.
// Used by the commands for a malformed-puzzle input or a dictionary that
// cannot be loaded, before any worker is dispatched, and for a terminal
// browser that fails to run.
func Fatal(err error, msg string) {
	astilog.Fatal(errors.Wrap(err, msg))
}

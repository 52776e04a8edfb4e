// Package errors provides standard error types for gem5dev.
//
// These sentinel errors allow callers to check for specific error conditions
// using errors.Is(), enabling programmatic error handling.
package errors

import "errors"

// Environment errors
var (
	// ErrNotMounted indicates the host workspace was not mounted over the
	// container's work directory (the sentinel marker file is still visible).
	ErrNotMounted = errors.New("host volume not mounted")
)

// Missing-artifact errors
var (
	// ErrSourceNotInstalled indicates the gem5 source checkout does not exist yet.
	ErrSourceNotInstalled = errors.New("gem5 source not installed")

	// ErrSystemNotInstalled indicates the full-system image directory does not exist yet.
	ErrSystemNotInstalled = errors.New("full-system files not installed")

	// ErrSimulatorNotBuilt indicates the gem5 simulator binary has not been built.
	ErrSimulatorNotBuilt = errors.New("gem5 binary not built")

	// ErrBinaryNotFound indicates the program binary named on the command line does not exist.
	ErrBinaryNotFound = errors.New("binary not found")
)

// Usage errors
var (
	// ErrUnsupportedExtension indicates a source file whose extension maps to no compiler.
	ErrUnsupportedExtension = errors.New("source file extension not supported")

	// ErrUnknownCommand indicates a command token that matches no subcommand.
	ErrUnknownCommand = errors.New("unknown command")
)

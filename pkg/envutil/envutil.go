// Package envutil provides utilities for environment variable handling.
//
// This package centralizes the names of the GEM5DEV_* environment
// variables so the rest of the code never spells them inline.
package envutil

import "os"

// Environment variable names recognized by gem5dev.
const (
	// RootEnvVar overrides the base mount directory (default /gem5).
	RootEnvVar = "GEM5DEV_ROOT"
)

// Get returns the value of the environment variable key, or defaultValue
// when the variable is unset or empty.
func Get(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package execx runs external commands.
//
// Every action gem5dev performs ends in exactly one external process
// (git, scons, a compiler, or the gem5 binary itself). The Runner
// interface is the seam between command construction and execution so
// handlers can be exercised in tests without the real toolchains.
package execx

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command describes one external invocation.
type Command struct {
	// Name is the program to run, resolved via PATH when not absolute.
	Name string

	// Args are the program arguments, not including the program name.
	Args []string

	// Dir is the working directory for the child. Empty means the
	// caller's current directory.
	Dir string

	// Env holds extra KEY=VALUE entries appended to the inherited
	// environment.
	Env []string
}

// String renders the command roughly as it would be typed in a shell.
// Used only for diagnostics.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes external commands synchronously.
type Runner interface {
	// Run executes cmd and blocks until it exits. The child inherits
	// stdin/stdout/stderr, so the wrapped tool's output reaches the
	// user unmodified. A non-zero exit surfaces as *exec.ExitError.
	Run(cmd Command) error
}

// New returns the Runner backed by os/exec.
func New() Runner {
	return &execRunner{}
}

type execRunner struct{}

func (r *execRunner) Run(cmd Command) error {
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	if err := c.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// Propagate the tool's own failure without extra context;
			// the tool already printed its diagnostics.
			return err
		}
		return fmt.Errorf("run %s: %w", cmd.Name, err)
	}
	return nil
}

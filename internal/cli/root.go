// Package cli implements the gem5dev command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gem5dev/internal/execx"
	errs "gem5dev/pkg/errors"
)

var (
	// Version information
	Version = "0.1.0"

	// runner executes external commands. Swapped for a recorder in tests.
	runner execx.Runner = execx.New()
)

var rootCmd = &cobra.Command{
	Use:   "gem5dev",
	Short: "Development helper for the gem5 simulator container",
	Long: `gem5dev wraps the toolchains of a gem5 development workspace
behind a handful of named commands.

Typical workflow:
  gem5dev install-source      # clone the gem5 repository
  gem5dev build               # scons build of gem5.opt (ARM)
  gem5dev run-se              # simulate the stock hello-world binary
  gem5dev install-system      # fetch full-system kernel + disk image
  gem5dev run-fs              # boot a full Linux system

The workspace lives under the mounted work directory (default /gem5,
override with GEM5DEV_ROOT or a .env file).

Several commands may be given at once; they run left to right:
  gem5dev install-source build run-se`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

func init() {
	rootCmd.AddCommand(installSourceCmd)
	rootCmd.AddCommand(updateSourceCmd)
	rootCmd.AddCommand(installSystemCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(runSECmd)
	rootCmd.AddCommand(runFSCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(crossCompileCmd)
	rootCmd.AddCommand(runProgramCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(shellCmd)
}

// consumesRest lists the commands whose trailing tokens belong to the
// command itself (file names, program arguments, flags). Such a
// command must be the last one on the line.
var consumesRest = map[string]bool{
	"compile-program":       true,
	"cross-compile-program": true,
	"run-program-se":        true,
	"run-se":                true,
	"run-fs":                true,
	"logs":                  true,
	"shell":                 true,
	"bash":                  true,
	"help":                  true,
	"completion":            true,
}

// knownCommand reports whether tok names a registered subcommand or
// one of its aliases.
func knownCommand(tok string) bool {
	// cobra registers its built-in help and completion commands lazily,
	// on the first Execute.
	if tok == "help" || tok == "completion" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == tok {
			return true
		}
		for _, a := range c.Aliases {
			if a == tok {
				return true
			}
		}
	}
	return false
}

// nextSegment splits off the leading command segment of args. Flag
// tokens travel alone; rest-consuming commands take everything.
func nextSegment(args []string) (segment, rest []string) {
	tok := args[0]
	if strings.HasPrefix(tok, "-") {
		return args[:1], args[1:]
	}
	if consumesRest[tok] {
		return args, nil
	}
	return args[:1], args[1:]
}

// run processes the argument list left to right, one command segment
// at a time. The working directory recorded at entry is restored after
// every segment, so sequential commands are independent of each
// other's directory changes.
func run(args []string) error {
	if len(args) == 0 {
		return rootCmd.Help()
	}

	startDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	for len(args) > 0 {
		tok := args[0]

		// Shell option toggles (set +x style) have no meaning here.
		if strings.HasPrefix(tok, "+") {
			fmt.Fprintf(os.Stderr, "Warning: ignoring shell option %q\n", tok)
			args = args[1:]
			continue
		}
		if !strings.HasPrefix(tok, "-") && !knownCommand(tok) {
			return fmt.Errorf("%w: %q\n\n%s", errs.ErrUnknownCommand, tok, rootCmd.UsageString())
		}

		var segment []string
		segment, args = nextSegment(args)

		rootCmd.SetArgs(segment)
		execErr := rootCmd.Execute()

		if err := os.Chdir(startDir); err != nil {
			return fmt.Errorf("restore working directory: %w", err)
		}
		if execErr != nil {
			return execErr
		}
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

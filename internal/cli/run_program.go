package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gem5dev/internal/sim"
	"gem5dev/internal/workspace"
)

var runProgramCmd = &cobra.Command{
	Use:   "run-program-se BINARY [ARG...]",
	Short: "Simulate a program binary in syscall-emulation mode",
	Long: `Run a compiled program under gem5 in syscall-emulation mode. Any
further arguments are forwarded verbatim to the simulated program.

Examples:
  gem5dev run-program-se ./hello
  gem5dev run-program-se ./bench 100 /tmp/input.dat`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRunProgram,
}

func init() {
	// Arguments after BINARY belong to the simulated program.
	runProgramCmd.Flags().SetInterspersed(false)
}

func runRunProgram(cmd *cobra.Command, args []string) error {
	ws := workspace.Resolve()
	if err := ws.CheckMounted(); err != nil {
		return err
	}
	return sim.RunProgram(ws, runner, os.Stdout, args[0], args[1:])
}

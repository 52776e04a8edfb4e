package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gem5dev/internal/sim"
	"gem5dev/internal/workspace"
)

var runSECmd = &cobra.Command{
	Use:   "run-se [BINARY]",
	Short: "Run a syscall-emulation simulation",
	Long: `Run gem5 in syscall-emulation mode with the stock se.py config.
Without an argument the prebuilt ARM hello-world test program is
simulated.

Examples:
  gem5dev run-se
  gem5dev run-se tests/test-progs/hello/bin/arm/linux/hello`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRunSE,
}

func runRunSE(cmd *cobra.Command, args []string) error {
	ws := workspace.Resolve()
	if err := ws.CheckMounted(); err != nil {
		return err
	}

	binary := ""
	if len(args) > 0 {
		binary = args[0]
	}
	return sim.RunSE(ws, runner, os.Stdout, binary)
}

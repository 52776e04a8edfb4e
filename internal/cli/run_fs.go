package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gem5dev/internal/sim"
	"gem5dev/internal/workspace"
)

var fsScript string

var runFSCmd = &cobra.Command{
	Use:   "run-fs",
	Short: "Boot a full Linux system in the simulator",
	Long: `Run gem5 in full-system mode with the stock fs.py config, booting
the ` + sim.MachineType + ` machine with the installed kernel and disk
image. Requires the files fetched by ` + "`gem5dev install-system`" + `.

Connect to the simulated console from another terminal with:
  m5term localhost 3456

Examples:
  gem5dev run-fs
  gem5dev run-fs --script bench.rcS`,
	Args: cobra.NoArgs,
	RunE: runRunFS,
}

func init() {
	runFSCmd.Flags().StringVar(&fsScript, "script", "", "boot script run by the simulated system after startup")
}

func runRunFS(cmd *cobra.Command, args []string) error {
	ws := workspace.Resolve()
	if err := ws.CheckMounted(); err != nil {
		return err
	}
	return sim.RunFS(ws, runner, os.Stdout, fsScript)
}

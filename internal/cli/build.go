package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gem5dev/internal/builder"
	"gem5dev/internal/workspace"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build gem5.opt for ARM with scons",
	Long: `Run the scons build of ` + builder.Target + ` inside the source
checkout, parallelized across all host CPUs.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	ws := workspace.Resolve()
	if err := ws.CheckMounted(); err != nil {
		return err
	}
	return builder.Build(ws, runner, os.Stdout)
}

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gem5dev/internal/source"
	"gem5dev/internal/workspace"
)

var installSourceCmd = &cobra.Command{
	Use:   "install-source",
	Short: "Clone the gem5 source repository into the workspace",
	Long: `Clone the gem5 source repository into the source directory of the
workspace. When a checkout already exists the command reports so and
does nothing, so it is safe to run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: runInstallSource,
}

func runInstallSource(cmd *cobra.Command, args []string) error {
	ws := workspace.Resolve()
	if err := ws.CheckMounted(); err != nil {
		return err
	}
	return source.Install(ws, runner, os.Stdout)
}

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gem5dev/internal/source"
	"gem5dev/internal/workspace"
)

var updateSourceCmd = &cobra.Command{
	Use:   "update-source",
	Short: "Pull the latest gem5 sources into the existing checkout",
	Long: `Pull the latest changes into the existing gem5 checkout. When no
checkout exists the command reports so and does nothing; it does not
install one.`,
	Args: cobra.NoArgs,
	RunE: runUpdateSource,
}

func runUpdateSource(cmd *cobra.Command, args []string) error {
	ws := workspace.Resolve()
	if err := ws.CheckMounted(); err != nil {
		return err
	}
	return source.Update(ws, runner, os.Stdout)
}

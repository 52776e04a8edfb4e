package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gem5dev/internal/sysimage"
	"gem5dev/internal/workspace"
)

var installSystemCmd = &cobra.Command{
	Use:   "install-system",
	Short: "Download the ARM full-system kernel and disk image",
	Long: `Download and unpack the files full-system simulation boots from:
the kernel/bootloader archive and the Linaro minimal root disk image,
both from dist.gem5.org. Artifacts that are already installed are
skipped, so the command is safe to re-run and resumes a partial
install.`,
	Args: cobra.NoArgs,
	RunE: runInstallSystem,
}

func runInstallSystem(cmd *cobra.Command, args []string) error {
	ws := workspace.Resolve()
	if err := ws.CheckMounted(); err != nil {
		return err
	}
	return sysimage.Install(ws, os.Stdout)
}

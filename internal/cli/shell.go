package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"gem5dev/internal/workspace"
)

var shellCmd = &cobra.Command{
	Use:     "shell",
	Aliases: []string{"bash"},
	Short:   "Start an interactive shell in the workspace",
	Long: `Start an interactive bash in the work directory. The gem5dev
process is replaced by the shell (terminal handoff), so no command
after this one on the same line will run.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

// runShell hands the terminal over to bash. Unlike every other
// handler this one does not return on success: the process image is
// replaced via exec(2) and control never comes back to the dispatcher.
func runShell(cmd *cobra.Command, args []string) error {
	ws := workspace.Resolve()
	if err := ws.CheckMounted(); err != nil {
		return err
	}

	fmt.Println("To build gem5, run: gem5dev build")

	if err := os.Chdir(ws.Root); err != nil {
		return fmt.Errorf("enter %s: %w", ws.Root, err)
	}
	shellPath, err := exec.LookPath("bash")
	if err != nil {
		return fmt.Errorf("find bash: %w", err)
	}
	return unix.Exec(shellPath, []string{"bash"}, os.Environ())
}

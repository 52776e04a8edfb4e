// Package sim constructs and runs gem5 simulator invocations.
package sim

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gem5dev/internal/execx"
	"gem5dev/internal/workspace"
	errs "gem5dev/pkg/errors"
	"gem5dev/pkg/fileutil"
)

// FS-mode machine configuration. The stock fs.py script boots the
// VExpress platform with the kernel and disk image shipped in the
// full-system archive.
const (
	MachineType = "VExpress_GEM5_V1"
	KernelName  = "vmlinux.arm64"
)

// SEArgs returns the gem5 argv for a syscall-emulation run of binary.
// extra, when non-empty, is forwarded verbatim to the simulated
// program via se.py's --options flag.
func SEArgs(ws *workspace.Workspace, binary string, extra []string) []string {
	args := []string{ws.SEConfig(), "-c", binary}
	if len(extra) > 0 {
		args = append(args, "--options", strings.Join(extra, " "))
	}
	return args
}

// FSArgs returns the gem5 argv for a full-system boot. All four
// machine flags are passed as independent arguments. script, when
// non-empty, is handed to the booted system as its init script.
func FSArgs(ws *workspace.Workspace, script string) []string {
	args := []string{
		ws.FSConfig(),
		"--machine-type=" + MachineType,
		"--kernel=" + KernelName,
		"--disk-image=" + workspace.DiskImageName,
	}
	if script != "" {
		args = append(args, "--script="+script)
	}
	return args
}

// checkSimulator verifies the source checkout and the built gem5
// binary are present.
func checkSimulator(ws *workspace.Workspace) error {
	if !fileutil.IsDir(ws.SourceDir()) {
		return fmt.Errorf("%w: %s does not exist, run `gem5dev install-source` first",
			errs.ErrSourceNotInstalled, ws.SourceDir())
	}
	if !fileutil.Exists(ws.Gem5Binary()) {
		return fmt.Errorf("%w: %s does not exist, run `gem5dev build` first",
			errs.ErrSimulatorNotBuilt, ws.Gem5Binary())
	}
	return nil
}

// RunSE boots the simulator in syscall-emulation mode. With an empty
// binary the stock ARM hello-world test program is simulated.
func RunSE(ws *workspace.Workspace, r execx.Runner, out io.Writer, binary string) error {
	if err := checkSimulator(ws); err != nil {
		return err
	}
	if binary == "" {
		binary = ws.HelloBinary()
	}

	fmt.Fprintf(out, "Simulating %s in syscall-emulation mode...\n", binary)
	return r.Run(execx.Command{
		Name: ws.Gem5Binary(),
		Args: SEArgs(ws, binary, nil),
		Dir:  ws.SourceDir(),
	})
}

// RunProgram simulates a user-named binary in syscall-emulation mode,
// forwarding any extra arguments to the simulated program. The binary
// must exist; the simulator is not started otherwise.
func RunProgram(ws *workspace.Workspace, r execx.Runner, out io.Writer, binary string, extra []string) error {
	if err := checkSimulator(ws); err != nil {
		return err
	}
	abs, err := filepath.Abs(binary)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", binary, err)
	}
	if !fileutil.Exists(abs) {
		return fmt.Errorf("%w: %s", errs.ErrBinaryNotFound, abs)
	}

	fmt.Fprintf(out, "Simulating %s in syscall-emulation mode...\n", abs)
	return r.Run(execx.Command{
		Name: ws.Gem5Binary(),
		Args: SEArgs(ws, abs, extra),
		Dir:  ws.SourceDir(),
	})
}

// RunFS boots a full Linux system in the simulator. Requires the
// full-system files installed by `gem5dev install-system`. gem5
// resolves the kernel and disk image names through M5_PATH.
func RunFS(ws *workspace.Workspace, r execx.Runner, out io.Writer, script string) error {
	if err := checkSimulator(ws); err != nil {
		return err
	}
	if !fileutil.IsDir(ws.SystemDir()) {
		return fmt.Errorf("%w: %s does not exist, run `gem5dev install-system` first",
			errs.ErrSystemNotInstalled, ws.SystemDir())
	}

	fmt.Fprintf(out, "Booting full-system simulation (this takes a while)...\n")
	return r.Run(execx.Command{
		Name: ws.Gem5Binary(),
		Args: FSArgs(ws, script),
		Dir:  ws.SourceDir(),
		Env:  []string{"M5_PATH=" + ws.SystemDir()},
	})
}

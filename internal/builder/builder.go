// Package builder invokes the scons build of gem5.
package builder

import (
	"fmt"
	"io"
	"runtime"
	"strconv"

	"gem5dev/internal/execx"
	"gem5dev/internal/workspace"
	errs "gem5dev/pkg/errors"
	"gem5dev/pkg/fileutil"
)

// Target is the one build target this tool knows how to produce.
const Target = "build/ARM/gem5.opt"

// Args returns the scons argv for building Target with jobs parallel
// compile jobs.
func Args(jobs int) []string {
	return []string{Target, "-j", strconv.Itoa(jobs)}
}

// Build runs scons in the source checkout, parallelized across the
// host's CPUs. The checkout must exist.
func Build(ws *workspace.Workspace, r execx.Runner, out io.Writer) error {
	if !fileutil.IsDir(ws.SourceDir()) {
		return fmt.Errorf("%w: %s does not exist, run `gem5dev install-source` first",
			errs.ErrSourceNotInstalled, ws.SourceDir())
	}

	jobs := runtime.NumCPU()
	fmt.Fprintf(out, "Building %s with %d jobs...\n", Target, jobs)
	return r.Run(execx.Command{
		Name: "scons",
		Args: Args(jobs),
		Dir:  ws.SourceDir(),
	})
}

package workspace

import (
	"fmt"

	errs "gem5dev/pkg/errors"
	"gem5dev/pkg/fileutil"
)

// CheckMounted verifies that a host volume is mounted over the work
// directory. The container image ships a sentinel file at the mount
// point; if it is still visible, nothing was mounted and every
// artifact this tool produces would be lost when the container exits.
//
// Handlers that touch the source or system directories call this
// before doing anything else.
func (w *Workspace) CheckMounted() error {
	if fileutil.Exists(w.SentinelPath()) {
		return fmt.Errorf("%w: %s is not backed by a host directory\n"+
			"Restart the container with the workspace mounted, e.g.:\n"+
			"  docker run -it -v /path/on/host:%s gem5-dev",
			errs.ErrNotMounted, w.Root, w.Root)
	}
	return nil
}

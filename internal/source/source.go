// Package source manages the gem5 source checkout.
package source

import (
	"fmt"
	"io"
	"path/filepath"

	"gem5dev/internal/execx"
	"gem5dev/internal/workspace"
	errs "gem5dev/pkg/errors"
	"gem5dev/pkg/fileutil"
)

// RepoURL is the upstream gem5 repository.
const RepoURL = "https://gem5.googlesource.com/public/gem5"

// Installed reports whether a checkout already exists in the workspace.
// The .git directory is the checkout marker.
func Installed(ws *workspace.Workspace) bool {
	return fileutil.IsDir(filepath.Join(ws.SourceDir(), ".git"))
}

// Install clones the gem5 repository into the source directory. When a
// checkout already exists the clone is skipped entirely, so a second
// install is a no-op.
func Install(ws *workspace.Workspace, r execx.Runner, out io.Writer) error {
	if Installed(ws) {
		fmt.Fprintf(out, "gem5 source already installed in %s\n", ws.SourceDir())
		return nil
	}

	fmt.Fprintf(out, "Cloning %s into %s...\n", RepoURL, ws.SourceDir())
	if err := fileutil.EnsureParentDir(ws.SourceDir(), 0755); err != nil {
		return err
	}
	return r.Run(execx.Command{
		Name: "git",
		Args: []string{"clone", RepoURL, ws.SourceDir()},
	})
}

// Update pulls into the existing checkout. When no checkout exists it
// reports so and does nothing; it deliberately does not install.
func Update(ws *workspace.Workspace, r execx.Runner, out io.Writer) error {
	if !Installed(ws) {
		fmt.Fprintf(out, "%v in %s; run `gem5dev install-source` first\n",
			errs.ErrSourceNotInstalled, ws.SourceDir())
		return nil
	}

	fmt.Fprintf(out, "Updating gem5 source in %s...\n", ws.SourceDir())
	return r.Run(execx.Command{
		Name: "git",
		Args: []string{"pull"},
		Dir:  ws.SourceDir(),
	})
}

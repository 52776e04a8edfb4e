// Package workspace resolves the directory layout of the gem5
// development workspace and guards against running without the host
// volume mounted.
package workspace

import (
	"path/filepath"

	"github.com/joho/godotenv"

	"gem5dev/pkg/envutil"
)

const (
	// DefaultRoot is where the container expects the host workspace.
	DefaultRoot = "/gem5"

	// DiskImageName is the disk image the stock FS configs boot from.
	DiskImageName = "linaro-minimal-aarch64.img"

	// sentinelName marks an unmounted work directory. The container
	// image ships this file at the mount point; a host volume mounted
	// over it hides it.
	sentinelName = ".no-host-volume"
)

// Workspace is the immutable configuration resolved once at startup.
// Handlers receive it by reference and derive every path from it.
type Workspace struct {
	// Root is the base mount directory.
	Root string
}

// Resolve builds the Workspace from the environment. A .env file in
// the current directory is honored first, then GEM5DEV_ROOT, then the
// fixed default. Pure string composition; it cannot fail.
func Resolve() *Workspace {
	// Optional .env, ignored when absent.
	_ = godotenv.Load()

	return &Workspace{
		Root: envutil.Get(envutil.RootEnvVar, DefaultRoot),
	}
}

// SourceDir returns the gem5 source checkout directory.
func (w *Workspace) SourceDir() string {
	return filepath.Join(w.Root, "source")
}

// SystemDir returns the full-system binaries/disks directory.
func (w *Workspace) SystemDir() string {
	return filepath.Join(w.Root, "system")
}

// BinariesDir returns the directory holding kernels and bootloaders.
func (w *Workspace) BinariesDir() string {
	return filepath.Join(w.SystemDir(), "binaries")
}

// DisksDir returns the directory holding disk images.
func (w *Workspace) DisksDir() string {
	return filepath.Join(w.SystemDir(), "disks")
}

// DiskImage returns the path to the default FS-mode disk image.
func (w *Workspace) DiskImage() string {
	return filepath.Join(w.DisksDir(), DiskImageName)
}

// Gem5Binary returns the path to the optimized ARM gem5 build.
func (w *Workspace) Gem5Binary() string {
	return filepath.Join(w.SourceDir(), "build", "ARM", "gem5.opt")
}

// SEConfig returns the stock syscall-emulation config script.
func (w *Workspace) SEConfig() string {
	return filepath.Join(w.SourceDir(), "configs", "example", "se.py")
}

// FSConfig returns the stock full-system config script.
func (w *Workspace) FSConfig() string {
	return filepath.Join(w.SourceDir(), "configs", "example", "fs.py")
}

// HelloBinary returns the prebuilt ARM hello-world test program that
// ships with the gem5 source tree.
func (w *Workspace) HelloBinary() string {
	return filepath.Join(w.SourceDir(), "tests", "test-progs", "hello", "bin", "arm", "linux", "hello")
}

// M5OutDir returns the simulator output directory of the most recent
// run. gem5 creates m5out relative to its working directory, which is
// always the source checkout here.
func (w *Workspace) M5OutDir() string {
	return filepath.Join(w.SourceDir(), "m5out")
}

// SentinelPath returns the path of the not-mounted marker file.
func (w *Workspace) SentinelPath() string {
	return filepath.Join(w.Root, sentinelName)
}

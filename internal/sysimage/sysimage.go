// Package sysimage installs the ARM full-system files gem5 boots in
// full-system mode: a kernel/bootloader archive and a root disk image,
// both fetched from the gem5 distribution site.
package sysimage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"

	"gem5dev/internal/workspace"
	"gem5dev/pkg/fileutil"
)

const (
	distBaseURL = "http://dist.gem5.org/dist/current/arm/"

	// systemArchive holds binaries/ (kernel, bootloaders) and disks/.
	systemArchive = "aarch-system-201901106.tar.bz2"

	// diskArchive is the compressed root filesystem image.
	diskArchive = workspace.DiskImageName + ".bz2"

	// compatDiskName is the disk image filename some stock fs configs
	// still look for; installed as a symlink to the real image.
	compatDiskName = "aarch64-ubuntu-trusty-headless.img"
)

// Checksums pins the expected sha256 of each dist artifact. The dist
// site publishes none, so the map stays empty until upstream does;
// download always records the computed digest in a .sha256 sidecar.
var Checksums = map[string]digest.Digest{}

// Install downloads and unpacks the full-system files. Each artifact
// is guarded by a does-the-target-exist check, so a second install is
// a no-op and a partial install resumes where it left off.
func Install(ws *workspace.Workspace, out io.Writer) error {
	if err := fileutil.EnsureDir(ws.SystemDir(), 0755); err != nil {
		return err
	}

	if err := installSystemArchive(ws, out); err != nil {
		return err
	}
	if err := installDiskImage(ws, out); err != nil {
		return err
	}
	return fixupDiskName(ws, out)
}

// installSystemArchive fetches and extracts the kernel/bootloader
// archive. The binaries directory is the extraction marker.
func installSystemArchive(ws *workspace.Workspace, out io.Writer) error {
	if fileutil.IsDir(ws.BinariesDir()) {
		fmt.Fprintf(out, "Full-system binaries already installed in %s\n", ws.BinariesDir())
		return nil
	}

	archivePath := filepath.Join(ws.SystemDir(), systemArchive)
	if !fileutil.Exists(archivePath) {
		if err := download(distBaseURL+systemArchive, archivePath, Checksums[systemArchive], out); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Extracting %s...\n", archivePath)
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", archivePath, err)
	}
	defer f.Close()

	if err := extractTar(f, ws.SystemDir()); err != nil {
		return err
	}

	// The archive served its purpose; the extracted tree is what gem5
	// reads. Keep the .sha256 sidecar as the record of what was fetched.
	if err := os.Remove(archivePath); err != nil {
		return fmt.Errorf("remove %s: %w", archivePath, err)
	}
	return nil
}

// installDiskImage fetches and decompresses the root disk image.
func installDiskImage(ws *workspace.Workspace, out io.Writer) error {
	if fileutil.Exists(ws.DiskImage()) {
		fmt.Fprintf(out, "Disk image already installed at %s\n", ws.DiskImage())
		return nil
	}

	compressed := filepath.Join(ws.DisksDir(), diskArchive)
	if !fileutil.Exists(compressed) {
		if err := download(distBaseURL+"disks/"+diskArchive, compressed, Checksums[diskArchive], out); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Decompressing %s...\n", compressed)
	if err := decompressFile(compressed, ws.DiskImage()); err != nil {
		return err
	}
	if err := os.Remove(compressed); err != nil {
		return fmt.Errorf("remove %s: %w", compressed, err)
	}
	return nil
}

// fixupDiskName symlinks the legacy disk image name to the installed
// image so older fs configs keep working.
func fixupDiskName(ws *workspace.Workspace, out io.Writer) error {
	link := filepath.Join(ws.DisksDir(), compatDiskName)
	if fileutil.Exists(link) {
		return nil
	}
	if err := os.Symlink(workspace.DiskImageName, link); err != nil {
		return fmt.Errorf("symlink %s: %w", link, err)
	}
	fmt.Fprintf(out, "Linked %s -> %s\n", link, workspace.DiskImageName)
	return nil
}

package sysimage

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/opencontainers/go-digest"

	"gem5dev/pkg/fileutil"
)

// download fetches url into dest. The body streams to dest+".partial"
// while the sha256 is computed, and the file is renamed into place only
// after a complete, verified read, so an interrupted download never
// leaves a truncated artifact behind.
//
// expected, when non-empty, is checked against the computed digest and
// a mismatch fails the download. The computed digest is always written
// to dest+".sha256" so later installs can audit what they got (the
// gem5 dist site publishes no checksums of its own).
func download(url, dest string, expected digest.Digest, out io.Writer) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: unexpected status %s", url, resp.Status)
	}

	if resp.ContentLength > 0 {
		fmt.Fprintf(out, "Downloading %s (%s)...\n", url,
			datasize.ByteSize(resp.ContentLength).HumanReadable())
	} else {
		fmt.Fprintf(out, "Downloading %s...\n", url)
	}

	if err := fileutil.EnsureParentDir(dest, 0755); err != nil {
		return err
	}

	partial := dest + ".partial"
	f, err := os.Create(partial)
	if err != nil {
		return fmt.Errorf("create %s: %w", partial, err)
	}
	defer func() {
		f.Close()
		os.Remove(partial)
	}()

	// Hash while streaming so the file is read exactly once.
	digester := digest.Canonical.Digester()
	size, err := io.Copy(io.MultiWriter(f, digester.Hash()), resp.Body)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", partial, err)
	}

	actual := digester.Digest()
	if expected != "" && actual != expected {
		return fmt.Errorf("digest mismatch for %s: expected %s, got %s", url, expected, actual)
	}

	if err := os.Rename(partial, dest); err != nil {
		return fmt.Errorf("rename %s: %w", partial, err)
	}
	if err := fileutil.AtomicWriteFile(dest+".sha256", []byte(actual.String()+"\n"), 0644); err != nil {
		return err
	}

	fmt.Fprintf(out, "Downloaded %s (%s, %s)\n", dest,
		datasize.ByteSize(size).HumanReadable(), actual)
	return nil
}

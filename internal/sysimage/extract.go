package sysimage

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gem5dev/pkg/fileutil"
)

// Compression magic bytes.
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
)

// newDecompressReader wraps r with the decompressor matching its magic
// bytes. Plain streams pass through unchanged.
func newDecompressReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(3)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		return gzip.NewReader(br)
	case bytes.HasPrefix(magic, bzip2Magic):
		return bzip2.NewReader(br), nil
	default:
		return br, nil
	}
}

// extractTar unpacks a (possibly compressed) tar stream into destDir.
// Entries escaping destDir are rejected.
func extractTar(r io.Reader, destDir string) error {
	dr, err := newDecompressReader(r)
	if err != nil {
		return fmt.Errorf("read archive: %w", err)
	}

	tr := tar.NewReader(dr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read tar: %w", err)
		}

		name := strings.TrimPrefix(header.Name, "./")
		if name == "" {
			continue
		}
		if strings.Contains(name, "..") {
			return fmt.Errorf("tar entry escapes destination: %s", header.Name)
		}
		target := filepath.Join(destDir, name)

		switch header.Typeflag {
		case tar.TypeDir:
			if err := fileutil.EnsureDir(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := fileutil.EnsureParentDir(target, 0755); err != nil {
				return err
			}
			f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode)&0777)
			if err != nil {
				return fmt.Errorf("create %s: %w", target, err)
			}
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				return fmt.Errorf("extract %s: %w", target, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", target, err)
			}
		case tar.TypeSymlink:
			if err := fileutil.EnsureParentDir(target, 0755); err != nil {
				return err
			}
			if err := os.Symlink(header.Linkname, target); err != nil && !os.IsExist(err) {
				return fmt.Errorf("symlink %s: %w", target, err)
			}
		default:
			// Hard links, devices and the like do not appear in the
			// dist archives; skip anything unexpected.
		}
	}
	return nil
}

// decompressFile decompresses src into dest. Used for the standalone
// .img.bz2 disk image, which is not a tar archive.
func decompressFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	dr, err := newDecompressReader(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}

	partial := dest + ".partial"
	out, err := os.Create(partial)
	if err != nil {
		return fmt.Errorf("create %s: %w", partial, err)
	}
	defer func() {
		out.Close()
		os.Remove(partial)
	}()

	if _, err := io.Copy(out, dr); err != nil {
		return fmt.Errorf("decompress %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write %s: %w", partial, err)
	}
	if err := os.Rename(partial, dest); err != nil {
		return fmt.Errorf("rename %s: %w", partial, err)
	}
	return nil
}

package sysimage

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gem5dev/internal/workspace"
)

func TestDownloadWritesFileAndSidecar(t *testing.T) {
	payload := []byte("system archive bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "archive.tar.bz2")
	var out bytes.Buffer

	require.NoError(t, download(srv.URL, dest, "", &out))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	sidecar, err := os.ReadFile(dest + ".sha256")
	require.NoError(t, err)
	assert.Equal(t, digest.FromBytes(payload).String(), strings.TrimSpace(string(sidecar)))

	assert.NoFileExists(t, dest+".partial")
}

func TestDownloadVerifiesDigest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("tampered content"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "archive.tar.bz2")
	var out bytes.Buffer

	err := download(srv.URL, dest, digest.FromString("expected content"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digest mismatch")
	assert.NoFileExists(t, dest)
}

func TestDownloadRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "archive.tar.bz2")
	var out bytes.Buffer

	err := download(srv.URL, dest, "", &out)
	require.Error(t, err)
	assert.NoFileExists(t, dest)
}

func TestInstallSkipsExistingArtifacts(t *testing.T) {
	ws := &workspace.Workspace{Root: t.TempDir()}
	require.NoError(t, os.MkdirAll(ws.BinariesDir(), 0755))
	require.NoError(t, os.MkdirAll(ws.DisksDir(), 0755))
	require.NoError(t, os.WriteFile(ws.DiskImage(), []byte("img"), 0644))

	var out bytes.Buffer
	// No test server: a download attempt would fail loudly.
	require.NoError(t, Install(ws, &out))

	assert.Contains(t, out.String(), "already installed")
}

func TestInstallAppliesDiskNameFixup(t *testing.T) {
	ws := &workspace.Workspace{Root: t.TempDir()}
	require.NoError(t, os.MkdirAll(ws.BinariesDir(), 0755))
	require.NoError(t, os.MkdirAll(ws.DisksDir(), 0755))
	require.NoError(t, os.WriteFile(ws.DiskImage(), []byte("img"), 0644))

	var out bytes.Buffer
	require.NoError(t, Install(ws, &out))

	link, err := os.Readlink(filepath.Join(ws.DisksDir(), compatDiskName))
	require.NoError(t, err)
	assert.Equal(t, workspace.DiskImageName, link)

	// Second install leaves the existing link alone.
	require.NoError(t, Install(ws, &out))
}

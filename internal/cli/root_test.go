package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"gem5dev/internal/execx"
	"gem5dev/internal/workspace"
	errs "gem5dev/pkg/errors"
	"gem5dev/pkg/envutil"
)

// withRecorder swaps the package runner for a recorder for the
// duration of the test.
func withRecorder(t *testing.T) *execx.Recorder {
	t.Helper()
	rec := &execx.Recorder{}
	old := runner
	runner = rec
	t.Cleanup(func() { runner = old })
	return rec
}

func TestKnownCommand(t *testing.T) {
	for _, tok := range []string{
		"help", "install-source", "update-source", "install-system",
		"build", "run-se", "run-fs", "compile-program",
		"cross-compile-program", "run-program-se", "logs", "shell", "bash",
	} {
		if !knownCommand(tok) {
			t.Errorf("expected %q to be recognized", tok)
		}
	}
	if knownCommand("frobnicate") {
		t.Error("expected frobnicate to be unrecognized")
	}
}

func TestNextSegment(t *testing.T) {
	// Plain commands travel alone.
	seg, rest := nextSegment([]string{"build", "run-se"})
	if len(seg) != 1 || seg[0] != "build" || len(rest) != 1 {
		t.Fatalf("segment = %v, rest = %v", seg, rest)
	}

	// Rest-consuming commands take everything after them.
	seg, rest = nextSegment([]string{"compile-program", "a.c", "-O2"})
	if len(seg) != 3 || rest != nil {
		t.Fatalf("segment = %v, rest = %v", seg, rest)
	}

	// Flag tokens travel alone.
	seg, rest = nextSegment([]string{"--version", "build"})
	if len(seg) != 1 || seg[0] != "--version" || len(rest) != 1 {
		t.Fatalf("segment = %v, rest = %v", seg, rest)
	}
}

func TestUnknownCommandPrintsUsage(t *testing.T) {
	err := run([]string{"frobnicate"})
	if !errors.Is(err, errs.ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
	if !strings.Contains(err.Error(), "Usage:") {
		t.Fatalf("expected usage text in error, got %q", err.Error())
	}
}

func TestShellOptionTokensIgnored(t *testing.T) {
	if err := run([]string{"+x"}); err != nil {
		t.Fatalf("expected shell option toggles to be ignored, got %v", err)
	}
}

func TestMountGuardBlocksSideEffects(t *testing.T) {
	root := t.TempDir()
	ws := &workspace.Workspace{Root: root}
	if err := os.WriteFile(ws.SentinelPath(), nil, 0644); err != nil {
		t.Fatalf("write sentinel: %v", err)
	}
	t.Setenv(envutil.RootEnvVar, root)
	rec := withRecorder(t)

	for _, command := range []string{"install-source", "update-source", "build"} {
		err := run([]string{command})
		if !errors.Is(err, errs.ErrNotMounted) {
			t.Fatalf("%s: expected ErrNotMounted, got %v", command, err)
		}
	}
	if len(rec.Commands) != 0 {
		t.Fatalf("no external command may run with the sentinel present, got %v", rec.Commands)
	}
	if entries, err := os.ReadDir(root); err != nil || len(entries) != 1 {
		t.Fatalf("guarded handlers must not touch the filesystem, found %v", entries)
	}
}

func TestWorkingDirectoryRestoredBetweenCommands(t *testing.T) {
	elsewhere := t.TempDir()
	chdirCmd := &cobra.Command{
		Use:  "chdir-probe",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return os.Chdir(elsewhere)
		},
	}
	rootCmd.AddCommand(chdirCmd)
	t.Cleanup(func() { rootCmd.RemoveCommand(chdirCmd) })

	start, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	if err := run([]string{"chdir-probe", "chdir-probe"}); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	// Resolve symlinks: on some systems TempDir paths go through /private.
	wantResolved, _ := filepath.EvalSymlinks(start)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Fatalf("working directory not restored: got %s, want %s", got, start)
	}
}

func TestSequentialCommandsRunLeftToRight(t *testing.T) {
	root := t.TempDir()
	t.Setenv(envutil.RootEnvVar, root)
	rec := withRecorder(t)

	// install-source then build: clone first, then scons.
	if err := os.MkdirAll(filepath.Join(root, "source"), 0755); err != nil {
		t.Fatalf("create source dir: %v", err)
	}
	if err := run([]string{"install-source", "build"}); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(rec.Commands) != 2 {
		t.Fatalf("expected 2 commands, got %v", rec.Commands)
	}
	if rec.Commands[0].Name != "git" || rec.Commands[1].Name != "scons" {
		t.Fatalf("expected git then scons, got %v", rec.Commands)
	}
}

package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"gem5dev/internal/workspace"
	"gem5dev/pkg/fileutil"
)

var logsFollow bool

var logsCmd = &cobra.Command{
	Use:   "logs [FILE]",
	Short: "Show simulator output from the last run",
	Long: `Show a file from the m5out directory of the most recent simulator
run. FILE is relative to m5out and defaults to stats.txt. With -f the
output is followed while a running simulation keeps appending to it.

Examples:
  gem5dev logs
  gem5dev logs -f
  gem5dev logs system.terminal`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow the file as the simulation appends to it")
}

func runLogs(cmd *cobra.Command, args []string) error {
	ws := workspace.Resolve()
	if err := ws.CheckMounted(); err != nil {
		return err
	}

	name := "stats.txt"
	if len(args) > 0 {
		name = args[0]
	}
	path := filepath.Join(ws.M5OutDir(), name)

	if !fileutil.Exists(path) {
		if !fileutil.IsDir(ws.M5OutDir()) {
			return fmt.Errorf("no simulator output yet: %s does not exist", ws.M5OutDir())
		}
		return fmt.Errorf("no such output file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	// Print what is there already; with -f keep going from the
	// resulting offset.
	offset, err := io.Copy(os.Stdout, file)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !logsFollow {
		return nil
	}
	return followFile(file, path, offset)
}

// followFile watches path and copies newly appended bytes to stdout
// until interrupted. gem5 truncates and rewrites stats.txt between
// stat dumps, so a shrinking file resets the offset.
func followFile(file *os.File, path string, offset int64) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				offset = copyNewContent(file, offset)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)

		case <-sigChan:
			return nil
		}
	}
}

// copyNewContent copies everything past offset to stdout and returns
// the new offset.
func copyNewContent(file *os.File, offset int64) int64 {
	info, err := file.Stat()
	if err != nil {
		return offset
	}
	if info.Size() < offset {
		// Truncated and rewritten; start over.
		offset = 0
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return offset
	}
	n, _ := io.Copy(os.Stdout, file)
	return offset + n
}

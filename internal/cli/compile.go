package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gem5dev/internal/compile"
)

var compileCmd = &cobra.Command{
	Use:   "compile-program FILE [CFLAGS...]",
	Short: "Compile a guest program with the native toolchain",
	Long: `Compile a C (.c) or C++ (.cpp) source file. Extra arguments are
passed to the compiler in place of the default flags (` +
		"`-static`" + `, which SE-mode binaries need). The output name is the
source name with its extension stripped.

Examples:
  gem5dev compile-program hello.c
  gem5dev compile-program bench.cpp -O2 -static`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

var crossCompileCmd = &cobra.Command{
	Use:   "cross-compile-program FILE [CFLAGS...]",
	Short: "Compile a guest program with the AArch64 cross toolchain",
	Long: `Like compile-program, but with the aarch64-linux-gnu cross
toolchain, producing ARM binaries the simulator can run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCrossCompile,
}

func init() {
	// Everything after FILE belongs to the compiler, including flags.
	compileCmd.Flags().SetInterspersed(false)
	crossCompileCmd.Flags().SetInterspersed(false)
}

func runCompile(cmd *cobra.Command, args []string) error {
	return compile.Compile(runner, os.Stdout, args[0], false, args[1:])
}

func runCrossCompile(cmd *cobra.Command, args []string) error {
	return compile.Compile(runner, os.Stdout, args[0], true, args[1:])
}

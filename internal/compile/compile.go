// Package compile builds guest programs for the simulator, either with
// the native toolchain or the AArch64 cross toolchain.
package compile

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gem5dev/internal/execx"
	errs "gem5dev/pkg/errors"
)

// DefaultFlags are used when the caller supplies no compiler flags.
// SE-mode gem5 loads statically linked binaries.
var DefaultFlags = []string{"-static"}

// Cross toolchain prefixes for the ARM full-system target.
const crossPrefix = "aarch64-linux-gnu-"

// Compiler returns the compiler to use for file. The choice follows
// the source extension: .c gets the C compiler, .cpp the C++ one.
// Any other extension is unsupported.
func Compiler(file string, cross bool) (string, error) {
	var cc string
	switch filepath.Ext(file) {
	case ".c":
		cc = "gcc"
	case ".cpp":
		cc = "g++"
	default:
		return "", fmt.Errorf("%w: %q (expected .c or .cpp)",
			errs.ErrUnsupportedExtension, filepath.Ext(file))
	}
	if cross {
		cc = crossPrefix + cc
	}
	return cc, nil
}

// OutputName strips the source extension: hello.c compiles to hello.
func OutputName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file))
}

// Args returns the compiler argv for file. Caller-supplied flags
// replace DefaultFlags rather than appending to them.
func Args(file string, flags []string) []string {
	if len(flags) == 0 {
		flags = DefaultFlags
	}
	args := []string{"-o", OutputName(file), file}
	return append(args, flags...)
}

// Compile compiles one source file in the current directory. cross
// selects the AArch64 cross toolchain over the native one.
func Compile(r execx.Runner, out io.Writer, file string, cross bool, flags []string) error {
	cc, err := Compiler(file, cross)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Compiling %s -> %s with %s...\n", file, OutputName(file), cc)
	return r.Run(execx.Command{
		Name: cc,
		Args: Args(file, flags),
	})
}

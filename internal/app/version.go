package app

import (
	"fmt"
	"io"
)

// Version is the release version stamped into --version output.
const Version = "1.0.0"

// HasVersionFlag reports whether args (os.Args[1:] form) request the
// version banner instead of a subcommand.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "rsa4096 %s\n", Version)
}

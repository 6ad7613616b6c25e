package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/pageid/cmd/pageid/commands"
)

const (
	cmdName = "pageid"

	shortDesc = "Convert between the path identities of Vike source files."
	longDesc  = `pageid converts between the three ways a source file is referenced in a
Vike build: an absolute filesystem path, a path relative to the project root
written with a leading "/", and a package import specifier.

It builds resolved and unresolved file identities, normalizes module ids
reported by the bundler, and resolves labels for diagnostics.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}

// Command nfasim decides whether an epsilon-NFA accepts an input string.
package main

import (
	"os"

	"github.com/geange/nfa/internal/cli"
	"github.com/geange/nfa/internal/config"
)

func main() {
	if err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}

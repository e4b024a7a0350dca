// Command plorth runs the plorth interpreter's command-line interface
// (spec.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/plorthlang/plorth/cmd/plorth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

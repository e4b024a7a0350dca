// Package cmd implements the plorth command-line interface, following the
// teacher's cmd/dwscript/cmd command-per-file cobra layout (spec.md §6
// "Command-line REPL (optional host)").
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build-time linker flags (-ldflags
	// "-X ...=..."), matching the teacher's version.go pattern.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "plorth",
	Short: "plorth is an interpreter for a small concatenative, prototype-based language",
	Long: `plorth is an interpreter for a small concatenative, stack-based,
prototype-based programming language: programs are whitespace-separated
tokens that push values onto a shared data stack or invoke named words
that consume and produce values on that stack.`,
	Version: Version,
}

// Execute runs the root command; its exit code follows spec.md §6 "Exit
// codes" (0 success, 1 uncaught top-level error, 2 argument misuse) — see
// main.go, which maps cobra's error return to that scheme.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(2)
}

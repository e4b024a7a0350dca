package cmd

import (
	"fmt"
	"os"

	"github.com/plorthlang/plorth/internal/builtins"
	"github.com/plorthlang/plorth/internal/errors"
	"github.com/plorthlang/plorth/internal/modules"
	"github.com/plorthlang/plorth/internal/parser"
	"github.com/plorthlang/plorth/internal/runtime"
)

// stdoutAdapter is the runtime.Output adapter writing to os.Stdout
// (spec.md §6 "Output adapter").
type stdoutAdapter struct{}

func (stdoutAdapter) Write(s string) error {
	_, err := fmt.Fprint(os.Stdout, s)
	return err
}

// newRuntime builds a fully-wired runtime: global dictionary, prototype
// library (internal/builtins), stdout output adapter, and a module loader
// whose search path comes from the PLORTH_PATH environment variable
// (spec.md §6 "Environment", SPEC_FULL.md §12).
func newRuntime() *runtime.Runtime {
	searchPath := modules.SearchPathFromEnv(os.Getenv("PLORTH_PATH"))
	loader := modules.New(searchPath)

	rt := runtime.New(
		runtime.WithOutput(stdoutAdapter{}),
		runtime.WithModuleLoader(loader),
	)
	builtins.Install(rt)
	return rt
}

// formatParseError renders a parser error with a source excerpt and caret
// via internal/errors, falling back to the bare error text for anything
// that isn't a *parser.Error (spec.md §4.4 "Error policy").
func formatParseError(err error, src string) string {
	perr, ok := err.(*parser.Error)
	if !ok {
		return err.Error()
	}
	return errors.New(perr.Position, perr.Message, src).Format(false)
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/plorthlang/plorth/internal/compiler"
	"github.com/plorthlang/plorth/internal/context"
	"github.com/plorthlang/plorth/internal/parser"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a plorth program from a file, stdin, or an inline expression",
	Long: `Execute a plorth program.

Examples:
  plorth run script.plorth
  plorth run -v -e "1 2 +"
  cat script.plorth | plorth run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
}

func runScript(_ *cobra.Command, args []string) error {
	var src, filename string

	switch {
	case evalExpr != "":
		src, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			exitWithError("reading %s: %v", filename, err)
		}
		src = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitWithError("reading stdin: %v", err)
		}
		src, filename = string(data), "<stdin>"
	}

	script, err := parser.Parse(filename, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatParseError(err, src))
		os.Exit(1)
	}

	rt := newRuntime()
	comp := compiler.New(rt, rt.Mem)
	quote := comp.CompileScript(script)

	ctx := context.New(rt)
	if !ctx.Call(quote) {
		e := ctx.Error()
		fmt.Fprintf(os.Stderr, "runtime error: %s: %s\n", e.ErrorCode(), e.ErrorMessage())
		os.Exit(1)
	}
	quote.Release()

	if verbose {
		printStack(ctx)
	}
	return nil
}

// printStack pretty-prints the data stack bottom-to-top, one value per
// line, matching the REPL's own stack display (spec.md §6).
func printStack(ctx *context.Context) {
	for _, v := range ctx.Stack() {
		fmt.Fprintln(os.Stdout, v.ToSource())
	}
}

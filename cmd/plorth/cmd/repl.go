package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/plorthlang/plorth/internal/compiler"
	"github.com/plorthlang/plorth/internal/context"
	"github.com/plorthlang/plorth/internal/parser"
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Read a line, accumulate it into a buffer, and once the buffer's
brackets/braces/parentheses, strings, and word definitions balance,
compile it and call it; pretty-print the stack; report errors to stderr
(spec.md §6 "Command-line REPL").`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	rt := newRuntime()
	ctx := context.New(rt)
	repl(rt, ctx, os.Stdin, os.Stdout, os.Stderr)
	return nil
}

// incompleteMarkers are the parser's error messages that mean "ran out of
// input before the construct closed" rather than a genuine syntax error —
// the signal the REPL uses to keep reading lines instead of reporting a
// failure (SPEC_FULL.md §12 "REPL bracket-balance buffering").
var incompleteMarkers = []string{
	"unterminated array literal",
	"unterminated object literal",
	"unterminated quote literal",
	"unterminated word definition",
	"unterminated string literal",
	"unterminated escape sequence",
	"unexpected end of file, expected a value",
}

func isIncomplete(err error) bool {
	msg := err.Error()
	for _, marker := range incompleteMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func repl(rt *runtime.Runtime, ctx *context.Context, in *os.File, out, errOut *os.File) {
	scanner := bufio.NewScanner(in)
	var buf strings.Builder

	prompt := func() {
		if buf.Len() == 0 {
			fmt.Fprint(out, "plorth> ")
		} else {
			fmt.Fprint(out, "     -> ")
		}
	}

	prompt()
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteByte('\n')

		script, err := parser.Parse("<repl>", buf.String())
		if err != nil {
			if isIncomplete(err) {
				prompt()
				continue
			}
			fmt.Fprintln(errOut, formatParseError(err, buf.String()))
			buf.Reset()
			prompt()
			continue
		}

		comp := compiler.New(rt, rt.Mem)
		quote := comp.CompileScript(script)
		if !ctx.Call(quote) {
			e := ctx.Error()
			fmt.Fprintf(errOut, "runtime error: %s: %s\n", e.ErrorCode(), e.ErrorMessage())
			ctx.ClearError()
		}
		quote.Release()
		for _, v := range ctx.Stack() {
			fmt.Fprintln(out, v.ToSource())
		}

		buf.Reset()
		prompt()
	}
	fmt.Fprintln(out)
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/plorthlang/plorth/internal/compiler"
	"github.com/plorthlang/plorth/internal/parser"
	"github.com/spf13/cobra"
)

var parseExpression bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse and compile a program, printing its to_source() rendering",
	Long: `Parse a plorth program and print the compiled quote's to_source()
rendering — the round-trip property spec.md §8 requires: re-parsing and
re-compiling that output yields an equal quote.

If no file is given, reads from stdin. Use -e to parse an inline expression.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an inline expression instead of a file")
}

func runParse(_ *cobra.Command, args []string) error {
	var src, filename string

	switch {
	case parseExpression:
		if len(args) == 0 {
			exitWithError("no expression provided")
		}
		src, filename = args[0], "<eval>"
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

	comp := compiler.New(nil, nil)
	quote := comp.CompileScript(script)
	fmt.Println(quote.ToSource())
	quote.Release()
	return nil
}

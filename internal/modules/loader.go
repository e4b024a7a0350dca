// Package modules implements the import(context, path) -> object | null
// module loader of spec.md §6 "Module loader", with the search-path
// resolution supplemented from original_source/'s module.cpp (SPEC_FULL.md
// §12): a PLORTH_PATH-style search list, trying "<path>.plorth" then
// "<path>/index.plorth" within each root in order, first hit wins.
package modules

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/plorthlang/plorth/internal/compiler"
	"github.com/plorthlang/plorth/internal/context"
	"github.com/plorthlang/plorth/internal/parser"
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/token"
	"github.com/plorthlang/plorth/internal/value"
)

// Loader resolves import paths against a fixed search list (runtime.ModuleLoader).
type Loader struct {
	SearchPath []string
}

// New constructs a Loader with the given search roots, in priority order.
func New(searchPath []string) *Loader {
	return &Loader{SearchPath: append([]string(nil), searchPath...)}
}

// SearchPathFromEnv splits an OS-specific PLORTH_PATH-style environment
// variable value on os.PathListSeparator (':' on POSIX, ';' on Windows,
// spec.md §12).
func SearchPathFromEnv(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(value, string(os.PathListSeparator)) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// resolve locates the source file for path within l.SearchPath, trying
// "<path>.plorth" then "<path>/index.plorth" within each root in turn
// (SPEC_FULL.md §12, original_source/'s module.cpp resolution order).
func (l *Loader) resolve(path string) (string, bool) {
	for _, root := range l.SearchPath {
		direct := filepath.Join(root, path+".plorth")
		if fileExists(direct) {
			return direct, true
		}
		index := filepath.Join(root, path, "index.plorth")
		if fileExists(index) {
			return index, true
		}
	}
	return "", false
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Import implements runtime.ModuleLoader: it resolves path, parses and
// compiles the module source, executes it in a fresh child context
// sharing caller's runtime, and returns that child context's local
// dictionary packaged as an object (spec.md §6). Import failure sets an
// import error on the caller's context and returns (nil, error).
func (l *Loader) Import(caller runtime.ImportContext, path string) (*value.Value, error) {
	rt := caller.Runtime()

	file, ok := l.resolve(path)
	if !ok {
		err := value.Manage(rt.Mem, value.NewError(value.ErrImport, "module not found: "+path, token.Position{}))
		caller.SetError(err)
		err.Release()
		return nil, errImportFailed{path: path, reason: "not found"}
	}

	src, readErr := os.ReadFile(file)
	if readErr != nil {
		err := value.Manage(rt.Mem, value.NewError(value.ErrImport, "cannot read module "+path+": "+readErr.Error(), token.Position{}))
		caller.SetError(err)
		err.Release()
		return nil, errImportFailed{path: path, reason: readErr.Error()}
	}

	script, parseErr := parser.Parse(file, string(src))
	if parseErr != nil {
		err := value.Manage(rt.Mem, value.NewError(value.ErrImport, "cannot compile module "+path+": "+parseErr.Error(), token.Position{}))
		caller.SetError(err)
		err.Release()
		return nil, errImportFailed{path: path, reason: parseErr.Error()}
	}

	comp := compiler.New(rt, rt.Mem)
	quote := comp.CompileScript(script)

	child := context.New(rt)
	ok2 := child.Call(quote)
	quote.Release()
	if !ok2 {
		err := child.Error().Retain()
		caller.SetError(err)
		err.Release()
		return nil, errImportFailed{path: path, reason: "module raised an error"}
	}

	return value.Manage(rt.Mem, child.LocalWords()), nil
}

type errImportFailed struct {
	path   string
	reason string
}

func (e errImportFailed) Error() string { return "import " + e.path + ": " + e.reason }

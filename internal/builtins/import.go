package builtins

import (
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/value"
)

// installImport installs the global "import" word (spec.md §6 "Module
// loader"): pop a path string and resolve it through the runtime's
// configured ModuleLoader, pushing the resulting object or raising an
// import error the loader itself sets.
func installImport(rt *runtime.Runtime) {
	globalWord(rt, "import", func(ctx value.Context) bool {
		path, ok := ctx.PopString()
		if !ok {
			return false
		}
		defer path.Release()

		if rt.ModuleLoader == nil {
			return raiseType(ctx, "no module loader configured")
		}
		ic, ok := ctx.(runtime.ImportContext)
		if !ok {
			return raiseType(ctx, "import requires a context exposing its runtime")
		}
		obj, err := rt.ModuleLoader.Import(ic, path.Str())
		if err != nil {
			// ModuleLoader.Import already set the pending error.
			return false
		}
		ctx.Push(obj)
		obj.Release()
		return true
	})
}

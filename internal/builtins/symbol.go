package builtins

import (
	"github.com/plorthlang/plorth/internal/memory"
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/value"
)

// installSymbol installs the symbol prototype's minimum required words
// (spec.md §4.10): call (resolve and execute) and position.
func installSymbol(rt *runtime.Runtime) {
	p := rt.Prototype(value.KindSymbol)

	word(rt.Mem, p, "call", func(ctx value.Context) bool {
		sym, ok := ctx.PopSymbol()
		if !ok {
			return false
		}
		q := selfCallQuote(ctx.Mem(), sym)
		ok2 := ctx.Call(q)
		q.Release()
		sym.Release()
		return ok2
	})

	word(rt.Mem, p, "position", func(ctx value.Context) bool {
		sym, ok := ctx.PopSymbol()
		if !ok {
			return false
		}
		pos := sym.SymbolPosition()
		var out *value.Value
		if pos.IsZero() {
			out = value.Manage(ctx.Mem(), value.Null())
		} else {
			out = value.Manage(ctx.Mem(), value.NewString(pos.String()))
		}
		sym.Release()
		ctx.Push(out)
		out.Release()
		return true
	})
}

// selfCallQuote wraps a single symbol in a one-child compiled quote so
// symbol.call can reuse Context.Call's exec dispatch instead of
// duplicating §4.8 resolution here.
func selfCallQuote(mem *memory.Manager, sym *value.Value) *value.Value {
	q := value.Manage(mem, value.NewCompiledQuote([]*value.Value{sym}))
	return q
}

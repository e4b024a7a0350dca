package builtins

import (
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/value"
)

// installQuote installs the quote prototype's call word: pop a quote and
// run it via Context.Call, the same primitive the interpreter loop uses
// for words (spec.md §4.6, §4.9).
func installQuote(rt *runtime.Runtime) {
	p := rt.Prototype(value.KindQuote)

	word(rt.Mem, p, "call", func(ctx value.Context) bool {
		q, ok := ctx.PopQuote()
		if !ok {
			return false
		}
		ok2 := ctx.Call(q)
		q.Release()
		return ok2
	})

	word(rt.Mem, p, "compose", func(ctx value.Context) bool {
		b, ok := ctx.PopQuote()
		if !ok {
			return false
		}
		a, ok := ctx.PopQuote()
		if !ok {
			b.Release()
			return false
		}
		if a.IsNativeQuote() || b.IsNativeQuote() {
			a.Release()
			b.Release()
			return raiseType(ctx, "compose requires two compiled quotes")
		}
		children := append(append([]*value.Value{}, a.Children()...), b.Children()...)
		out := value.Manage(ctx.Mem(), value.NewCompiledQuote(children))
		a.Release()
		b.Release()
		ctx.Push(out)
		out.Release()
		return true
	})
}

package builtins

import (
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/value"
)

// installWord installs the word prototype's minimum required words
// (spec.md §4.10): symbol, quote, call, define.
func installWord(rt *runtime.Runtime) {
	p := rt.Prototype(value.KindWord)

	word(rt.Mem, p, "symbol", func(ctx value.Context) bool {
		w, ok := ctx.PopWord()
		if !ok {
			return false
		}
		sym := w.WordSymbol()
		ctx.Push(sym)
		w.Release()
		return true
	})

	word(rt.Mem, p, "quote", func(ctx value.Context) bool {
		w, ok := ctx.PopWord()
		if !ok {
			return false
		}
		q := w.WordQuote()
		ctx.Push(q)
		w.Release()
		return true
	})

	// call: run the word's quote body directly, without installing it
	// into any dictionary (spec.md §4.10).
	word(rt.Mem, p, "call", func(ctx value.Context) bool {
		w, ok := ctx.PopWord()
		if !ok {
			return false
		}
		ok2 := ctx.Call(w.WordQuote())
		w.Release()
		return ok2
	})

	// define: install the word into the context's local dictionary, the
	// same effect executing a Word token has (spec.md §4.9), exposed as an
	// explicit primitive for programs that build words dynamically.
	word(rt.Mem, p, "define", func(ctx value.Context) bool {
		w, ok := ctx.PopWord()
		if !ok {
			return false
		}
		ctx.Define(w)
		w.Release()
		return true
	})
}

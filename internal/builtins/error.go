package builtins

import (
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/value"
)

// installError installs the error prototype's minimum required words
// (spec.md §4.10): code, message, position, throw. It also installs
// error.clear/error.current as global words per spec.md §4.7 ("User code
// clears the error via the error.clear primitive or may inspect it via
// error.current").
func installError(rt *runtime.Runtime) {
	p := rt.Prototype(value.KindError)

	word(rt.Mem, p, "code", func(ctx value.Context) bool {
		e, ok := ctx.PopError()
		if !ok {
			return false
		}
		n := value.Manage(ctx.Mem(), value.NewString(e.ErrorCode().String()))
		e.Release()
		ctx.Push(n)
		n.Release()
		return true
	})

	word(rt.Mem, p, "message", func(ctx value.Context) bool {
		e, ok := ctx.PopError()
		if !ok {
			return false
		}
		s := value.Manage(ctx.Mem(), value.NewString(e.ErrorMessage()))
		e.Release()
		ctx.Push(s)
		s.Release()
		return true
	})

	word(rt.Mem, p, "position", func(ctx value.Context) bool {
		e, ok := ctx.PopError()
		if !ok {
			return false
		}
		pos := e.ErrorPosition()
		var out *value.Value
		if pos.IsZero() {
			out = value.Manage(ctx.Mem(), value.Null())
		} else {
			out = value.Manage(ctx.Mem(), value.NewString(pos.String()))
		}
		e.Release()
		ctx.Push(out)
		out.Release()
		return true
	})

	// throw: set the popped error as the context's pending error.
	word(rt.Mem, p, "throw", func(ctx value.Context) bool {
		e, ok := ctx.PopError()
		if !ok {
			return false
		}
		ctx.SetError(e)
		e.Release()
		return false
	})
}

// globalWord defines a native word directly in the runtime's global
// dictionary (rather than on a prototype), for words that are resolved
// through symbol-resolution steps 2/3 (spec.md §4.8) instead of stack-top
// property dispatch — error.clear/error.current, and the globals/locals
// introspection words of SPEC_FULL.md §12.
func globalWord(rt *runtime.Runtime, name string, fn value.NativeFunc) {
	sym := value.Manage(rt.Mem, value.NewInternedSymbol(name))
	quote := value.Manage(rt.Mem, value.NewNativeQuote(name, fn))
	w := value.Manage(rt.Mem, value.NewWord(sym, quote))
	rt.Global.Define(w)
	sym.Release()
	quote.Release()
	w.Release()
}

// installGlobals installs the global (not stack-top-dispatched) native
// words: error.clear, error.current, globals, locals.
func installGlobals(rt *runtime.Runtime) {
	globalWord(rt, "error.clear", func(ctx value.Context) bool {
		ctx.SetError(nil)
		return true
	})

	globalWord(rt, "error.current", func(ctx value.Context) bool {
		e := ctx.Error()
		if e == nil {
			e = value.Manage(ctx.Mem(), value.Null())
		} else {
			e = e.Retain()
		}
		ctx.Push(e)
		e.Release()
		return true
	})

	globalWord(rt, "globals", func(ctx value.Context) bool {
		obj := value.Manage(ctx.Mem(), rt.Global.Words())
		ctx.Push(obj)
		obj.Release()
		return true
	})

	globalWord(rt, "locals", func(ctx value.Context) bool {
		obj := value.Manage(ctx.Mem(), ctx.LocalWords())
		ctx.Push(obj)
		obj.Release()
		return true
	})
}

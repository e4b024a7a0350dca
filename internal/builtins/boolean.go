package builtins

import (
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/value"
)

// installBoolean installs the boolean prototype's minimum required words
// (spec.md §4.10): and, or, xor, not, and the ternary select "?".
func installBoolean(rt *runtime.Runtime) {
	p := rt.Prototype(value.KindBoolean)

	word(rt.Mem, p, "and", func(ctx value.Context) bool {
		b, ok := ctx.PopBoolean()
		if !ok {
			return false
		}
		a, ok := ctx.PopBoolean()
		if !ok {
			b.Release()
			return false
		}
		pushBool(ctx, a.Bool() && b.Bool())
		a.Release()
		b.Release()
		return true
	})

	word(rt.Mem, p, "or", func(ctx value.Context) bool {
		b, ok := ctx.PopBoolean()
		if !ok {
			return false
		}
		a, ok := ctx.PopBoolean()
		if !ok {
			b.Release()
			return false
		}
		pushBool(ctx, a.Bool() || b.Bool())
		a.Release()
		b.Release()
		return true
	})

	word(rt.Mem, p, "xor", func(ctx value.Context) bool {
		b, ok := ctx.PopBoolean()
		if !ok {
			return false
		}
		a, ok := ctx.PopBoolean()
		if !ok {
			b.Release()
			return false
		}
		pushBool(ctx, a.Bool() != b.Bool())
		a.Release()
		b.Release()
		return true
	})

	word(rt.Mem, p, "not", func(ctx value.Context) bool {
		a, ok := ctx.PopBoolean()
		if !ok {
			return false
		}
		pushBool(ctx, !a.Bool())
		a.Release()
		return true
	})

	// "a b cond ? -> a if cond else b" (spec.md §4.10).
	word(rt.Mem, p, "?", func(ctx value.Context) bool {
		cond, ok := ctx.PopBoolean()
		if !ok {
			return false
		}
		b, ok := ctx.Pop()
		if !ok {
			cond.Release()
			return false
		}
		a, ok := ctx.Pop()
		if !ok {
			b.Release()
			cond.Release()
			return false
		}
		if cond.Bool() {
			ctx.Push(a)
		} else {
			ctx.Push(b)
		}
		a.Release()
		b.Release()
		cond.Release()
		return true
	})
}

package builtins

import (
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/value"
)

// installArray installs the array prototype's basic accessor words. The
// core spec treats array methods as "standard-library concerns" (spec.md
// §4.10); original_source carries no dedicated array prototype file
// either, so this set is a from-scratch minimum: length, element access,
// concatenation, and iteration via "each".
func installArray(rt *runtime.Runtime) {
	p := rt.Prototype(value.KindArray)

	word(rt.Mem, p, "length", func(ctx value.Context) bool {
		a, ok := ctx.PopArray()
		if !ok {
			return false
		}
		n := value.Manage(ctx.Mem(), value.NewInt(int64(a.Len())))
		a.Release()
		ctx.Push(n)
		n.Release()
		return true
	})

	// at(index): the index sits on top of the array, so stack-top dispatch
	// finds the word on the number prototype; it is registered there too.
	at := func(ctx value.Context) bool {
		idx, ok := ctx.PopNumber()
		if !ok {
			return false
		}
		a, ok := ctx.PopArray()
		if !ok {
			idx.Release()
			return false
		}
		i := int(idx.AsFloat())
		idx.Release()
		elem := a.At(i)
		if elem == nil {
			a.Release()
			ctx.SetError(value.Manage(ctx.Mem(), value.NewError(value.ErrRange, "array index out of range", zeroPos)))
			return false
		}
		ctx.Push(elem)
		a.Release()
		return true
	}
	word(rt.Mem, p, "at", at)
	word(rt.Mem, rt.Prototype(value.KindNumber), "at", at)

	word(rt.Mem, p, "+", func(ctx value.Context) bool {
		b, ok := ctx.PopArray()
		if !ok {
			return false
		}
		a, ok := ctx.PopArray()
		if !ok {
			b.Release()
			return false
		}
		elems := append(a.Elements(), b.Elements()...)
		out := value.Manage(ctx.Mem(), value.NewArray(elems))
		for _, e := range elems {
			e.Release()
		}
		a.Release()
		b.Release()
		ctx.Push(out)
		out.Release()
		return true
	})

	// each(quote): push every element in turn and call quote on it. The
	// quote sits on top of the array, so the word is also registered on the
	// quote prototype, where stack-top dispatch finds it.
	each := func(ctx value.Context) bool {
		q, ok := ctx.PopQuote()
		if !ok {
			return false
		}
		a, ok := ctx.PopArray()
		if !ok {
			q.Release()
			return false
		}
		for _, e := range a.Elements() {
			ctx.Push(e)
			if !ctx.Call(q) {
				a.Release()
				q.Release()
				return false
			}
		}
		a.Release()
		q.Release()
		return true
	}
	word(rt.Mem, p, "each", each)
	word(rt.Mem, rt.Prototype(value.KindQuote), "each", each)
}

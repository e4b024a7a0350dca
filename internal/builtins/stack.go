package builtins

import (
	"github.com/plorthlang/plorth/internal/memory"
	"github.com/plorthlang/plorth/internal/value"
)

// installStackWords installs the generic stack-shuffling words
// (SPEC_FULL.md §12, grounded on original_source's libplorth stack.cpp:
// dup, drop, swap, over, rot, depth, clear) onto owner.
func installStackWords(mem *memory.Manager, owner *value.Value) {
	word(mem, owner, "dup", func(ctx value.Context) bool {
		v, ok := ctx.Pop()
		if !ok {
			return false
		}
		ctx.Push(v)
		ctx.Push(v)
		v.Release()
		return true
	})

	word(mem, owner, "drop", func(ctx value.Context) bool {
		v, ok := ctx.Pop()
		if !ok {
			return false
		}
		v.Release()
		return true
	})

	word(mem, owner, "swap", func(ctx value.Context) bool {
		b, ok := ctx.Pop()
		if !ok {
			return false
		}
		a, ok := ctx.Pop()
		if !ok {
			b.Release()
			return false
		}
		ctx.Push(b)
		ctx.Push(a)
		a.Release()
		b.Release()
		return true
	})

	word(mem, owner, "over", func(ctx value.Context) bool {
		b, ok := ctx.Pop()
		if !ok {
			return false
		}
		a, ok := ctx.Pop()
		if !ok {
			b.Release()
			return false
		}
		ctx.Push(a)
		ctx.Push(b)
		ctx.Push(a)
		a.Release()
		b.Release()
		return true
	})

	word(mem, owner, "rot", func(ctx value.Context) bool {
		c, ok := ctx.Pop()
		if !ok {
			return false
		}
		b, ok := ctx.Pop()
		if !ok {
			c.Release()
			return false
		}
		a, ok := ctx.Pop()
		if !ok {
			b.Release()
			c.Release()
			return false
		}
		ctx.Push(b)
		ctx.Push(c)
		ctx.Push(a)
		a.Release()
		b.Release()
		c.Release()
		return true
	})

	word(mem, owner, "depth", func(ctx value.Context) bool {
		n := value.Manage(ctx.Mem(), value.NewInt(int64(ctx.Depth())))
		ctx.Push(n)
		n.Release()
		return true
	})

	word(mem, owner, "clear", func(ctx value.Context) bool {
		for ctx.Depth() > 0 {
			v, ok := ctx.Pop()
			if !ok {
				return false
			}
			v.Release()
		}
		return true
	})
}

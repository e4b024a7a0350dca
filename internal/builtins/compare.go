package builtins

import (
	"strings"

	"github.com/plorthlang/plorth/internal/memory"
	"github.com/plorthlang/plorth/internal/value"
)

// installCompareWords installs the generic comparison words (SPEC_FULL.md
// §12, mirroring libplorth/src/value.cpp's generic comparison support):
// eq and ne delegate to Value.Equals; lt/gt/le/ge order numbers
// numerically and strings lexicographically, and raise a type error for
// any other pairing (the language has no total order over arrays, objects,
// quotes, etc.).
func installCompareWords(mem *memory.Manager, owner *value.Value) {
	word(mem, owner, "eq", func(ctx value.Context) bool {
		return compareWith(ctx, func(a, b *value.Value) bool { return a.Equals(b) })
	})
	word(mem, owner, "ne", func(ctx value.Context) bool {
		return compareWith(ctx, func(a, b *value.Value) bool { return !a.Equals(b) })
	})
	word(mem, owner, "lt", func(ctx value.Context) bool { return orderedCompare(ctx, func(c int) bool { return c < 0 }) })
	word(mem, owner, "gt", func(ctx value.Context) bool { return orderedCompare(ctx, func(c int) bool { return c > 0 }) })
	word(mem, owner, "le", func(ctx value.Context) bool { return orderedCompare(ctx, func(c int) bool { return c <= 0 }) })
	word(mem, owner, "ge", func(ctx value.Context) bool { return orderedCompare(ctx, func(c int) bool { return c >= 0 }) })
}

func popPair(ctx value.Context) (a, b *value.Value, ok bool) {
	b, ok = ctx.Pop()
	if !ok {
		return nil, nil, false
	}
	a, ok = ctx.Pop()
	if !ok {
		b.Release()
		return nil, nil, false
	}
	return a, b, true
}

func compareWith(ctx value.Context, cmp func(a, b *value.Value) bool) bool {
	a, b, ok := popPair(ctx)
	if !ok {
		return false
	}
	result := cmp(a, b)
	a.Release()
	b.Release()
	pushBool(ctx, result)
	return true
}

// pushBool pushes a fresh boolean value. Builtins have no direct handle on
// the owning runtime's interned true/false singletons, so they construct
// one; Context.Push retains it and the caller's stack owns the only
// reference once this returns.
func pushBool(ctx value.Context, b bool) {
	v := value.Manage(ctx.Mem(), value.NewBoolean(b))
	ctx.Push(v)
	v.Release()
}

// orderedCompare pops (a, b), three-way compares them, and pushes
// accept(cmp) where cmp is negative/zero/positive as a<b, a==b, a>b. It
// raises a type error for any pairing outside (number, number) and
// (string, string).
func orderedCompare(ctx value.Context, accept func(cmp int) bool) bool {
	a, b, ok := popPair(ctx)
	if !ok {
		return false
	}
	defer a.Release()
	defer b.Release()

	switch {
	case a.Kind() == value.KindNumber && b.Kind() == value.KindNumber:
		af, bf := a.AsFloat(), b.AsFloat()
		switch {
		case af < bf:
			pushBool(ctx, accept(-1))
		case af > bf:
			pushBool(ctx, accept(1))
		default:
			pushBool(ctx, accept(0))
		}
		return true
	case a.Kind() == value.KindString && b.Kind() == value.KindString:
		pushBool(ctx, accept(strings.Compare(a.Str(), b.Str())))
		return true
	default:
		ctx.SetError(value.Manage(ctx.Mem(), value.NewError(value.ErrType, "values are not ordered", zeroPos)))
		return false
	}
}

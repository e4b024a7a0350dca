package builtins

import (
	"math"

	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/value"
)

// installNumber installs basic arithmetic on the number prototype. The
// core spec leaves concrete number words to "standard-library concerns"
// (spec.md §4.10); original_source ships no number prototype file at all
// (its arithmetic lives inline in the interpreter's opcode dispatch), so
// this is a from-scratch minimal arithmetic set in the style of the rest
// of this package rather than a port of a specific original file.
func installNumber(rt *runtime.Runtime) {
	p := rt.Prototype(value.KindNumber)

	binop := func(name string, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) {
		word(rt.Mem, p, name, func(ctx value.Context) bool {
			b, ok := ctx.PopNumber()
			if !ok {
				return false
			}
			a, ok := ctx.PopNumber()
			if !ok {
				b.Release()
				return false
			}
			var result *value.Value
			if a.IsInt() && b.IsInt() && intOp != nil {
				result = value.Manage(ctx.Mem(), value.NewInt(intOp(a.Int(), b.Int())))
			} else {
				result = value.Manage(ctx.Mem(), value.NewFloat(floatOp(a.AsFloat(), b.AsFloat())))
			}
			a.Release()
			b.Release()
			ctx.Push(result)
			result.Release()
			return true
		})
	}

	binop("+", func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	binop("-", func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	binop("*", func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	// Division always yields a real-variant number, matching the original
	// language's "/" (plorth has a separate integer "div"/"mod" pair).
	word(rt.Mem, p, "/", func(ctx value.Context) bool {
		b, ok := ctx.PopNumber()
		if !ok {
			return false
		}
		a, ok := ctx.PopNumber()
		if !ok {
			b.Release()
			return false
		}
		if b.AsFloat() == 0 {
			a.Release()
			b.Release()
			return raiseValue(ctx, "division by zero")
		}
		result := value.Manage(ctx.Mem(), value.NewFloat(a.AsFloat()/b.AsFloat()))
		a.Release()
		b.Release()
		ctx.Push(result)
		result.Release()
		return true
	})

	word(rt.Mem, p, "mod", func(ctx value.Context) bool {
		b, ok := ctx.PopNumber()
		if !ok {
			return false
		}
		a, ok := ctx.PopNumber()
		if !ok {
			b.Release()
			return false
		}
		if b.AsFloat() == 0 {
			a.Release()
			b.Release()
			return raiseValue(ctx, "division by zero")
		}
		var result *value.Value
		if a.IsInt() && b.IsInt() {
			result = value.Manage(ctx.Mem(), value.NewInt(a.Int()%b.Int()))
		} else {
			result = value.Manage(ctx.Mem(), value.NewFloat(math.Mod(a.AsFloat(), b.AsFloat())))
		}
		a.Release()
		b.Release()
		ctx.Push(result)
		result.Release()
		return true
	})

	word(rt.Mem, p, "abs", func(ctx value.Context) bool {
		a, ok := ctx.PopNumber()
		if !ok {
			return false
		}
		var result *value.Value
		if a.IsInt() {
			n := a.Int()
			if n < 0 {
				n = -n
			}
			result = value.Manage(ctx.Mem(), value.NewInt(n))
		} else {
			result = value.Manage(ctx.Mem(), value.NewFloat(math.Abs(a.AsFloat())))
		}
		a.Release()
		ctx.Push(result)
		result.Release()
		return true
	})

	word(rt.Mem, p, "negative?", func(ctx value.Context) bool {
		a, ok := ctx.PopNumber()
		if !ok {
			return false
		}
		pushBool(ctx, a.AsFloat() < 0)
		a.Release()
		return true
	})
}

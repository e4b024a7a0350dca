// Package builtins implements C9: the native quotes installed into each
// kind's prototype object at runtime startup (spec.md §4.10 "Built-in
// prototype library (C9)"), plus the SUPPLEMENTED FEATURES of
// SPEC_FULL.md §12 (stack shuffling and comparison on every kind's
// prototype, prototype accessors on the object prototype, and the global
// globals/locals dictionary introspection words).
//
// One file per prototype, matching the teacher's internal/builtins
// one-file-per-concern layout (arithmetic.go, strings.go, arrays.go, ...).
package builtins

import (
	"github.com/plorthlang/plorth/internal/memory"
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/token"
	"github.com/plorthlang/plorth/internal/value"
)

// zeroPos is used when a native word raises an error with no source
// position of its own to attach (spec.md §4.7 native words set the error
// and return false; position is optional).
var zeroPos = token.Position{}

// raiseType sets a type error with message and returns false, the common
// shape for a native word that found the wrong kind on the stack.
func raiseType(ctx value.Context, message string) bool {
	ctx.SetError(value.Manage(ctx.Mem(), value.NewError(value.ErrType, message, zeroPos)))
	return false
}

// raiseValue sets a value error with message and returns false, for a
// native word that found the right kind but an operand value it cannot
// act on (spec.md §7's "value" error class).
func raiseValue(ctx value.Context, message string) bool {
	ctx.SetError(value.Manage(ctx.Mem(), value.NewError(value.ErrValue, message, zeroPos)))
	return false
}

// word registers a native quote named name under owner (a prototype
// object), wiring it as both a standalone quote property and — through
// Context.exec's stack-top prototype lookup — a callable method. mem is
// the owning runtime's arena allocator, threaded through so the quote
// itself is a managed value (spec.md §4.3); it may be nil at call sites
// with no runtime at hand.
func word(mem *memory.Manager, owner *value.Value, name string, fn value.NativeFunc) {
	owner.Set(name, value.Manage(mem, value.NewNativeQuote(name, fn)))
}

// Install populates rt's per-kind prototypes and the generic "any" words
// shared by every kind (spec.md §4.10; SPEC_FULL.md §12).
func Install(rt *runtime.Runtime) {
	installAny(rt)
	installBoolean(rt)
	installNumber(rt)
	installString(rt)
	installArray(rt)
	installObject(rt)
	installSymbol(rt)
	installQuote(rt)
	installWord(rt)
	installError(rt)
	installGlobals(rt)
	installImport(rt)
}

// installAny installs the generic stack-shuffling and comparison words on
// every kind's prototype (SPEC_FULL.md §12: "not
// tied to a single value kind"). Since prototypes are per-kind objects
// with no shared base in this value model, the same native quotes are
// registered onto each one individually.
func installAny(rt *runtime.Runtime) {
	for k := runtime.KindNull; k <= runtime.KindError; k++ {
		p := rt.Prototype(k)
		installStackWords(rt.Mem, p)
		installCompareWords(rt.Mem, p)
	}
}

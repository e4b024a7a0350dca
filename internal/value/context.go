package value

import "github.com/plorthlang/plorth/internal/memory"

// Context is the minimal surface a native word or the prototype/eval
// protocols need from the execution context (spec.md §3 "Context (C7)").
// It is defined here, rather than depending on the internal/context
// package, so that value has no dependency on context/runtime/dictionary —
// internal/context.Context implements this interface instead.
type Context interface {
	// Push places v on top of the data stack, taking ownership (one Retain).
	Push(v *Value)
	// Pop removes and returns the top of the data stack. On an empty stack
	// it sets a range-error pending error and returns (nil, false).
	Pop() (*Value, bool)
	// Peek returns the top of the data stack without removing it, or
	// (nil, false) if the stack is empty. It never sets a pending error.
	Peek() (*Value, bool)
	// Depth returns the number of values currently on the data stack.
	Depth() int

	// The typed pops check the top value's kind after popping it. On a
	// mismatch they restore the stack and raise a type error (spec.md §4.6
	// "A typed pop that finds the wrong kind on top restores the stack").
	PopBoolean() (*Value, bool)
	PopNumber() (*Value, bool)
	PopString() (*Value, bool)
	PopArray() (*Value, bool)
	PopObject() (*Value, bool)
	PopSymbol() (*Value, bool)
	PopQuote() (*Value, bool)
	PopWord() (*Value, bool)
	PopError() (*Value, bool)

	// Prototype returns the runtime prototype object registered for kind.
	Prototype(kind Kind) *Value

	// Call executes a quote value (native or compiled) as a nested call,
	// returning false if it left a pending error.
	Call(q *Value) bool

	// SetError installs err (a KindError value) as the pending error.
	SetError(err *Value)

	// Define installs word into the context's local dictionary, overwriting
	// any previous entry under the same identifier (spec.md §4.9).
	Define(word *Value)

	// Error returns the pending error, or nil if the error slot is empty
	// (the error.current primitive, spec.md §4.7).
	Error() *Value

	// LocalWords returns the context's local dictionary packaged as an
	// object value (the locals introspection word, SPEC_FULL.md §12).
	LocalWords() *Value

	// Mem returns the runtime's arena allocator, so native words can route
	// the values they construct through Manage (spec.md §4.3 "Managed
	// objects are constructed through the manager").
	Mem() *memory.Manager
}

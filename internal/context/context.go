// Package context implements C7: per-execution state (data stack, local
// dictionary, pending error) and the evaluation algorithm of spec.md §4.6
// "Execution (C7)", §4.7 "Error handling", and §4.8 "Dictionary & symbol
// resolution (C8)".
//
// The stack helpers and the call/exec/eval loop follow the teacher's VM
// stack-machine shape (internal/bytecode's push/pop/peek-with-error-return
// pattern), adapted from an opcode interpreter to a tree-walking one.
package context

import (
	"strconv"

	"github.com/plorthlang/plorth/internal/dictionary"
	"github.com/plorthlang/plorth/internal/memory"
	"github.com/plorthlang/plorth/internal/runeclass"
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/token"
	"github.com/plorthlang/plorth/internal/value"
)

// Context is one execution context (spec.md §3 "Context (C7)").
type Context struct {
	rt    *runtime.Runtime
	stack []*value.Value
	local *dictionary.Dictionary
	err   *value.Value
}

// New creates a context attached to rt, with an empty stack and an empty
// local dictionary.
func New(rt *runtime.Runtime) *Context {
	return &Context{rt: rt, local: dictionary.New()}
}

// Runtime returns the context's shared runtime (runtime.ImportContext).
func (c *Context) Runtime() *runtime.Runtime { return c.rt }

// Local returns the context's local dictionary.
func (c *Context) Local() *dictionary.Dictionary { return c.local }

// Define installs word into the local dictionary (value.Context.Define).
func (c *Context) Define(word *value.Value) { c.local.Define(word) }

// LocalWords packages the local dictionary as an object value
// (value.Context.LocalWords, SPEC_FULL.md §12 "locals" introspection word).
func (c *Context) LocalWords() *value.Value { return c.local.Words() }

// Prototype implements value.Context by delegating to the runtime's
// prototype registry.
func (c *Context) Prototype(kind value.Kind) *value.Value { return c.rt.Prototype(kind) }

// Mem implements value.Context by exposing the runtime's arena allocator.
func (c *Context) Mem() *memory.Manager { return c.rt.Mem }

// -- Stack operations (spec.md §4.6 "Stack operations") --------------------

// Push appends v to the top of the data stack, taking a reference.
func (c *Context) Push(v *value.Value) {
	c.stack = append(c.stack, v.Retain())
}

// Pop removes and returns the top of the data stack. Popping an empty
// stack raises a range error ("stack underflow") and returns (nil, false).
func (c *Context) Pop() (*value.Value, bool) {
	if len(c.stack) == 0 {
		c.raiseRange("stack underflow")
		return nil, false
	}
	n := len(c.stack) - 1
	v := c.stack[n]
	c.stack = c.stack[:n]
	return v, true
}

// Peek returns the top of the data stack without removing it, or (nil,
// false) if the stack is empty. Peek does not set a pending error: callers
// that require a value should use Pop or a typed pop.
func (c *Context) Peek() (*value.Value, bool) {
	if len(c.stack) == 0 {
		return nil, false
	}
	return c.stack[len(c.stack)-1], true
}

// Depth returns the number of values on the data stack.
func (c *Context) Depth() int { return len(c.stack) }

// Stack returns a shallow, bottom-to-top snapshot of the data stack, for
// hosts that pretty-print it (spec.md §6 "pretty-prints the stack").
func (c *Context) Stack() []*value.Value {
	out := make([]*value.Value, len(c.stack))
	copy(out, c.stack)
	return out
}

// popTyped pops the top value and checks its kind. On mismatch it restores
// the stack (pushes the value back) and raises a type error, per spec.md
// §4.6 "A typed pop that finds the wrong kind on top restores the stack".
func (c *Context) popTyped(kind value.Kind, kindName string) (*value.Value, bool) {
	v, ok := c.Pop()
	if !ok {
		return nil, false
	}
	if v.Kind() != kind {
		c.Push(v)
		c.raiseType("expected " + kindName)
		v.Release()
		return nil, false
	}
	return v, true
}

// PopBoolean pops a boolean value.
func (c *Context) PopBoolean() (*value.Value, bool) { return c.popTyped(value.KindBoolean, "boolean") }

// PopNumber pops a number value.
func (c *Context) PopNumber() (*value.Value, bool) { return c.popTyped(value.KindNumber, "number") }

// PopString pops a string value.
func (c *Context) PopString() (*value.Value, bool) { return c.popTyped(value.KindString, "string") }

// PopArray pops an array value.
func (c *Context) PopArray() (*value.Value, bool) { return c.popTyped(value.KindArray, "array") }

// PopObject pops an object value.
func (c *Context) PopObject() (*value.Value, bool) { return c.popTyped(value.KindObject, "object") }

// PopSymbol pops a symbol value.
func (c *Context) PopSymbol() (*value.Value, bool) { return c.popTyped(value.KindSymbol, "symbol") }

// PopQuote pops a quote value.
func (c *Context) PopQuote() (*value.Value, bool) { return c.popTyped(value.KindQuote, "quote") }

// PopWord pops a word value.
func (c *Context) PopWord() (*value.Value, bool) { return c.popTyped(value.KindWord, "word") }

// PopError pops an error value.
func (c *Context) PopError() (*value.Value, bool) { return c.popTyped(value.KindError, "error") }

// -- Error slot (spec.md §4.7) ----------------------------------------------

// SetError installs err as the pending error, replacing any previous one.
func (c *Context) SetError(err *value.Value) {
	if c.err != nil {
		c.err.Release()
	}
	c.err = err.Retain()
}

// Error returns the pending error, or nil if the slot is empty.
func (c *Context) Error() *value.Value { return c.err }

// HasError reports whether the error slot is non-empty.
func (c *Context) HasError() bool { return c.err != nil }

// ClearError empties the error slot (the error.clear primitive, spec.md
// §4.7).
func (c *Context) ClearError() {
	if c.err != nil {
		c.err.Release()
		c.err = nil
	}
}

func (c *Context) raise(code value.ErrorCode, message string) {
	c.SetError(value.Manage(c.rt.Mem, value.NewError(code, message, token.Position{})))
}

func (c *Context) raiseRange(message string) { c.raise(value.ErrRange, message) }
func (c *Context) raiseType(message string)   { c.raise(value.ErrType, message) }
func (c *Context) raiseReference(message string) { c.raise(value.ErrReference, message) }

// -- Execution (spec.md §4.6, §4.8, §4.9) -----------------------------------

// Call runs a quote value, native or compiled (spec.md §4.6
// "context.call(quote)"). For a compiled quote it executes each child in
// sequence, checking the error slot before every step, and stops at the
// first failure. It implements value.Context.Call.
func (c *Context) Call(quote *value.Value) bool {
	if quote.IsNativeQuote() {
		return quote.NativeFn()(c)
	}
	for _, child := range quote.Children() {
		if c.HasError() {
			return false
		}
		if !c.exec(child) {
			return false
		}
	}
	return true
}

// exec implements spec.md §4.6 "exec(context, v)".
func (c *Context) exec(v *value.Value) bool {
	switch v.Kind() {
	case value.KindSymbol:
		return c.execSymbol(v)
	case value.KindWord:
		c.Define(v)
		return true
	default:
		result, ok := c.eval(v)
		if !ok {
			return false
		}
		c.Push(result)
		result.Release()
		return true
	}
}

// eval implements spec.md §4.6 "eval(context, v)": arrays and objects
// evaluate their elements/properties in order and assemble a fresh
// container; symbols resolve to their referent without executing it
// (spec.md §4.2) — a bare numeric literal becomes a number and a
// dictionary word becomes its bound quote, neither is called; every
// other kind evaluates to itself. Words are a syntax error in value
// position (spec.md §4.9).
func (c *Context) eval(v *value.Value) (*value.Value, bool) {
	switch v.Kind() {
	case value.KindSymbol:
		return c.resolveSymbolReferent(v)
	case value.KindArray:
		elems := make([]*value.Value, 0, v.Len())
		for _, e := range v.Elements() {
			r, ok := c.eval(e)
			if !ok {
				for _, done := range elems {
					done.Release()
				}
				return nil, false
			}
			elems = append(elems, r)
		}
		out := value.Manage(c.rt.Mem, value.NewArray(elems))
		for _, e := range elems {
			e.Release()
		}
		return out, true
	case value.KindObject:
		out := value.Manage(c.rt.Mem, value.NewObject())
		for _, k := range v.Keys() {
			r, ok := c.eval(v.Get(k))
			if !ok {
				out.Release()
				return nil, false
			}
			out.Set(k, r)
			r.Release()
		}
		return out, true
	case value.KindWord:
		c.raise(value.ErrSyntax, "word definition used as a value")
		return nil, false
	default:
		return v.Retain(), true
	}
}

// execSymbol implements spec.md §4.8 symbol resolution.
func (c *Context) execSymbol(sym *value.Value) bool {
	name := sym.Identifier()

	// 1. Stack-top prototype property.
	if top, ok := c.Peek(); ok {
		prop, found := value.LookupProperty(c, top, name)
		if c.HasError() {
			return false
		}
		if found {
			switch prop.Kind() {
			case value.KindQuote:
				return c.Call(prop)
			case value.KindWord:
				return c.Call(prop.WordQuote())
			}
		}
	}

	// 2. Local dictionary.
	if w, ok := c.local.Lookup(name); ok {
		return c.Call(w.WordQuote())
	}

	// 3. Global dictionary.
	if w, ok := c.rt.Global.Lookup(name); ok {
		return c.Call(w.WordQuote())
	}

	// 4. Bare numeric literal.
	if n, ok := parseNumber(c.rt.Mem, name); ok {
		c.Push(n)
		n.Release()
		return true
	}

	// 5. Unresolved identifier.
	c.raiseReference("unknown word: " + name)
	return false
}

// resolveSymbolReferent implements the eval() side of spec.md §4.8 symbol
// resolution: it walks the same steps execSymbol uses, but returns the
// resolved referent instead of invoking it, per spec.md §4.2 "symbols
// resolve to their referent without executing it". A quote or word found
// via a stack-top property or a dictionary is returned as-is, uncalled.
func (c *Context) resolveSymbolReferent(sym *value.Value) (*value.Value, bool) {
	name := sym.Identifier()

	// 1. Stack-top prototype property.
	if top, ok := c.Peek(); ok {
		prop, found := value.LookupProperty(c, top, name)
		if c.HasError() {
			return nil, false
		}
		if found {
			return prop.Retain(), true
		}
	}

	// 2. Local dictionary.
	if w, ok := c.local.Lookup(name); ok {
		return w.WordQuote().Retain(), true
	}

	// 3. Global dictionary.
	if w, ok := c.rt.Global.Lookup(name); ok {
		return w.WordQuote().Retain(), true
	}

	// 4. Bare numeric literal.
	if n, ok := parseNumber(c.rt.Mem, name); ok {
		return n, true
	}

	// 5. Unresolved identifier.
	c.raiseReference("unknown word: " + name)
	return nil, false
}

// parseNumber implements spec.md §4.8 step 4: optional sign, decimal
// digits, optional single '.' fractional part. It deliberately rejects
// anything strconv.ParseFloat would otherwise accept (exponents, "Inf",
// "NaN", hex floats) since those are not valid bare numeric literals here.
func parseNumber(mem *memory.Manager, s string) (*value.Value, bool) {
	if s == "" {
		return nil, false
	}
	body := s
	if body[0] == '+' || body[0] == '-' {
		body = body[1:]
	}
	if body == "" {
		return nil, false
	}
	dotSeen := false
	for _, r := range body {
		if r == '.' {
			if dotSeen {
				return nil, false
			}
			dotSeen = true
			continue
		}
		if !runeclass.IsDigit(r) {
			return nil, false
		}
	}
	if dotSeen {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		return value.Manage(mem, value.NewFloat(f)), true
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, false
	}
	return value.Manage(mem, value.NewInt(i)), true
}

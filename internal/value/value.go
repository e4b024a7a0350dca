// Package value implements C2: the tagged runtime value hierarchy and its
// prototype-chain lookup (spec.md §3, §4.2). The exec/eval protocols that
// drive evaluation live in internal/context.
//
// Values are immutable once constructed; containers hold strong references
// to their children via Retain/Release (spec.md §3 "Ownership & lifetime").
// Retain/Release mirror the reference-counted discipline of the original
// plorth memory model (see memory.Cell), applied at construction and at the
// stack/dictionary/container boundaries rather than on every transient
// intermediate value — see DESIGN.md for the scope of this tradeoff.
package value

import (
	"sync/atomic"

	"github.com/plorthlang/plorth/internal/memory"
)

// Kind is the tag of the sum type described in spec.md §3.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
	KindSymbol
	KindQuote
	KindWord
	KindError
)

// String names the kind, used in type-error messages and debugging.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindSymbol:
		return "symbol"
	case KindQuote:
		return "quote"
	case KindWord:
		return "word"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// NumKind distinguishes the two number variants (spec.md §3: "Numbers are
// either 64-bit signed integer or 64-bit IEEE-754 double; which variant is
// tracked, and conversion is explicit").
type NumKind uint8

const (
	NumInt NumKind = iota
	NumFloat
)

// Value is the tagged union over every runtime value kind. Fields outside
// the active kind's variant are zero and must not be read.
type Value struct {
	kind Kind
	refs int32
	cell *memory.Cell

	b bool

	numKind NumKind
	i       int64
	f       float64

	s string

	arr []*Value

	obj *object

	sym *symbolData

	quote *quoteData

	word *wordData

	err *errorData
}

// object backs KindObject: an order-preserving string-keyed map.
type object struct {
	keys    []string
	entries map[string]*Value
}

func newObject() *object {
	return &object{entries: make(map[string]*Value)}
}

// Retain increments the value's reference count. Called whenever a new
// owner (a container, the stack, a dictionary entry) starts holding v.
func (v *Value) Retain() *Value {
	if v == nil {
		return v
	}
	atomic.AddInt32(&v.refs, 1)
	return v
}

// Release decrements the value's reference count. When it reaches zero, v's
// children are released in turn and its memory.Cell (if any) is returned to
// its pool — the "reclamation is prompt" discipline of spec.md §4.3.
func (v *Value) Release() {
	if v == nil {
		return
	}
	if atomic.AddInt32(&v.refs, -1) > 0 {
		return
	}
	switch v.kind {
	case KindArray:
		for _, e := range v.arr {
			e.Release()
		}
	case KindObject:
		for _, k := range v.obj.keys {
			v.obj.entries[k].Release()
		}
	case KindQuote:
		if v.quote != nil && !v.quote.native {
			for _, c := range v.quote.compiled {
				c.Release()
			}
		}
	case KindWord:
		if v.word != nil {
			v.word.symbol.Release()
			v.word.quote.Release()
		}
	}
	if v.cell != nil {
		v.cell.Release()
		v.cell = nil
	}
}

// RefCount reports the current reference count, exposed for tests.
func (v *Value) RefCount() int32 {
	if v == nil {
		return 0
	}
	return atomic.LoadInt32(&v.refs)
}

// AttachCell associates v with an arena accounting cell. Used by the
// runtime's value factories immediately after construction; not part of the
// public construction API because plain tests may construct Values without
// a memory.Manager at hand.
func (v *Value) AttachCell(c *memory.Cell) { v.cell = c }

func newValue(kind Kind) *Value {
	return &Value{kind: kind, refs: 1}
}

// cellSize is the nominal accounting size every managed value reserves
// from its runtime's arena. The manager tracks allocation pressure, slot
// reuse, and prompt reclamation (spec.md §4.3); it does not model the
// Value struct's exact Go byte layout, so every kind reserves the same
// one aligned unit.
const cellSize = memory.Alignment

// Manage routes v's construction through mem, attaching an arena cell so
// C3 actually backs the allocation instead of standing unused alongside
// it (spec.md §4.3 "Managed objects are constructed through the
// manager"). Call sites with no manager at hand (bare parsing tools,
// tests built without a runtime) may pass a nil mem, which leaves v
// unmanaged. Manage returns v for chaining at the construction site.
func Manage(mem *memory.Manager, v *Value) *Value {
	if mem != nil {
		v.AttachCell(mem.Alloc(cellSize))
	}
	return v
}

// Kind returns the value's variant tag.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// --- Construction -----------------------------------------------------

// Null constructs a null value; each call returns a fresh value.
func Null() *Value { return newValue(KindNull) }

// NewBoolean constructs a boolean value. Runtimes normally use their
// interned true/false singletons instead of calling this directly.
func NewBoolean(b bool) *Value {
	v := newValue(KindBoolean)
	v.b = b
	return v
}

// NewInt constructs an integer-variant number value.
func NewInt(i int64) *Value {
	v := newValue(KindNumber)
	v.numKind = NumInt
	v.i = i
	return v
}

// NewFloat constructs a real-variant number value.
func NewFloat(f float64) *Value {
	v := newValue(KindNumber)
	v.numKind = NumFloat
	v.f = f
	return v
}

// NewString constructs a string value.
func NewString(s string) *Value {
	v := newValue(KindString)
	v.s = s
	return v
}

// NewArray constructs an array value holding elems. It takes its own
// reference to every element (one Retain each); the caller keeps, and
// remains responsible for releasing, its own references.
func NewArray(elems []*Value) *Value {
	v := newValue(KindArray)
	v.arr = make([]*Value, len(elems))
	for i, e := range elems {
		v.arr[i] = e.Retain()
	}
	return v
}

// NewObject constructs an empty object value.
func NewObject() *Value {
	v := newValue(KindObject)
	v.obj = newObject()
	return v
}

// --- Boolean accessors --------------------------------------------------

// Bool returns the boolean payload; only valid when Kind() == KindBoolean.
func (v *Value) Bool() bool { return v.b }

// --- Number accessors ----------------------------------------------------

// NumKind returns which number variant v holds.
func (v *Value) NumKind() NumKind { return v.numKind }

// IsInt reports whether v is an integer-variant number.
func (v *Value) IsInt() bool { return v.kind == KindNumber && v.numKind == NumInt }

// IsFloat reports whether v is a real-variant number.
func (v *Value) IsFloat() bool { return v.kind == KindNumber && v.numKind == NumFloat }

// Int returns the integer payload; only valid when IsInt().
func (v *Value) Int() int64 { return v.i }

// Float returns the float payload; only valid when IsFloat().
func (v *Value) Float() float64 { return v.f }

// AsFloat returns the number as a float64 regardless of variant (explicit
// widening conversion, spec.md §3).
func (v *Value) AsFloat() float64 {
	if v.numKind == NumFloat {
		return v.f
	}
	return float64(v.i)
}

// --- String accessors ----------------------------------------------------

// Str returns the string payload; only valid when Kind() == KindString.
func (v *Value) Str() string { return v.s }

// --- Array accessors -----------------------------------------------------

// Len returns the number of elements; only valid when Kind() == KindArray.
func (v *Value) Len() int { return len(v.arr) }

// At returns the element at index, or nil if out of range.
func (v *Value) At(index int) *Value {
	if index < 0 || index >= len(v.arr) {
		return nil
	}
	return v.arr[index]
}

// Elements returns a shallow copy of the array's element slice.
func (v *Value) Elements() []*Value {
	out := make([]*Value, len(v.arr))
	copy(out, v.arr)
	return out
}

// --- Object accessors ----------------------------------------------------

// Get returns the own property named key, or nil if absent. This does not
// walk the prototype chain; use LookupProperty for that.
func (v *Value) Get(key string) *Value {
	if v.obj == nil {
		return nil
	}
	return v.obj.entries[key]
}

// Set assigns key to child, preserving insertion order for new keys and
// replacing the value in place for existing ones (spec.md §3). Set retains
// child and releases any value it displaces.
func (v *Value) Set(key string, child *Value) {
	if _, exists := v.obj.entries[key]; !exists {
		v.obj.keys = append(v.obj.keys, key)
	} else {
		v.obj.entries[key].Release()
	}
	v.obj.entries[key] = child.Retain()
}

// Keys returns the object's own keys in insertion order.
func (v *Value) Keys() []string {
	out := make([]string, len(v.obj.keys))
	copy(out, v.obj.keys)
	return out
}

// Has reports whether key is an own property.
func (v *Value) Has(key string) bool {
	if v.obj == nil {
		return false
	}
	_, ok := v.obj.entries[key]
	return ok
}

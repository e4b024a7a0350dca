package value

// NativeFunc is the signature of a built-in word's implementation: it
// receives the executing Context and returns true on success, false if it
// set a pending error (spec.md §3 "Quotes have two variants: Native ...").
type NativeFunc func(ctx Context) bool

type quoteData struct {
	native   bool
	fn       NativeFunc
	compiled []*Value
	name     string // diagnostic label for native quotes, e.g. "boolean.and"
}

// NewNativeQuote wraps a Go function as a native quote value. name is used
// only for diagnostics (equality of two native quotes compares the
// function pointer, not the name).
func NewNativeQuote(name string, fn NativeFunc) *Value {
	v := newValue(KindQuote)
	v.quote = &quoteData{native: true, fn: fn, name: name}
	return v
}

// NewCompiledQuote wraps a sequence of already-compiled child values as a
// compiled quote. The quote takes its own reference to each child (one
// Retain each); the caller keeps, and remains responsible for releasing,
// its own references.
func NewCompiledQuote(children []*Value) *Value {
	v := newValue(KindQuote)
	cp := make([]*Value, len(children))
	for i, c := range children {
		cp[i] = c.Retain()
	}
	v.quote = &quoteData{native: false, compiled: cp}
	return v
}

// IsNativeQuote reports whether v is a native (Go function) quote.
func (v *Value) IsNativeQuote() bool { return v.quote != nil && v.quote.native }

// NativeFn returns the wrapped function of a native quote.
func (v *Value) NativeFn() NativeFunc { return v.quote.fn }

// Children returns a compiled quote's child values.
func (v *Value) Children() []*Value { return v.quote.compiled }

// QuoteName returns a native quote's diagnostic label.
func (v *Value) QuoteName() string { return v.quote.name }

package context

import (
	"testing"

	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/token"
	"github.com/plorthlang/plorth/internal/value"
)

func TestPushPopPeekDepth(t *testing.T) {
	ctx := New(runtime.New())
	if ctx.Depth() != 0 {
		t.Fatalf("Depth() on fresh context = %d, want 0", ctx.Depth())
	}

	v := value.NewInt(1)
	ctx.Push(v)
	v.Release() // local reference, Push took its own

	if ctx.Depth() != 1 {
		t.Fatalf("Depth() after one Push = %d, want 1", ctx.Depth())
	}
	top, ok := ctx.Peek()
	if !ok || top.Int() != 1 {
		t.Fatalf("Peek() = (%v, %v), want (1, true)", top, ok)
	}
	if ctx.Depth() != 1 {
		t.Fatalf("Peek() should not remove the value; Depth() = %d", ctx.Depth())
	}

	popped, ok := ctx.Pop()
	if !ok || popped.Int() != 1 {
		t.Fatalf("Pop() = (%v, %v), want (1, true)", popped, ok)
	}
	popped.Release()
	if ctx.Depth() != 0 {
		t.Fatalf("Depth() after Pop = %d, want 0", ctx.Depth())
	}
}

func TestPopEmptyStackRaisesRangeError(t *testing.T) {
	ctx := New(runtime.New())
	_, ok := ctx.Pop()
	if ok {
		t.Fatalf("Pop() on empty stack = true, want false")
	}
	if !ctx.HasError() {
		t.Fatalf("HasError() = false after popping an empty stack")
	}
	if ctx.Error().ErrorCode() != value.ErrRange {
		t.Fatalf("Error().ErrorCode() = %v, want ErrRange", ctx.Error().ErrorCode())
	}
}

func TestPeekEmptyStackDoesNotRaise(t *testing.T) {
	ctx := New(runtime.New())
	if _, ok := ctx.Peek(); ok {
		t.Fatalf("Peek() on empty stack = true, want false")
	}
	if ctx.HasError() {
		t.Fatalf("HasError() = true after Peek on empty stack; Peek must not raise")
	}
}

func TestTypedPopMismatchRestoresStackAndRaisesType(t *testing.T) {
	ctx := New(runtime.New())
	s := value.NewString("not a number")
	ctx.Push(s)
	s.Release()

	_, ok := ctx.PopNumber()
	if ok {
		t.Fatalf("PopNumber() on a string = true, want false")
	}
	if ctx.Error().ErrorCode() != value.ErrType {
		t.Fatalf("Error().ErrorCode() = %v, want ErrType", ctx.Error().ErrorCode())
	}
	if ctx.Depth() != 1 {
		t.Fatalf("Depth() after failed typed pop = %d, want 1 (stack restored)", ctx.Depth())
	}
	restored, ok := ctx.Peek()
	if !ok || restored.Str() != "not a number" {
		t.Fatalf("restored top = %v, want the original string", restored)
	}
	if got := restored.RefCount(); got != 1 {
		t.Fatalf("restored value refcount = %d, want 1 (no leaked/extra reference)", got)
	}
}

func TestTypedPopMatchingKindSucceeds(t *testing.T) {
	ctx := New(runtime.New())
	n := value.NewInt(7)
	ctx.Push(n)
	n.Release()

	got, ok := ctx.PopNumber()
	if !ok || got.Int() != 7 {
		t.Fatalf("PopNumber() = (%v, %v), want (7, true)", got, ok)
	}
	got.Release()
}

func TestErrorSlotSetClearHasError(t *testing.T) {
	ctx := New(runtime.New())
	if ctx.HasError() {
		t.Fatalf("HasError() = true on a fresh context")
	}
	err := value.NewError(value.ErrType, "boom", token.Position{})
	ctx.SetError(err)
	err.Release()

	if !ctx.HasError() {
		t.Fatalf("HasError() = false after SetError")
	}
	if ctx.Error().ErrorMessage() != "boom" {
		t.Fatalf("Error().ErrorMessage() = %q, want boom", ctx.Error().ErrorMessage())
	}
	ctx.ClearError()
	if ctx.HasError() {
		t.Fatalf("HasError() = true after ClearError")
	}
}

func TestCallCompiledQuotePushesResults(t *testing.T) {
	ctx := New(runtime.New())
	quote := value.NewCompiledQuote([]*value.Value{value.NewInt(1), value.NewInt(2)})
	defer quote.Release()

	if ok := ctx.Call(quote); !ok {
		t.Fatalf("Call() = false, want true")
	}
	if ctx.Depth() != 2 {
		t.Fatalf("Depth() after calling a two-literal quote = %d, want 2", ctx.Depth())
	}
}

func TestCallNativeQuote(t *testing.T) {
	ctx := New(runtime.New())
	called := false
	native := value.NewNativeQuote("test", func(c value.Context) bool {
		called = true
		return true
	})
	defer native.Release()

	if ok := ctx.Call(native); !ok || !called {
		t.Fatalf("Call(native) = (%v), called=%v, want (true, true)", ok, called)
	}
}

func TestCallStopsAtFirstErrorAmongSiblings(t *testing.T) {
	ctx := New(runtime.New())
	boom := value.NewNativeQuote("boom", func(c value.Context) bool {
		c.SetError(value.NewError(value.ErrValue, "boom", token.Position{}))
		return false
	})
	never := value.NewNativeQuote("never", func(c value.Context) bool {
		t.Fatalf("second quote ran despite the first leaving a pending error")
		return true
	})
	quote := value.NewCompiledQuote([]*value.Value{boom, never})
	boom.Release()
	never.Release()
	defer quote.Release()

	if ok := ctx.Call(quote); ok {
		t.Fatalf("Call() = true, want false")
	}
	if !ctx.HasError() {
		t.Fatalf("HasError() = false after a failing native quote")
	}
}

func TestExecSymbolResolvesGlobalDictionary(t *testing.T) {
	rt := runtime.New()
	quote := value.NewCompiledQuote([]*value.Value{value.NewInt(3)})
	sym := value.NewSymbol("three", token.Position{})
	word := value.NewWord(sym, quote)
	rt.Global.Define(word)
	sym.Release()
	quote.Release()
	word.Release()

	ctx := New(rt)
	sym2 := value.NewSymbol("three", token.Position{})
	defer sym2.Release()
	if ok := ctx.Call(value.NewCompiledQuote([]*value.Value{sym2})); !ok {
		t.Fatalf("calling global word 'three' failed")
	}
	top, _ := ctx.Pop()
	if top.Int() != 3 {
		t.Fatalf("top = %v, want 3", top)
	}
	top.Release()
}

func TestExecSymbolBareNumericLiteral(t *testing.T) {
	ctx := New(runtime.New())
	sym := value.NewSymbol("42", token.Position{})
	defer sym.Release()
	quote := value.NewCompiledQuote([]*value.Value{sym})
	defer quote.Release()

	if ok := ctx.Call(quote); !ok {
		t.Fatalf("executing bare numeric literal failed")
	}
	top, _ := ctx.Pop()
	if !top.IsInt() || top.Int() != 42 {
		t.Fatalf("top = %v, want integer 42", top)
	}
	top.Release()
}

func TestExecSymbolFloatLiteral(t *testing.T) {
	ctx := New(runtime.New())
	sym := value.NewSymbol("3.5", token.Position{})
	defer sym.Release()
	quote := value.NewCompiledQuote([]*value.Value{sym})
	defer quote.Release()

	ctx.Call(quote)
	top, _ := ctx.Pop()
	if !top.IsFloat() || top.AsFloat() != 3.5 {
		t.Fatalf("top = %v, want float 3.5", top)
	}
	top.Release()
}

func TestExecSymbolUnresolvedRaisesReferenceError(t *testing.T) {
	ctx := New(runtime.New())
	sym := value.NewSymbol("no-such-word", token.Position{})
	defer sym.Release()
	quote := value.NewCompiledQuote([]*value.Value{sym})
	defer quote.Release()

	if ok := ctx.Call(quote); ok {
		t.Fatalf("Call() with an unresolved symbol = true, want false")
	}
	if ctx.Error().ErrorCode() != value.ErrReference {
		t.Fatalf("Error().ErrorCode() = %v, want ErrReference", ctx.Error().ErrorCode())
	}
}

func TestExecSymbolPrefersStackTopPrototypeProperty(t *testing.T) {
	rt := runtime.New()
	ctx := New(rt)

	obj := value.NewObject()
	greet := value.NewNativeQuote("greet", func(c value.Context) bool {
		c.Pop() // drop the receiver
		c.Push(value.NewString("from property"))
		return true
	})
	obj.Set("greet", greet)
	greet.Release()
	ctx.Push(obj)
	obj.Release()

	// Also define a same-named global word, which must lose to the
	// stack-top property per the five-step resolution order.
	globalSym := value.NewSymbol("greet", token.Position{})
	globalBody := value.NewCompiledQuote([]*value.Value{value.NewString("from global")})
	rt.Global.Define(value.NewWord(globalSym, globalBody))
	globalSym.Release()
	globalBody.Release()

	sym := value.NewSymbol("greet", token.Position{})
	quote := value.NewCompiledQuote([]*value.Value{sym})
	sym.Release()
	defer quote.Release()

	if ok := ctx.Call(quote); !ok {
		t.Fatalf("executing 'greet' failed: %v", ctx.Error())
	}
	top, _ := ctx.Pop()
	if top.Str() != "from property" {
		t.Fatalf("top = %q, want %q (stack-top property should win over the global dictionary)", top.Str(), "from property")
	}
	top.Release()
}

// Package compiler implements C5: lowering the parser's token tree
// (internal/ast) into the executable value hierarchy (internal/value),
// per spec.md §4.5 "Compiler (C5)".
//
// The traversal mirrors the teacher's bytecode compiler's tree-walk shape
// (internal/bytecode's statement/expression dispatch), but the target is
// fundamentally different: there is no opcode stream here, only a tree of
// already-tagged Values that the interpreter walks directly at call time.
package compiler

import (
	"github.com/plorthlang/plorth/internal/ast"
	"github.com/plorthlang/plorth/internal/memory"
	"github.com/plorthlang/plorth/internal/token"
	"github.com/plorthlang/plorth/internal/value"
)

// Interner supplies the optional symbol-interning policy (spec.md §9);
// *runtime.Runtime implements this via its Intern method, returning a
// position-carrying fresh symbol when interning is disabled and a shared,
// position-less interned symbol when it is enabled. A nil Interner compiles
// every symbol freshly, uninterned, with its occurrence position intact.
type Interner interface {
	Intern(identifier string, pos token.Position) *value.Value
}

// Compiler lowers ast.Node trees into value.Value trees.
type Compiler struct {
	intern Interner
	mem    *memory.Manager
}

// New returns a Compiler. intern may be nil to disable interning. mem may
// be nil (no runtime yet constructed, e.g. a parse-only tool), which
// leaves every compiled value unmanaged; otherwise every value the
// compiler constructs is routed through mem (spec.md §4.3).
func New(intern Interner, mem *memory.Manager) *Compiler {
	return &Compiler{intern: intern, mem: mem}
}

// CompileScript lowers a top-level parse (itself an *ast.Quote standing in
// for the implicit top-level quote, spec.md §4.4) into a compiled quote
// value. Calling that quote executes the program.
func (c *Compiler) CompileScript(script *ast.Quote) *value.Value {
	return c.compileQuote(script)
}

// Compile lowers a single token tree node into a value.
func (c *Compiler) Compile(n ast.Node) *value.Value {
	switch node := n.(type) {
	case *ast.Array:
		return c.compileArray(node)
	case *ast.Object:
		return c.compileObject(node)
	case *ast.Quote:
		return c.compileQuote(node)
	case *ast.String:
		return value.Manage(c.mem, value.NewString(node.Value))
	case *ast.Symbol:
		return c.compileSymbol(node)
	case *ast.Word:
		return c.compileWord(node)
	default:
		panic("compiler: unhandled ast.Node")
	}
}

// compileArray, compileObject, and compileQuote each build their children
// with a locally-owned reference, hand that reference to the container
// constructor (which Retains its own), and then Release the local one —
// the same "push, then release the container" ownership-transfer pattern
// internal/context's eval uses for KindArray/KindObject. Skipping the
// Release would leave every compiled child one reference too many, so it
// would never reach zero even after the whole program tears down.
func (c *Compiler) compileArray(n *ast.Array) *value.Value {
	elems := make([]*value.Value, len(n.Elements))
	for i, e := range n.Elements {
		elems[i] = c.Compile(e)
	}
	out := value.Manage(c.mem, value.NewArray(elems))
	for _, e := range elems {
		e.Release()
	}
	return out
}

func (c *Compiler) compileObject(n *ast.Object) *value.Value {
	obj := value.Manage(c.mem, value.NewObject())
	for _, prop := range n.Properties {
		v := c.Compile(prop.Value)
		obj.Set(prop.Key, v)
		v.Release()
	}
	return obj
}

func (c *Compiler) compileQuote(n *ast.Quote) *value.Value {
	children := make([]*value.Value, len(n.Children))
	for i, ch := range n.Children {
		children[i] = c.Compile(ch)
	}
	out := value.Manage(c.mem, value.NewCompiledQuote(children))
	for _, ch := range children {
		ch.Release()
	}
	return out
}

func (c *Compiler) compileSymbol(n *ast.Symbol) *value.Value {
	if c.intern != nil {
		return c.intern.Intern(n.Identifier, n.Position)
	}
	return value.Manage(c.mem, value.NewSymbol(n.Identifier, n.Position))
}

// compileWord releases its own sym/body references after NewWord retains
// them, same as above. This is safe even when c.intern returns a shared
// interned symbol: the Retain (inside NewWord) always happens before the
// matching Release here, so the shared symbol's count never dips below
// what the interning table already holds.
func (c *Compiler) compileWord(n *ast.Word) *value.Value {
	sym := c.compileSymbol(n.Symbol)
	body := c.compileQuote(n.Quote)
	w := value.Manage(c.mem, value.NewWord(sym, body))
	sym.Release()
	body.Release()
	return w
}

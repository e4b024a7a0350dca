package value

import "github.com/plorthlang/plorth/internal/token"

// Prototype resolves v's prototype object per spec.md §3: for object values,
// the value of the reserved `__proto__` property if it is itself an object,
// otherwise the runtime's root object prototype; for every other kind, the
// per-kind singleton the runtime registers.
func (v *Value) Prototype(ctx Context) *Value {
	if v.kind == KindObject {
		if p := v.Get("__proto__"); p != nil && p.Kind() == KindObject {
			return p
		}
	}
	return ctx.Prototype(v.kind)
}

// maxPrototypeDepth bounds prototype-chain property lookup so a cyclic
// __proto__ graph (spec.md §9) cannot loop forever.
const maxPrototypeDepth = 32

// LookupProperty searches v's own properties then its prototype chain for
// name, per spec.md §4.8 "own properties then prototype chain". It returns
// (nil, false) if the chain bottoms out without finding name. If the chain
// is still going after maxPrototypeDepth steps — a cyclic __proto__ graph,
// since a well-founded chain always bottoms out at a fixed point first —
// it raises a range error on ctx (spec.md §9 "bounded ... to guarantee
// termination") and returns (nil, false).
func LookupProperty(ctx Context, v *Value, name string) (*Value, bool) {
	cur := v
	for depth := 0; depth < maxPrototypeDepth; depth++ {
		if cur == nil {
			return nil, false
		}
		if cur.kind == KindObject {
			if val, ok := cur.obj.entries[name]; ok {
				return val, true
			}
		}
		proto := cur.Prototype(ctx)
		if proto == cur {
			return nil, false
		}
		cur = proto
	}
	err := NewError(ErrRange, "prototype chain exceeds maximum depth", token.Position{})
	ctx.SetError(err)
	err.Release()
	return nil, false
}

package builtins

import (
	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/value"
)

// installObject installs the object prototype's property accessors plus
// the __proto__ get/set pair (SPEC_FULL.md §12, named proto@/proto! —
// matching the original's value-object.cpp explicit prototype-accessor
// methods, needed to exercise the depth-bounded cyclic lookup of §9).
func installObject(rt *runtime.Runtime) {
	p := rt.Prototype(value.KindObject)

	word(rt.Mem, p, "@", func(ctx value.Context) bool {
		key, ok := ctx.PopString()
		if !ok {
			return false
		}
		o, ok := ctx.PopObject()
		if !ok {
			key.Release()
			return false
		}
		name := key.Str()
		v := o.Get(name)
		key.Release()
		if v == nil {
			o.Release()
			ctx.SetError(value.Manage(ctx.Mem(), value.NewError(value.ErrReference, "no such property: "+name, zeroPos)))
			return false
		}
		ctx.Push(v)
		o.Release()
		return true
	})

	word(rt.Mem, p, "!", func(ctx value.Context) bool {
		v, ok := ctx.Pop()
		if !ok {
			return false
		}
		key, ok := ctx.PopString()
		if !ok {
			v.Release()
			return false
		}
		o, ok := ctx.PopObject()
		if !ok {
			key.Release()
			v.Release()
			return false
		}
		o.Set(key.Str(), v)
		key.Release()
		v.Release()
		ctx.Push(o)
		o.Release()
		return true
	})

	word(rt.Mem, p, "has?", func(ctx value.Context) bool {
		key, ok := ctx.PopString()
		if !ok {
			return false
		}
		o, ok := ctx.PopObject()
		if !ok {
			key.Release()
			return false
		}
		pushBool(ctx, o.Has(key.Str()))
		key.Release()
		o.Release()
		return true
	})

	word(rt.Mem, p, "keys", func(ctx value.Context) bool {
		o, ok := ctx.PopObject()
		if !ok {
			return false
		}
		keys := o.Keys()
		elems := make([]*value.Value, len(keys))
		for i, k := range keys {
			elems[i] = value.Manage(ctx.Mem(), value.NewString(k))
		}
		out := value.Manage(ctx.Mem(), value.NewArray(elems))
		for _, e := range elems {
			e.Release()
		}
		o.Release()
		ctx.Push(out)
		out.Release()
		return true
	})

	word(rt.Mem, p, "proto@", func(ctx value.Context) bool {
		o, ok := ctx.PopObject()
		if !ok {
			return false
		}
		proto := o.Prototype(ctx)
		ctx.Push(proto)
		o.Release()
		return true
	})

	word(rt.Mem, p, "proto!", func(ctx value.Context) bool {
		proto, ok := ctx.PopObject()
		if !ok {
			return false
		}
		o, ok := ctx.PopObject()
		if !ok {
			proto.Release()
			return false
		}
		o.Set("__proto__", proto)
		proto.Release()
		ctx.Push(o)
		o.Release()
		return true
	})
}

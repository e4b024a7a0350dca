package builtins

import (
	"testing"

	"github.com/plorthlang/plorth/internal/value"
)

func TestObjectGet(t *testing.T) {
	ctx := run(t, `{ "a": 1 } "a" @`)
	v := popTop(t, ctx)
	if v.Int() != 1 {
		t.Fatalf(`{ "a": 1 } "a" @ = %v, want 1`, v.Int())
	}
	v.Release()
}

func TestObjectGetMissingPropertyRaisesReferenceError(t *testing.T) {
	e := runFails(t, `{ "a": 1 } "missing" @`)
	if e.ErrorCode() != value.ErrReference {
		t.Fatalf("ErrorCode() = %v for a missing property, want ErrReference", e.ErrorCode())
	}
}

func TestObjectSet(t *testing.T) {
	ctx := run(t, `{ } "a" 1 ! "a" @`)
	v := popTop(t, ctx)
	if v.Int() != 1 {
		t.Fatalf(`setting then getting "a" = %v, want 1`, v.Int())
	}
	v.Release()
}

func TestObjectHasPredicate(t *testing.T) {
	ctx := run(t, `{ "a": 1 } "a" has?`)
	v := popTop(t, ctx)
	if !v.Bool() {
		t.Fatalf(`has?("a") = %v, want true`, v.Bool())
	}
	v.Release()

	ctx = run(t, `{ "a": 1 } "b" has?`)
	v = popTop(t, ctx)
	if v.Bool() {
		t.Fatalf(`has?("b") = %v, want false`, v.Bool())
	}
	v.Release()
}

func TestObjectKeys(t *testing.T) {
	ctx := run(t, `{ "a": 1, "b": 2 } keys length`)
	v := popTop(t, ctx)
	if v.Int() != 2 {
		t.Fatalf("keys length = %v, want 2", v.Int())
	}
	v.Release()
}

func TestObjectProtoGetSet(t *testing.T) {
	ctx := run(t, `{ } { "a": 1 } proto! proto@ "a" @`)
	v := popTop(t, ctx)
	if v.Int() != 1 {
		t.Fatalf("property inherited through proto! then proto@ = %v, want 1", v.Int())
	}
	v.Release()
}

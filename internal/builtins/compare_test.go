package builtins

import (
	"testing"

	"github.com/plorthlang/plorth/internal/value"
)

func TestCompareEq(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{`1 1 eq`, true},
		{`1 2 eq`, false},
		{`"a" "a" eq`, true},
		{`true false eq`, false},
	}
	for i, c := range cases {
		ctx := run(t, c.src)
		got := popTop(t, ctx)
		if got.Bool() != c.want {
			t.Errorf("case %d (%q): got %v, want %v", i, c.src, got.Bool(), c.want)
		}
		got.Release()
	}
}

func TestCompareNe(t *testing.T) {
	ctx := run(t, `1 2 ne`)
	v := popTop(t, ctx)
	if !v.Bool() {
		t.Fatalf("1 2 ne = %v, want true", v.Bool())
	}
	v.Release()
}

func TestCompareOrdered(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{`1 2 lt`, true},
		{`2 1 lt`, false},
		{`2 1 gt`, true},
		{`1 1 le`, true},
		{`1 1 ge`, true},
		{`"a" "b" lt`, true},
	}
	for i, c := range cases {
		ctx := run(t, c.src)
		got := popTop(t, ctx)
		if got.Bool() != c.want {
			t.Errorf("case %d (%q): got %v, want %v", i, c.src, got.Bool(), c.want)
		}
		got.Release()
	}
}

func TestCompareOrderedRaisesTypeErrorForUnorderedKinds(t *testing.T) {
	e := runFails(t, `[ 1 ] [ 2 ] lt`)
	if e.ErrorCode() != value.ErrType {
		t.Fatalf("ErrorCode() = %v, want ErrType", e.ErrorCode())
	}
}

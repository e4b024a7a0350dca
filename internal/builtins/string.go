package builtins

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/plorthlang/plorth/internal/runtime"
	"github.com/plorthlang/plorth/internal/value"
)

// installString installs the string prototype's words, wiring x/text the
// way the teacher's string helpers do (internal/interp/string_helpers.go
// for NFC/NFD/NFKC/NFKD normalize, internal/bytecode/vm_builtins_string.go
// for locale-aware case folding and collation) — see SPEC_FULL.md §11.
func installString(rt *runtime.Runtime) {
	p := rt.Prototype(value.KindString)

	word(rt.Mem, p, "length", func(ctx value.Context) bool {
		s, ok := ctx.PopString()
		if !ok {
			return false
		}
		n := value.Manage(ctx.Mem(), value.NewInt(int64(len([]rune(s.Str())))))
		s.Release()
		ctx.Push(n)
		n.Release()
		return true
	})

	word(rt.Mem, p, "upper", func(ctx value.Context) bool {
		s, ok := ctx.PopString()
		if !ok {
			return false
		}
		out := value.Manage(ctx.Mem(), value.NewString(cases.Upper(language.Und).String(s.Str())))
		s.Release()
		ctx.Push(out)
		out.Release()
		return true
	})

	word(rt.Mem, p, "lower", func(ctx value.Context) bool {
		s, ok := ctx.PopString()
		if !ok {
			return false
		}
		out := value.Manage(ctx.Mem(), value.NewString(cases.Lower(language.Und).String(s.Str())))
		s.Release()
		ctx.Push(out)
		out.Release()
		return true
	})

	// normalize("NFC"|"NFD"|"NFKC"|"NFKD") (SPEC_FULL.md §11, ported from
	// go-dws's NFC/NFD/NFKC/NFKD switch in string_helpers.go).
	word(rt.Mem, p, "normalize", func(ctx value.Context) bool {
		form, ok := ctx.PopString()
		if !ok {
			return false
		}
		s, ok := ctx.PopString()
		if !ok {
			form.Release()
			return false
		}
		var n norm.Form
		switch strings.ToUpper(form.Str()) {
		case "NFD":
			n = norm.NFD
		case "NFKC":
			n = norm.NFKC
		case "NFKD":
			n = norm.NFKD
		default:
			n = norm.NFC
		}
		out := value.Manage(ctx.Mem(), value.NewString(n.String(s.Str())))
		s.Release()
		form.Release()
		ctx.Push(out)
		out.Release()
		return true
	})

	// localeCompare(a, b, locale) (SPEC_FULL.md §11, grounded on go-dws's
	// collate.New(tag)-based string comparison).
	word(rt.Mem, p, "localeCompare", func(ctx value.Context) bool {
		locale, ok := ctx.PopString()
		if !ok {
			return false
		}
		b, ok := ctx.PopString()
		if !ok {
			locale.Release()
			return false
		}
		a, ok := ctx.PopString()
		if !ok {
			b.Release()
			locale.Release()
			return false
		}
		tag, err := language.Parse(locale.Str())
		if err != nil {
			tag = language.English
		}
		col := collate.New(tag)
		result := value.Manage(ctx.Mem(), value.NewInt(int64(col.CompareString(a.Str(), b.Str()))))
		a.Release()
		b.Release()
		locale.Release()
		ctx.Push(result)
		result.Release()
		return true
	})

	// concat-via-"+" so strings compose like every other stack-shuffle
	// friendly type on this prototype.
	word(rt.Mem, p, "+", func(ctx value.Context) bool {
		b, ok := ctx.PopString()
		if !ok {
			return false
		}
		a, ok := ctx.PopString()
		if !ok {
			b.Release()
			return false
		}
		out := value.Manage(ctx.Mem(), value.NewString(a.Str()+b.Str()))
		a.Release()
		b.Release()
		ctx.Push(out)
		out.Release()
		return true
	})
}

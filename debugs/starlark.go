package debugs

import (
	"github.com/reusee/minic/compiler"
	"github.com/reusee/minic/ircode"
	"github.com/reusee/minic/semantic"
	"github.com/reusee/minic/syntax"
	"github.com/reusee/minic/tokens"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func stringList(strs []string) *starlark.List {
	elems := make([]starlark.Value, len(strs))
	for i, s := range strs {
		elems[i] = starlark.String(s)
	}
	return starlark.NewList(elems)
}

func symbolDict(sym semantic.Symbol) *starlark.Dict {
	d := starlark.NewDict(3)
	d.SetKey(starlark.String("name"), starlark.String(sym.Name))
	d.SetKey(starlark.String("kind"), starlark.String(sym.Kind))
	d.SetKey(starlark.String("scope"), starlark.String(sym.Scope))
	return d
}

func errorValue(err error) starlark.Value {
	switch err := err.(type) {
	case nil:
		return starlark.None
	case *syntax.Error:
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("kind"), starlark.String(err.Kind.String()))
		d.SetKey(starlark.String("index"), starlark.MakeInt(err.Index))
		d.SetKey(starlark.String("message"), starlark.String(err.Error()))
		return d
	case *semantic.Error:
		d := starlark.NewDict(4)
		d.SetKey(starlark.String("kind"), starlark.String(err.Kind.String()))
		d.SetKey(starlark.String("index"), starlark.MakeInt(err.Index))
		d.SetKey(starlark.String("name"), starlark.String(err.Name))
		d.SetKey(starlark.String("message"), starlark.String(err.Error()))
		return d
	}
	return starlark.String(err.Error())
}

// Globals exposes result to starlark.
func Globals(result *compiler.Result) starlark.StringDict {
	symbols := make([]starlark.Value, len(result.Symbols))
	declared := make(map[string]bool, len(result.Symbols))
	for i, sym := range result.Symbols {
		symbols[i] = symbolDict(sym)
		declared[sym.Name] = true
	}

	kinds := make([]string, len(result.Tokens))
	for i, tok := range result.Tokens {
		kinds[i] = tok.Kind.String()
	}

	tree := starlark.String("")
	if result.Tree != nil {
		tree = starlark.String(result.Tree.String())
	}

	return starlark.StringDict{
		"source":         starlark.String(result.Source),
		"tokens":         stringList(tokens.Texts(result.Tokens)),
		"kinds":          stringList(kinds),
		"symbols":        starlark.NewList(symbols),
		"code":           stringList(ircode.Lines(result.Code)),
		"tree":           tree,
		"valid":          starlark.Bool(result.Valid()),
		"syntax_error":   errorValue(result.SyntaxErr),
		"semantic_error": errorValue(result.SemanticErr),
		"is_declared": starlarkutil.MakeFunc("is_declared", func(name string) bool {
			return declared[name]
		}),
	}
}

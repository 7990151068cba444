package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/minic/compiler"
	"github.com/reusee/minic/modes"
	"go.starlark.net/starlark"
)

func compile(t *testing.T, source string) (result *compiler.Result) {
	dscope.New(
		new(compiler.Module),
		modes.ForTest(t),
	).Call(func(
		compile compiler.Compile,
	) {
		var err error
		result, err = compile(t.Context(), source)
		if err != nil {
			t.Fatal(err)
		}
	})
	return
}

func TestQuery(t *testing.T) {
	result := compile(t, "var x; x = 1; ( y")

	testCases := []struct {
		expr     string
		expected starlark.Value
	}{
		{"len(tokens)", starlark.MakeInt(9)},
		{"tokens[0]", starlark.String("var")},
		{"kinds[1]", starlark.String("identifier")},
		{"code", starlark.NewList([]starlark.Value{starlark.String("DECLARE x"), starlark.String("x = 1")})},
		{"symbols[0]['scope']", starlark.String("global")},
		{"valid", starlark.False},
		{"syntax_error['kind']", starlark.String("UnclosedDelimiter")},
		{"semantic_error['name']", starlark.String("y")},
		{"semantic_error['index']", starlark.MakeInt(8)},
		{"is_declared('x')", starlark.True},
		{"is_declared('y')", starlark.False},
		{"tree.startswith('graph TD')", starlark.True},
	}

	for _, tc := range testCases {
		t.Run(tc.expr, func(t *testing.T) {
			actual, err := Query(result, tc.expr)
			if err != nil {
				t.Fatal(err)
			}
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("%s = %v, want %v", tc.expr, actual, tc.expected)
			}
		})
	}
}

func TestQueryValid(t *testing.T) {
	result := compile(t, "var x;")
	v, err := Query(result, "syntax_error == None and semantic_error == None and valid")
	if err != nil {
		t.Fatal(err)
	}
	if v != starlark.True {
		t.Fatalf("got %v", v)
	}
}

func TestQueryError(t *testing.T) {
	result := compile(t, "var x;")
	if _, err := Query(result, "undefined_name"); err == nil {
		t.Fatal("should error")
	}
}

func TestTapModule(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		if tap == nil {
			t.Fatal()
		}
	})
}

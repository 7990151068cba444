package compiler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/minic/minicconfigs"
	"github.com/reusee/minic/modes"
	"github.com/reusee/minic/parsetree"
	"github.com/reusee/minic/semantic"
	"github.com/reusee/minic/syntax"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	)
}

func TestCompile(t *testing.T) {
	testScope(t).Call(func(
		compile Compile,
	) {
		result, err := compile(t.Context(), "var x; x = 1;")
		if err != nil {
			t.Fatal(err)
		}
		if !result.Valid() {
			t.Fatalf("got %v", result.Errors())
		}
		if len(result.Tokens) != 7 {
			t.Fatalf("got %v", result.Tokens)
		}
		if str := fmt.Sprintf("%v", result.Code); str != "[DECLARE x x = 1]" {
			t.Fatalf("got %s", str)
		}
		if str := fmt.Sprintf("%+v", result.Symbols); str != "[{Name:x Kind:variable Scope:global}]" {
			t.Fatalf("got %s", str)
		}
		if len(result.Tree.Children(result.Tree.Root)) != 7 {
			t.Fatalf("got %v", result.Tree)
		}
		if len(result.Errors()) != 0 {
			t.Fatalf("got %v", result.Errors())
		}
	})
}

func TestCompileEmpty(t *testing.T) {
	testScope(t).Call(func(
		compile Compile,
	) {
		for _, source := range []string{"", "  \n\t "} {
			_, err := compile(t.Context(), source)
			if !errors.Is(err, ErrEmptySource) {
				t.Fatalf("got %v", err)
			}
		}
	})
}

func TestCompileFailuresAreIndependent(t *testing.T) {
	testScope(t).Call(func(
		compile Compile,
	) {
		result, err := compile(t.Context(), "{ y = 2;")
		if err != nil {
			t.Fatal(err)
		}
		var syntaxErr *syntax.Error
		if !errors.As(result.SyntaxErr, &syntaxErr) || syntaxErr.Kind != syntax.UnclosedDelimiter {
			t.Fatalf("got %v", result.SyntaxErr)
		}
		var semErr *semantic.Error
		if !errors.As(result.SemanticErr, &semErr) || semErr.Kind != semantic.UseBeforeDeclaration || semErr.Index != 1 {
			t.Fatalf("got %v", result.SemanticErr)
		}
		// generation and export still run
		if str := fmt.Sprintf("%v", result.Code); str != "[y = 2]" {
			t.Fatalf("got %s", str)
		}
		if result.Tree == nil {
			t.Fatal()
		}
		errs := result.Errors()
		if len(errs) != 2 ||
			errs[0] != "Syntax Error: Unclosed braces or parentheses." ||
			errs[1] != `Semantic Error: Variable "y" used before declaration at token 1` {
			t.Fatalf("got %q", errs)
		}
	})
}

func TestCompileIdempotent(t *testing.T) {
	testScope(t).Call(func(
		compile Compile,
	) {
		const source = "var a; { a = 1; } b = a;"
		r1, err := compile(t.Context(), source)
		if err != nil {
			t.Fatal(err)
		}
		r2, err := compile(t.Context(), source)
		if err != nil {
			t.Fatal(err)
		}
		if r1.Report() != r2.Report() {
			t.Fatalf("got\n%s\n%s", r1.Report(), r2.Report())
		}
		if fmt.Sprint(r1.Errors()) != fmt.Sprint(r2.Errors()) {
			t.Fatal()
		}
		if fmt.Sprint(r1.Symbols) != fmt.Sprint(r2.Symbols) {
			t.Fatal()
		}
		if r1.Tree.String() != r2.Tree.String() {
			t.Fatal()
		}
	})
}

func TestCompileNoLeakBetweenRequests(t *testing.T) {
	testScope(t).Call(func(
		compile Compile,
	) {
		if _, err := compile(t.Context(), "var x;"); err != nil {
			t.Fatal(err)
		}
		result, err := compile(t.Context(), "x = 1;")
		if err != nil {
			t.Fatal(err)
		}
		if result.SemanticErr == nil {
			t.Fatal("x leaked from the previous request")
		}
		if len(result.Symbols) != 0 {
			t.Fatalf("got %v", result.Symbols)
		}
	})
}

func TestCompileConcurrent(t *testing.T) {
	testScope(t).Call(func(
		compile Compile,
	) {
		var wg sync.WaitGroup
		for i := range 32 {
			wg.Go(func() {
				name := fmt.Sprintf("v%d", i)
				result, err := compile(t.Context(), "var "+name+"; "+name+" = 1;")
				if err != nil {
					t.Error(err)
					return
				}
				if len(result.Symbols) != 1 || result.Symbols[0].Name != name {
					t.Errorf("got %v", result.Symbols)
				}
			})
		}
		wg.Wait()
	})
}

func TestCompileCanceled(t *testing.T) {
	testScope(t).Call(func(
		compile Compile,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := compile(ctx, "var x;")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestGraphDirection(t *testing.T) {
	testScope(t).Fork(
		func() minicconfigs.GraphDirection {
			return parsetree.LeftRight
		},
	).Call(func(
		compile Compile,
	) {
		result, err := compile(t.Context(), "a")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(result.Tree.String(), "graph LR\n") {
			t.Fatalf("got %s", result.Tree)
		}
	})
}

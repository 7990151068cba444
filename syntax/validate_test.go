package syntax

import (
	"errors"
	"testing"

	"github.com/reusee/minic/tokens"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		input   string
		kind    ErrorKind
		index   int
		message string
	}{
		{"{ ( ) }", 0, 0, ""},
		{"", 0, 0, ""},
		{"var x; x = 1;", 0, 0, ""},
		{"while (a < b) { if (a) { a = 1; } }", 0, 0, ""},
		{"( { ) }", MismatchedDelimiter, 2, "Mismatched '{' and ')' at token 2"},
		{"{ ( )", UnclosedDelimiter, -1, "Unclosed braces or parentheses."},
		{")", UnexpectedClosingDelimiter, 0, "Unexpected ')' at token 0"},
		{"a = (b));", UnexpectedClosingDelimiter, 5, "Unexpected ')' at token 5"},
		{"{ }}", UnexpectedClosingDelimiter, 2, "Unexpected '}' at token 2"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			err := Validate(tokens.Tokenize(test.input))
			if test.kind == 0 {
				if err != nil {
					t.Fatalf("got %v", err)
				}
				return
			}
			var syntaxErr *Error
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("got %v", err)
			}
			if syntaxErr.Kind != test.kind {
				t.Fatalf("expected %v, got %v", test.kind, syntaxErr.Kind)
			}
			if syntaxErr.Index != test.index {
				t.Fatalf("expected index %d, got %d", test.index, syntaxErr.Index)
			}
			if syntaxErr.Error() != test.message {
				t.Fatalf("got %q", syntaxErr.Error())
			}
		})
	}
}

func TestMismatchedReportsBothDelimiters(t *testing.T) {
	err := Validate(tokens.Tokenize("( { ) }"))
	syntaxErr := err.(*Error)
	if syntaxErr.Opener != "{" || syntaxErr.Closer != ")" {
		t.Fatalf("got %+v", syntaxErr)
	}
}

func TestIndexInRange(t *testing.T) {
	for _, input := range []string{
		"}}}", "(((", "{)", "(}", "a { b ( c } d )", ") (", "{{{{}}}}}",
	} {
		toks := tokens.Tokenize(input)
		err := Validate(toks)
		if err == nil {
			t.Fatalf("%q: expected error", input)
		}
		syntaxErr := err.(*Error)
		if syntaxErr.Kind == UnclosedDelimiter {
			continue
		}
		if syntaxErr.Index < 0 || syntaxErr.Index >= len(toks) {
			t.Fatalf("%q: index %d out of range", input, syntaxErr.Index)
		}
		if toks[syntaxErr.Index].Text != syntaxErr.Closer {
			t.Fatalf("%q: index %d does not point at %q", input, syntaxErr.Index, syntaxErr.Closer)
		}
	}
}

func TestErrors(t *testing.T) {
	toks := tokens.Tokenize(") ( } {")
	var kinds []ErrorKind
	for err := range Errors(toks) {
		kinds = append(kinds, err.Kind)
	}
	if len(kinds) != 3 ||
		kinds[0] != UnexpectedClosingDelimiter ||
		kinds[1] != MismatchedDelimiter ||
		kinds[2] != UnclosedDelimiter {
		t.Fatalf("got %v", kinds)
	}

	// restartable
	n := 0
	for range Errors(toks) {
		n++
	}
	if n != 3 {
		t.Fatalf("got %d", n)
	}
}

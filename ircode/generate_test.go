package ircode

import (
	"fmt"
	"testing"

	"github.com/reusee/minic/tokens"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"var x; x = 1;", []string{"DECLARE x", "x = 1"}},
		{"", []string{}},
		{"{ ( ) }", []string{}},
		{"var a; var b; a = b; b = 42;", []string{"DECLARE a", "DECLARE b", "a = b", "b = 42"}},
		// only the first operand of an expression is taken
		{"x = a + b;", []string{"x = a"}},
		{"while (x) { y = 2; }", []string{"y = 2"}},
		// a single token belongs to at most one instruction
		{"a = b = c;", []string{"a = b"}},
		{"var x = 1;", []string{"DECLARE x"}},
		{"var", []string{}},
		{"x =", []string{}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			lines := Lines(Generate(tokens.Tokenize(test.input)))
			if fmt.Sprintf("%q", lines) != fmt.Sprintf("%q", test.expected) {
				t.Fatalf("expected %q, got %q", test.expected, lines)
			}
		})
	}
}

func TestInstructionVariants(t *testing.T) {
	code := Generate(tokens.Tokenize("var x; x = 1;"))
	if len(code) != 2 {
		t.Fatalf("got %v", code)
	}
	if decl, ok := code[0].(Declare); !ok || decl.Name != "x" {
		t.Fatalf("got %#v", code[0])
	}
	if assign, ok := code[1].(Assign); !ok || assign.Target != "x" || assign.Value != "1" {
		t.Fatalf("got %#v", code[1])
	}
}

func TestPrint(t *testing.T) {
	code := []Instruction{
		Declare{Name: "x"},
		Assign{Target: "x", Value: "1"},
	}
	if str := Print(code); str != "DECLARE x\nx = 1" {
		t.Fatalf("got %q", str)
	}
}

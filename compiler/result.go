package compiler

import (
	"encoding/json"
	"strings"

	"github.com/reusee/minic/ircode"
	"github.com/reusee/minic/parsetree"
	"github.com/reusee/minic/semantic"
	"github.com/reusee/minic/tokens"
)

// Result is everything one compile request produces.
type Result struct {
	Source      string
	Tokens      []tokens.Token
	SyntaxErr   error
	SemanticErr error
	Code        []ircode.Instruction
	Symbols     []semantic.Symbol
	Tree        *parsetree.Graph
}

func (r *Result) Valid() bool {
	return r.SyntaxErr == nil && r.SemanticErr == nil
}

// Report renders the compiler output. Intermediate code is only listed when both checks pass.
func (r *Result) Report() string {
	var b strings.Builder

	b.WriteString("=== Lexical Tokens ===\n")
	// a []string always marshals
	lexemes, _ := json.MarshalIndent(tokens.Texts(r.Tokens), "", "  ")
	b.Write(lexemes)
	b.WriteString("\n\n")

	if r.SyntaxErr == nil {
		b.WriteString("Syntax is valid.\n\n")
	}
	if r.SemanticErr == nil {
		b.WriteString("No semantic errors.\n\n")
	}

	if r.Valid() {
		if len(r.Code) > 0 {
			b.WriteString("=== Intermediate Code ===\n")
			b.WriteString(ircode.Print(r.Code))
			b.WriteString("\n\n")
		} else {
			b.WriteString("No Intermediate Code generated.\n\n")
		}
	}

	return b.String()
}

// Errors returns one line per failed check.
func (r *Result) Errors() []string {
	var ret []string
	if r.SyntaxErr != nil {
		ret = append(ret, "Syntax Error: "+r.SyntaxErr.Error())
	}
	if r.SemanticErr != nil {
		ret = append(ret, "Semantic Error: "+r.SemanticErr.Error())
	}
	return ret
}

package ircode

import "github.com/reusee/minic/tokens"

// Generate emits DECLARE for `var NAME` and assignment for `TARGET = VALUE`, in scan order.
// No validation is done; run the syntax and semantic checks first.
func Generate(toks []tokens.Token) []Instruction {
	var ret []Instruction
	for i := 0; i < len(toks); {
		tok := toks[i]

		if tok.Text == tokens.Declare {
			if name, ok := tokens.At(toks, i+1); ok {
				ret = append(ret, Declare{
					Name: name.Text,
				})
			}
			i += 2
			continue
		}

		if next, ok := tokens.At(toks, i+1); ok && next.Text == "=" {
			if value, ok := tokens.At(toks, i+2); ok {
				ret = append(ret, Assign{
					Target: tok.Text,
					Value:  value.Text,
				})
			}
			i += 3
			continue
		}

		i++
	}
	return ret
}

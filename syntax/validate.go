package syntax

import (
	"iter"

	"github.com/reusee/minic/tokens"
)

var pairs = map[string]string{
	"{": "}",
	"(": ")",
}

// Errors yields every delimiter balance violation in toks.
// A mismatched pair is popped, so scanning resumes with the enclosing opener.
func Errors(toks []tokens.Token) iter.Seq[*Error] {
	return func(yield func(*Error) bool) {
		var stack []string
		for i, tok := range toks {
			if tok.Kind != tokens.KindDelimiter {
				continue
			}

			if _, ok := pairs[tok.Text]; ok {
				stack = append(stack, tok.Text)
				continue
			}

			if len(stack) == 0 {
				if !yield(&Error{
					Kind:   UnexpectedClosingDelimiter,
					Index:  i,
					Closer: tok.Text,
				}) {
					return
				}
				continue
			}

			last := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if pairs[last] != tok.Text {
				if !yield(&Error{
					Kind:   MismatchedDelimiter,
					Index:  i,
					Opener: last,
					Closer: tok.Text,
				}) {
					return
				}
			}
		}

		if len(stack) > 0 {
			yield(&Error{
				Kind:   UnclosedDelimiter,
				Index:  -1,
				Opener: stack[len(stack)-1],
			})
		}
	}
}

// Validate returns the first balance violation, or nil.
func Validate(toks []tokens.Token) error {
	for err := range Errors(toks) {
		return err
	}
	return nil
}

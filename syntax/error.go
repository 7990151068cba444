package syntax

import "fmt"

type ErrorKind uint8

const (
	UnexpectedClosingDelimiter ErrorKind = iota + 1
	MismatchedDelimiter
	UnclosedDelimiter
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedClosingDelimiter:
		return "UnexpectedClosingDelimiter"
	case MismatchedDelimiter:
		return "MismatchedDelimiter"
	case UnclosedDelimiter:
		return "UnclosedDelimiter"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

type Error struct {
	Kind ErrorKind
	// token index, -1 for UnclosedDelimiter
	Index  int
	Opener string
	Closer string
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedClosingDelimiter:
		return fmt.Sprintf("Unexpected '%s' at token %d", e.Closer, e.Index)
	case MismatchedDelimiter:
		return fmt.Sprintf("Mismatched '%s' and '%s' at token %d", e.Opener, e.Closer, e.Index)
	case UnclosedDelimiter:
		return "Unclosed braces or parentheses."
	}
	return e.Kind.String()
}

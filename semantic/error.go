package semantic

import "fmt"

type ErrorKind uint8

const (
	InvalidDeclarationName ErrorKind = iota + 1
	UseBeforeDeclaration
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidDeclarationName:
		return "InvalidDeclarationName"
	case UseBeforeDeclaration:
		return "UseBeforeDeclaration"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

type Error struct {
	Kind  ErrorKind
	Index int
	// offending identifier, empty when the declaration has no name token
	Name string
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidDeclarationName:
		return fmt.Sprintf("Invalid variable name at token %d", e.Index)
	case UseBeforeDeclaration:
		return fmt.Sprintf("Variable \"%s\" used before declaration at token %d", e.Name, e.Index)
	}
	return e.Kind.String()
}

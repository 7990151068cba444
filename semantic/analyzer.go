package semantic

import (
	"iter"

	"github.com/reusee/minic/tokens"
)

// Analyzer owns the symbol table and scope stack of one compile request.
// It is not safe for concurrent use; make one per request.
type Analyzer struct {
	table  *Table
	scopes []string
}

func NewAnalyzer() *Analyzer {
	a := &Analyzer{
		table: NewTable(),
	}
	a.Reset()
	return a
}

// Reset clears the symbol table and leaves only the global scope.
func (a *Analyzer) Reset() {
	a.table.Reset()
	a.scopes = append(a.scopes[:0], GlobalScope)
}

func (a *Analyzer) currentScope() string {
	return a.scopes[len(a.scopes)-1]
}

// Scopes returns a copy of the scope stack, bottom first.
func (a *Analyzer) Scopes() []string {
	return append([]string(nil), a.scopes...)
}

func (a *Analyzer) Symbols() []Symbol {
	return a.table.Snapshot()
}

func (a *Analyzer) Lookup(name string) (Symbol, bool) {
	return a.table.Lookup(name)
}

// Errors resets the analyzer and yields every declaration or use violation in toks.
// Symbols are declared as the scan proceeds, so stopping early leaves a partial table.
func (a *Analyzer) Errors(toks []tokens.Token) iter.Seq[*Error] {
	return func(yield func(*Error) bool) {
		a.Reset()

		for i := 0; i < len(toks); i++ {
			tok := toks[i]

			if tok.Text == tokens.Declare {
				name, ok := tokens.At(toks, i+1)
				if !ok || !tokens.IsIdentifier(name.Text) {
					if !yield(&Error{
						Kind:  InvalidDeclarationName,
						Index: i + 1,
						Name:  name.Text,
					}) {
						return
					}
					continue
				}
				a.table.Declare(Symbol{
					Name:  name.Text,
					Kind:  KindVariable,
					Scope: a.currentScope(),
				})
				// skip the name
				i++
				continue
			}

			if tok.Kind == tokens.KindIdentifier {
				if _, ok := a.table.Lookup(tok.Text); !ok {
					if !yield(&Error{
						Kind:  UseBeforeDeclaration,
						Index: i,
						Name:  tok.Text,
					}) {
						return
					}
				}
			}
		}
	}
}

// Analyze returns the first violation, or nil.
func (a *Analyzer) Analyze(toks []tokens.Token) error {
	for err := range a.Errors(toks) {
		return err
	}
	return nil
}

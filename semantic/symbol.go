package semantic

const (
	KindVariable = "variable"
	GlobalScope  = "global"
)

type Symbol struct {
	Name  string
	Kind  string
	Scope string
}

// Table maps names to symbols, remembering first insertion order.
// Redeclaring a name replaces the symbol in place.
type Table struct {
	index   map[string]int
	symbols []Symbol
}

func NewTable() *Table {
	return &Table{
		index: make(map[string]int),
	}
}

func (t *Table) Declare(sym Symbol) {
	if i, ok := t.index[sym.Name]; ok {
		t.symbols[i] = sym
		return
	}
	t.index[sym.Name] = len(t.symbols)
	t.symbols = append(t.symbols, sym)
}

func (t *Table) Lookup(name string) (Symbol, bool) {
	i, ok := t.index[name]
	if !ok {
		return Symbol{}, false
	}
	return t.symbols[i], true
}

// Snapshot returns a copy of the symbols in insertion order.
func (t *Table) Snapshot() []Symbol {
	ret := make([]Symbol, len(t.symbols))
	copy(ret, t.symbols)
	return ret
}

func (t *Table) Reset() {
	clear(t.index)
	t.symbols = t.symbols[:0]
}

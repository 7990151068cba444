package tokens

import "github.com/samber/lo"

type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	return t.Text
}

type Kind uint8

const (
	KindInvalid Kind = iota
	// word-shaped lexeme that is not a valid identifier, like 1 or 9lives
	KindWord
	KindIdentifier
	KindKeyword
	KindDelimiter
	KindOperator
	KindTerminator
)

var kindNames = [...]string{
	KindInvalid:    "invalid",
	KindWord:       "word",
	KindIdentifier: "identifier",
	KindKeyword:    "keyword",
	KindDelimiter:  "delimiter",
	KindOperator:   "operator",
	KindTerminator: "terminator",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

const Declare = "var"

var Keywords = map[string]bool{
	Declare: true,
	"if":    true,
	"else":  true,
	"while": true,
}

// Texts returns the lexemes of toks in order.
func Texts(toks []Token) []string {
	return lo.Map(toks, func(tok Token, _ int) string {
		return tok.Text
	})
}

// At returns the token at index i, or false when i is out of range.
func At(toks []Token, i int) (Token, bool) {
	if i < 0 || i >= len(toks) {
		return Token{}, false
	}
	return toks[i], true
}

package tokens

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Tokenizer splits source into word runs and single structural characters.
// Bytes outside both sets are skipped.
type Tokenizer struct {
	source  *bufio.Reader
	current *Token
}

func NewTokenizer(source io.Reader) *Tokenizer {
	return &Tokenizer{
		source: bufio.NewReader(source),
	}
}

// Current returns the token under the cursor, or nil at end of input.
func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func (t *Tokenizer) parseNext() (*Token, error) {
	for {
		c, err := t.source.ReadByte()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		switch {
		case isWordByte(c):
			t.source.UnreadByte()
			return t.parseWord()
		case isSymbolByte(c):
			text := string(c)
			return &Token{
				Kind: Classify(text),
				Text: text,
			}, nil
		}
	}
}

func (t *Tokenizer) parseWord() (*Token, error) {
	var buf bytes.Buffer
	for {
		c, err := t.source.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isWordByte(c) {
			t.source.UnreadByte()
			break
		}
		buf.WriteByte(c)
	}
	text := buf.String()
	return &Token{
		Kind: Classify(text),
		Text: text,
	}, nil
}

// All drains the tokenizer.
func (t *Tokenizer) All() ([]Token, error) {
	var ret []Token
	for {
		tok, err := t.Current()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return ret, nil
		}
		ret = append(ret, *tok)
		t.Consume()
	}
}

// Tokenize never fails; unknown characters produce no token.
func Tokenize(source string) []Token {
	// strings.Reader never returns read errors other than EOF
	ret, _ := NewTokenizer(strings.NewReader(source)).All()
	return ret
}

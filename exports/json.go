package exports

import (
	"encoding/json"
	"io"

	"github.com/reusee/minic/tokens"
)

// Snapshot is the persisted form of a compile request.
type Snapshot struct {
	Code   string   `json:"code"`
	Tokens []string `json:"tokens"`
}

// JSON writes source and its lexemes.
func JSON(w io.Writer, source string) error {
	data, err := json.MarshalIndent(Snapshot{
		Code:   source,
		Tokens: tokens.Texts(tokens.Tokenize(source)),
	}, "", "  ")
	if err != nil {
		return wrap(err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return wrap(err)
	}
	return nil
}

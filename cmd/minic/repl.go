package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/minic/compiler"
	"github.com/reusee/minic/format"
)

const replHelp = `enter source lines, an empty line compiles them
:format  print the buffered source formatted
:reset   drop the buffered source
:quit    exit`

// lineReader is satisfied by *readline.Instance.
type lineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

func runREPL(ctx context.Context, compile compiler.Compile, formatSource format.Format, tree bool) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".minic_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()
	fmt.Println(replHelp)
	replLoop(ctx, rl, os.Stdout, os.Stderr, compile, formatSource, tree)
}

// replLoop buffers lines until an empty line, then compiles the buffer as one request.
// It returns on :quit or when lines fails.
func replLoop(
	ctx context.Context,
	lines lineReader,
	stdout io.Writer,
	stderr io.Writer,
	compile compiler.Compile,
	formatSource format.Format,
	tree bool,
) {
	var buf strings.Builder
	for {
		if buf.Len() > 0 {
			lines.SetPrompt(". ")
		} else {
			lines.SetPrompt("> ")
		}
		line, err := lines.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return
		}

		switch strings.TrimSpace(line) {
		case ":quit":
			return
		case ":reset":
			buf.Reset()
			continue
		case ":format":
			fmt.Fprintln(stdout, formatSource(buf.String()))
			continue
		case "":
			result, err := compile(ctx, buf.String())
			buf.Reset()
			if errors.Is(err, compiler.ErrEmptySource) {
				continue
			}
			if err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				continue
			}
			printResult(stdout, stderr, result, tree)
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

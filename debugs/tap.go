package debugs

import (
	"context"

	"github.com/reusee/minic/compiler"
	"github.com/reusee/minic/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with the compile result bound as globals.
type Tap func(ctx context.Context, result *compiler.Result)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, result *compiler.Result) {
		logger.InfoContext(ctx, "tap", "tokens", len(result.Tokens))
		defer func() {
			logger.InfoContext(ctx, "tap end")
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(result))
	}
}

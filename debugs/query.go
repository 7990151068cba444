package debugs

import (
	"github.com/reusee/minic/compiler"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Query evaluates a starlark expression against result.
func Query(result *compiler.Result, expr string) (starlark.Value, error) {
	thread := &starlark.Thread{
		Name: "query",
	}
	return starlark.EvalOptions(&syntax.FileOptions{}, thread, "query", expr, Globals(result))
}

package minicconfigs

import (
	"github.com/reusee/minic/cmds"
	"github.com/reusee/minic/configs"
	"github.com/reusee/minic/parsetree"
	"github.com/reusee/minic/vars"
)

var (
	indentSizeFlag     = cmds.Var[int]("-indent")
	graphDirectionFlag = cmds.Var[string]("-graph-direction")
	pageWidthFlag      = cmds.Var[int]("-page-width")
	pageLinesFlag      = cmds.Var[int]("-page-lines")
	jobsFlag           = cmds.Var[int]("-jobs")
)

const (
	DefaultIndentSize = 2
	DefaultPageWidth  = 80
	DefaultPageLines  = 60
	DefaultJobs       = 4
)

// IndentSize is the number of spaces per brace level in formatted source.
type IndentSize int

func (Module) IndentSize(
	loader configs.Loader,
) IndentSize {
	return IndentSize(vars.FirstNonZero(
		*indentSizeFlag,
		configs.First[int](loader, "indent_size"),
		DefaultIndentSize,
	))
}

type GraphDirection = parsetree.Direction

func (Module) GraphDirection(
	loader configs.Loader,
) GraphDirection {
	dir := parsetree.Direction(vars.FirstNonZero(
		*graphDirectionFlag,
		configs.First[string](loader, "graph_direction"),
	))
	if !dir.Valid() {
		return parsetree.TopDown
	}
	return dir
}

// PageSize bounds the text document sink.
type PageSize struct {
	Width int
	Lines int
}

func (Module) PageSize(
	loader configs.Loader,
) PageSize {
	return PageSize{
		Width: vars.FirstNonZero(
			*pageWidthFlag,
			configs.First[int](loader, "page_width"),
			DefaultPageWidth,
		),
		Lines: vars.FirstNonZero(
			*pageLinesFlag,
			configs.First[int](loader, "page_lines"),
			DefaultPageLines,
		),
	}
}

// Jobs limits concurrent compile requests.
type Jobs int

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return Jobs(max(1, vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		DefaultJobs,
	)))
}

package compiler

import (
	"github.com/reusee/dscope"
	"github.com/reusee/minic/logs"
	"github.com/reusee/minic/minicconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs minicconfigs.Module
}

package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/minic/compiler"
	"github.com/reusee/minic/debugs"
	"github.com/reusee/minic/format"
)

type Module struct {
	dscope.Module
	Compiler compiler.Module
	Format   format.Module
	Debugs   debugs.Module
}

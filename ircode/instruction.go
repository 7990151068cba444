package ircode

import (
	"fmt"
	"strings"
)

type Instruction interface {
	fmt.Stringer
	isInstruction()
}

type Declare struct {
	Name string
}

var _ Instruction = Declare{}

func (Declare) isInstruction() {}

func (d Declare) String() string {
	return "DECLARE " + d.Name
}

type Assign struct {
	Target string
	Value  string
}

var _ Instruction = Assign{}

func (Assign) isInstruction() {}

func (a Assign) String() string {
	return a.Target + " = " + a.Value
}

// Lines renders one instruction per element.
func Lines(code []Instruction) []string {
	ret := make([]string, 0, len(code))
	for _, inst := range code {
		ret = append(ret, inst.String())
	}
	return ret
}

func Print(code []Instruction) string {
	return strings.Join(Lines(code), "\n")
}

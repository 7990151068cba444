package format

import (
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/minic/minicconfigs"
)

// Indent re-indents code by brace depth, size spaces per level.
// A line ending in } is dedented itself; a line ending in { indents the lines after it.
// Other braces inside a line are not counted.
func Indent(code string, size int) string {
	lines := strings.Split(code, "\n")
	level := 0
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasSuffix(line, "}") {
			level = max(0, level-1)
		}
		if line != "" {
			line = strings.Repeat(" ", level*size) + line
		}
		lines[i] = line
		if strings.HasSuffix(line, "{") {
			level++
		}
	}
	return strings.Join(lines, "\n")
}

type Module struct {
	dscope.Module
	Configs minicconfigs.Module
}

type Format func(code string) string

func (Module) Format(
	size minicconfigs.IndentSize,
) Format {
	return func(code string) string {
		return Indent(code, int(size))
	}
}

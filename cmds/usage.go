package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands)
}

func printCommands(w io.Writer, commands map[string]*Command) {
	names := make(map[*Command][]string)
	var order []*Command
	for name, command := range commands {
		if _, ok := names[command]; !ok {
			order = append(order, command)
		}
		names[command] = append(names[command], name)
	}
	for _, command := range order {
		slices.Sort(names[command])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	for _, command := range order {
		fmt.Fprint(w, strings.Join(names[command], ", "))
		for i := range command.Func.Type().NumIn() {
			fmt.Fprintf(w, " <%s>", command.Func.Type().In(i))
		}
		if command.Description != "" {
			fmt.Fprintf(w, "\t%s", command.Description)
		}
		fmt.Fprintln(w)
	}
}

func (p *Executor) fail(err error) {
	fmt.Fprintf(os.Stderr, "%v\n\n", err)
	p.PrintUsage(os.Stderr)
	os.Exit(2)
}

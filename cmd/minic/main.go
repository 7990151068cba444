package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/minic/cmds"
	"github.com/reusee/minic/compiler"
	"github.com/reusee/minic/debugs"
	"github.com/reusee/minic/format"
	"github.com/reusee/minic/logs"
	"github.com/reusee/minic/minicconfigs"
	"github.com/reusee/minic/modes"
	"github.com/reusee/minic/syncs"
	"github.com/samber/lo"
	"golang.org/x/term"
)

var (
	files      = cmds.Collect[string]("-file")
	formatOnly = cmds.Switch("-format")
	printTree  = cmds.Switch("-tree")
	tapResult  = cmds.Switch("-tap")
	jsonPath   = cmds.Var[string]("-json")
	htmlPath   = cmds.Var[string]("-html")
	pagesPath  = cmds.Var[string]("-pages")
	query      = cmds.Var[string]("-query")
)

type options struct {
	files      []string
	formatOnly bool
	tree       bool
	tap        bool
	query      string
	sinks      sinkPaths
}

type input struct {
	name   string
	source string
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	os.Exit(run(context.Background(), scope, options{
		files:      *files,
		formatOnly: *formatOnly,
		tree:       *printTree,
		tap:        *tapResult,
		query:      *query,
		sinks: sinkPaths{
			json:  *jsonPath,
			html:  *htmlPath,
			pages: *pagesPath,
		},
	}, os.Stdin, os.Stdout, os.Stderr))
}

// run returns the exit status: 1 if any input is missing, empty or fails a check.
func run(
	ctx context.Context,
	scope dscope.Scope,
	opts options,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) (code int) {
	scope.Call(func(
		logger logs.Logger,
		compile compiler.Compile,
		formatSource format.Format,
		jobs minicconfigs.Jobs,
		page minicconfigs.PageSize,
		tap debugs.Tap,
	) {

		var inputs []input
		for _, path := range opts.files {
			content, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				code = 1
				return
			}
			inputs = append(inputs, input{
				name:   path,
				source: string(content),
			})
		}

		fromStdin := false
		if len(inputs) == 0 {
			if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				runREPL(ctx, compile, formatSource, opts.tree)
				return
			}
			content, err := io.ReadAll(stdin)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				code = 1
				return
			}
			inputs = append(inputs, input{
				name:   "<stdin>",
				source: string(content),
			})
			fromStdin = true
		}

		if opts.formatOnly {
			for _, in := range inputs {
				fmt.Fprint(stdout, formatSource(in.source))
				if !strings.HasSuffix(in.source, "\n") {
					fmt.Fprintln(stdout)
				}
			}
			return
		}

		if opts.tap && fromStdin {
			// the starlark REPL reads the same stdin
			logger.Warn("tap ignored", "reason", "stdin already read")
			fmt.Fprintln(stderr, "Warning: -tap ignored, source was read from stdin")
			opts.tap = false
		}

		results := make([]*compiler.Result, len(inputs))
		errs := make([]error, len(inputs))
		sem := syncs.NewSemaphore(int(jobs))
		var wg sync.WaitGroup
		for i, in := range inputs {
			if err := sem.Acquire(ctx); err != nil {
				wg.Wait()
				fmt.Fprintf(stderr, "Error: %v\n", err)
				code = 1
				return
			}
			wg.Go(func() {
				defer sem.Release()
				results[i], errs[i] = compile(ctx, in.source)
			})
		}
		wg.Wait()

		for i, in := range inputs {
			if len(inputs) > 1 {
				fmt.Fprintf(stdout, "##### %s\n", in.name)
			}
			if errs[i] != nil {
				logger.Error("compile", "source", in.name, "error", errs[i])
				fmt.Fprintf(stderr, "Error: %v\n", errs[i])
				code = 1
				continue
			}
			result := results[i]
			if !printResult(stdout, stderr, result, opts.tree) {
				code = 1
			}
			if opts.query != "" {
				value, err := debugs.Query(result, opts.query)
				if err != nil {
					fmt.Fprintf(stderr, "Error: %v\n", err)
					code = 1
				} else {
					fmt.Fprintln(stdout, value)
				}
			}
			if opts.tap {
				tap(ctx, result)
			}
		}

		if opts.sinks.empty() {
			return
		}
		// one path per sink, so the first compiled input is written
		result, i, ok := lo.FindIndexOf(results, func(result *compiler.Result) bool {
			return result != nil
		})
		if !ok {
			logger.Warn("sinks not written", "reason", "no input compiled")
			fmt.Fprintln(stderr, "Error: no input compiled, sinks not written")
			code = 1
			return
		}
		if i > 0 {
			logger.Warn("sinks written from later input", "source", inputs[i].name)
		}
		if err := writeSinks(opts.sinks, inputs[i].source, result, page); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			code = 1
		}
	})
	return
}

// printResult writes the report to stdout and errors to stderr, reporting whether the source is valid.
func printResult(stdout, stderr io.Writer, result *compiler.Result, tree bool) bool {
	fmt.Fprint(stdout, result.Report())
	for _, line := range result.Errors() {
		fmt.Fprintln(stderr, line)
	}
	if tree {
		fmt.Fprint(stdout, result.Tree.String())
	}
	return result.Valid()
}

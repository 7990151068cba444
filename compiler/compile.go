package compiler

import (
	"context"
	"errors"
	"strings"

	"github.com/reusee/minic/ircode"
	"github.com/reusee/minic/logs"
	"github.com/reusee/minic/minicconfigs"
	"github.com/reusee/minic/parsetree"
	"github.com/reusee/minic/procs"
	"github.com/reusee/minic/semantic"
	"github.com/reusee/minic/syntax"
	"github.com/reusee/minic/tokens"
)

var ErrEmptySource = errors.New("no code provided")

// Compile runs every stage on source. Check failures are recorded in the Result, not returned.
// The returned error is ErrEmptySource or a context error.
type Compile func(ctx context.Context, source string) (*Result, error)

type request struct {
	ctx      context.Context
	logger   logs.Logger
	result   *Result
	analyzer *semantic.Analyzer
}

type stage = procs.Proc[*request]

func (Module) Compile(
	logger logs.Logger,
	newSpan logs.NewSpan,
	direction minicconfigs.GraphDirection,
) Compile {
	return func(ctx context.Context, source string) (*Result, error) {
		if strings.TrimSpace(source) == "" {
			return nil, ErrEmptySource
		}

		ctx, _ = newSpan(ctx, "", "bytes", len(source))
		req := &request{
			ctx:    ctx,
			logger: logger,
			result: &Result{
				Source: source,
				Tokens: tokens.Tokenize(source),
			},
			// one analyzer per request, symbol state never crosses requests
			analyzer: semantic.NewAnalyzer(),
		}
		logger.DebugContext(ctx, "tokenized", "tokens", len(req.result.Tokens))

		if err := procs.Drive(req, stage(stages)); err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		req.result.Tree.Direction = direction

		logger.InfoContext(ctx, "compiled",
			"tokens", len(req.result.Tokens),
			"valid", req.result.Valid(),
			"instructions", len(req.result.Code),
			"symbols", len(req.result.Symbols),
		)
		return req.result, nil
	}
}

// downstream stages only read the token sequence, so their order is free
var stages = procs.Procs[*request]{
	stageFunc("syntax", func(req *request) {
		req.result.SyntaxErr = syntax.Validate(req.result.Tokens)
	}),
	stageFunc("semantic", func(req *request) {
		req.result.SemanticErr = req.analyzer.Analyze(req.result.Tokens)
		req.result.Symbols = req.analyzer.Symbols()
	}),
	stageFunc("ircode", func(req *request) {
		req.result.Code = ircode.Generate(req.result.Tokens)
	}),
	stageFunc("parsetree", func(req *request) {
		req.result.Tree = parsetree.Export(req.result.Tokens)
	}),
}

func stageFunc(name string, fn func(*request)) stage {
	return procs.Func[*request](func(req *request) (stage, error) {
		if err := req.ctx.Err(); err != nil {
			return nil, err
		}
		fn(req)
		req.logger.DebugContext(req.ctx, "stage done", "stage", name)
		return nil, nil
	})
}

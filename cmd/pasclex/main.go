package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/pasclex/analyzer"
	"github.com/reusee/pasclex/cmds"
	"github.com/reusee/pasclex/configs"
	"github.com/reusee/pasclex/debugs"
	"github.com/reusee/pasclex/lexer"
	"github.com/reusee/pasclex/logs"
	"github.com/reusee/pasclex/modes"
	"github.com/reusee/pasclex/render"
	"golang.org/x/term"
)

var (
	files       = cmds.Collect[string]("-file", "source file to scan, may repeat")
	tap         = cmds.Switch("-tap", "open a starlark repl over the results")
	interactive = cmds.Switch("-repl", "enter source interactively")
	strict      = cmds.Switch("-strict", "exit with status 3 when lexical errors are found")
)

const (
	exitOK            = 0
	exitFailure       = 1
	exitLexicalErrors = 3
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(*files) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		*interactive = true
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	code := run(ctx, scope, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(
	ctx context.Context,
	scope dscope.Scope,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) (code int) {
	scope.Call(func(
		logger logs.Logger,
		loader configs.Loader,
		analyze analyzer.Analyze,
		analyzeFiles analyzer.AnalyzeFiles,
		renderReports render.Render,
		reportError render.ReportError,
		tapResults debugs.Tap,
	) {
		if err := loader.Err(); err != nil {
			reportError(stderr, err)
			code = exitFailure
			return
		}

		if *interactive {
			if err := runREPL(ctx, analyze, renderReports, reportError, stdout, stderr); err != nil {
				reportError(stderr, err)
				code = exitFailure
			}
			return
		}

		var reports []*analyzer.Report
		if len(*files) > 0 {
			var err error
			reports, err = analyzeFiles(ctx, *files)
			if err != nil {
				reportError(stderr, err)
				code = exitFailure
				return
			}
		} else {
			content, err := io.ReadAll(stdin)
			if err != nil {
				reportError(stderr, err)
				code = exitFailure
				return
			}
			report, err := analyze(ctx, "<stdin>", string(content))
			if err != nil {
				reportError(stderr, err)
				code = exitFailure
				return
			}
			reports = append(reports, report)
		}

		if err := renderReports(stdout, reports...); err != nil {
			reportError(stderr, err)
			code = exitFailure
			return
		}

		if *tap {
			tapResults(ctx, "results", map[string]any{
				"reports": reports,
				"lex":     lexer.Tokenize,
			})
		}

		if *strict {
			for _, report := range reports {
				if report.HasErrors() {
					logger.InfoContext(ctx, "lexical errors found", "name", report.Name)
					code = exitLexicalErrors
				}
			}
		}
	})
	return
}

package analyzer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/reusee/pasclex/lexer"
	"github.com/reusee/pasclex/logs"
)

var ErrEmptySource = errors.New("source is empty")

// Analyze scans source and times the scan.
// If ctx is done first the scan is left to finish on its own and its result is dropped.
type Analyze func(ctx context.Context, name string, source string) (*Report, error)

func (Module) Analyze(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Analyze {
	return func(ctx context.Context, name string, source string) (*Report, error) {
		ctx, _ = newSpan(ctx, "")

		if strings.TrimSpace(source) == "" {
			logger.WarnContext(ctx, "empty source", "name", name)
			return nil, ErrEmptySource
		}

		done := make(chan *Report, 1)
		go func() {
			start := time.Now()
			tokens := lexer.Tokenize(source)
			done <- &Report{
				Name:    name,
				Source:  source,
				Tokens:  tokens,
				Elapsed: time.Since(start),
			}
		}()

		select {
		case <-ctx.Done():
			logger.WarnContext(ctx, "scan abandoned", "name", name, "error", ctx.Err())
			return nil, logs.WrapSpan(ctx, ctx.Err())
		case report := <-done:
			errs := report.Errors()
			logger.InfoContext(ctx, "scan",
				"name", name,
				"tokens", report.Count(),
				"errors", len(errs),
				"elapsed", report.Elapsed,
			)
			for _, token := range errs {
				logger.DebugContext(ctx, "lexical error",
					"name", name,
					"line", token.Line,
					"message", token.Lexeme,
				)
			}
			return report, nil
		}
	}
}

package analyzer

import (
	"context"
	"os"
	"sync"

	"github.com/reusee/e5"
	"github.com/reusee/pasclex/lexconfigs"
	"github.com/reusee/pasclex/logs"
	"github.com/reusee/pasclex/syncs"
)

// AnalyzeFiles scans each file, at most Parallel at a time.
// Reports are in the order of paths, the first error cancels the rest.
type AnalyzeFiles func(ctx context.Context, paths []string) ([]*Report, error)

func (Module) AnalyzeFiles(
	analyze Analyze,
	parallel lexconfigs.Parallel,
	logger logs.Logger,
) AnalyzeFiles {
	return func(ctx context.Context, paths []string) ([]*Report, error) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		sem := syncs.NewSemaphore(int(parallel))
		reports := make([]*Report, len(paths))
		var wg sync.WaitGroup
		var errOnce sync.Once
		var firstErr error

		for i, path := range paths {
			if err := sem.Acquire(ctx); err != nil {
				errOnce.Do(func() {
					firstErr = err
				})
				break
			}
			wg.Go(func() {
				defer sem.Release()
				report, err := analyzeFile(ctx, analyze, path)
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancel()
					})
					return
				}
				reports[i] = report
			})
		}
		wg.Wait()

		if firstErr != nil {
			logger.ErrorContext(ctx, "analyze files", "error", firstErr)
			return nil, firstErr
		}
		return reports, nil
	}
}

func analyzeFile(ctx context.Context, analyze Analyze, path string) (*Report, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}
	report, err := analyze(ctx, path, string(content))
	if err != nil {
		return nil, wrap(e5.Info("path: %s", path)(err))
	}
	return report, nil
}

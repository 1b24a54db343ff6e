package analyzer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pasclex/lexconfigs"
	"github.com/reusee/pasclex/lexer"
	"github.com/reusee/pasclex/modes"
)

func newScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	)
}

func TestAnalyze(t *testing.T) {
	newScope(t).Call(func(
		analyze Analyze,
	) {
		report, err := analyze(t.Context(), "test.pas", "begin\n x := 1\n end.")
		if err != nil {
			t.Fatal(err)
		}
		if report.Name != "test.pas" {
			t.Fatalf("got %v", report.Name)
		}
		if report.Count() != 9 {
			t.Fatalf("got %v", report.Tokens)
		}
		if !report.HasErrors() {
			t.Fatal("should have errors")
		}
		errs := report.Errors()
		if len(errs) != 2 {
			t.Fatalf("got %v", errs)
		}
		counts := report.Counts()
		if counts[lexer.ERROR] != 2 || counts[lexer.EOF] != 1 || counts[lexer.IDENTIFIER] != 1 {
			t.Fatalf("got %v", counts)
		}
		if report.Elapsed < 0 {
			t.Fatalf("got %v", report.Elapsed)
		}
	})
}

func TestAnalyzeEmpty(t *testing.T) {
	newScope(t).Call(func(
		analyze Analyze,
	) {
		for _, src := range []string{"", "  \n\t\r\n"} {
			_, err := analyze(t.Context(), "empty", src)
			if !errors.Is(err, ErrEmptySource) {
				t.Fatalf("got %v", err)
			}
		}
	})
}

func TestAnalyzeCanceled(t *testing.T) {
	newScope(t).Call(func(
		analyze Analyze,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		src := strings.Repeat("x := 1;\n", 200000)
		report, err := analyze(ctx, "big", src)
		if err == nil {
			// the scan may still win the race
			if report == nil || report.Count() == 0 {
				t.Fatal("no report")
			}
			return
		}
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v", err)
		}
	})
}

func writeSources(t *testing.T, sources ...string) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for i, src := range sources {
		path := filepath.Join(dir, string(rune('a'+i))+".pas")
		if err := os.WriteFile(path, []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	return paths
}

func TestAnalyzeFiles(t *testing.T) {
	paths := writeSources(t,
		"program a;",
		"x := 'oops\n;",
		"y := 2.5;",
		"{ never closed",
	)
	newScope(t).Fork(
		dscope.Provide(lexconfigs.Parallel(2)),
	).Call(func(
		analyzeFiles AnalyzeFiles,
	) {
		reports, err := analyzeFiles(t.Context(), paths)
		if err != nil {
			t.Fatal(err)
		}
		if len(reports) != len(paths) {
			t.Fatalf("got %d", len(reports))
		}
		for i, report := range reports {
			if report.Name != paths[i] {
				t.Fatalf("got %v, want %v", report.Name, paths[i])
			}
		}
		if reports[0].HasErrors() || reports[2].HasErrors() {
			t.Fatal("should not have errors")
		}
		if !reports[1].HasErrors() || !reports[3].HasErrors() {
			t.Fatal("should have errors")
		}
	})
}

func TestAnalyzeFilesError(t *testing.T) {
	paths := writeSources(t, "a;", "   ")
	paths = append(paths, filepath.Join(t.TempDir(), "missing.pas"))
	newScope(t).Call(func(
		analyzeFiles AnalyzeFiles,
	) {
		_, err := analyzeFiles(t.Context(), paths[:2])
		if err == nil {
			t.Fatal("should error")
		}
		if !errors.Is(err, ErrEmptySource) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "path: "+paths[1]) {
			t.Fatalf("got %v", err)
		}

		_, err = analyzeFiles(t.Context(), paths[2:])
		if err == nil {
			t.Fatal("should error")
		}
	})
}

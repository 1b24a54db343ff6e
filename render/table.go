package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/reusee/pasclex/analyzer"
	"github.com/reusee/pasclex/lexer"
)

// Table writes one row per token, marking ERROR rows with "!", followed by a summary and the wrapped error messages.
func Table(w io.Writer, opts Options, reports ...*analyzer.Report) error {
	for i, report := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := table(w, report, opts); err != nil {
			return err
		}
	}
	return nil
}

func table(w io.Writer, report *analyzer.Report, opts Options) error {
	if report.Name != "" {
		if _, err := fmt.Fprintf(w, "== %s\n", report.Name); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "\tLEXEME\tTYPE\tLINE")
	for _, token := range report.Tokens {
		if token.Type == lexer.EOF && !opts.ShowEOF {
			continue
		}
		mark := ""
		if token.IsError() {
			mark = "!"
		}
		lexeme := token.Lexeme
		if token.Type == lexer.STRING_LITERAL {
			lexeme = fmt.Sprintf("%q", lexeme)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", mark, lexeme, token.Type, token.Line)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	errs := report.Errors()
	if _, err := fmt.Fprintf(w, "tokens: %d, errors: %d, elapsed: %s\n",
		report.Count(), len(errs), report.Elapsed); err != nil {
		return err
	}
	if len(errs) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "\n%d lexical error(s):\n", len(errs)); err != nil {
		return err
	}
	for _, token := range errs {
		if err := Diagnostic(w, opts.WrapWidth, fmt.Sprintf("line %d: %s", token.Line, token.Lexeme)); err != nil {
			return err
		}
	}
	return nil
}

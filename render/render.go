package render

import (
	"io"

	"github.com/reusee/pasclex/analyzer"
	"github.com/reusee/pasclex/lexconfigs"
)

type Render func(w io.Writer, reports ...*analyzer.Report) error

func (Module) Render(
	format lexconfigs.OutputFormat,
	width lexconfigs.WrapWidth,
	showEOF lexconfigs.ShowEOF,
) Render {
	opts := Options{
		ShowEOF:   bool(showEOF),
		WrapWidth: int(width),
	}
	return func(w io.Writer, reports ...*analyzer.Report) error {
		f, err := ParseFormat(string(format))
		if err != nil {
			return err
		}
		switch f {
		case FormatJSON:
			return JSON(w, opts, reports...)
		case FormatYAML:
			return YAML(w, opts, reports...)
		case FormatTOML:
			return TOML(w, opts, reports...)
		}
		return Table(w, opts, reports...)
	}
}

// ReportError is the diagnostic presenter for failures outside the token list.
type ReportError func(w io.Writer, err error)

func (Module) ReportError(
	width lexconfigs.WrapWidth,
) ReportError {
	return func(w io.Writer, err error) {
		_ = Diagnostic(w, int(width), "error: "+err.Error())
	}
}

package render

import (
	"github.com/reusee/pasclex/analyzer"
	"github.com/reusee/pasclex/lexer"
)

// Row is one displayed token.
type Row struct {
	Lexeme string `json:"lexeme" yaml:"lexeme" toml:"lexeme"`
	Type   string `json:"type" yaml:"type" toml:"type"`
	Line   int    `json:"line" yaml:"line" toml:"line"`
}

type Document struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Tokens  int    `json:"tokens" yaml:"tokens" toml:"tokens"`
	Errors  int    `json:"errors" yaml:"errors" toml:"errors"`
	Elapsed string `json:"elapsed" yaml:"elapsed" toml:"elapsed"`
	Rows    []Row  `json:"rows" yaml:"rows" toml:"rows"`
}

type documents struct {
	Reports []Document `json:"reports" yaml:"reports" toml:"reports"`
}

type Options struct {
	ShowEOF   bool
	WrapWidth int
}

func rows(tokens []lexer.Token, opts Options) []Row {
	ret := make([]Row, 0, len(tokens))
	for _, token := range tokens {
		if token.Type == lexer.EOF && !opts.ShowEOF {
			continue
		}
		ret = append(ret, Row{
			Lexeme: token.Lexeme,
			Type:   token.Type.String(),
			Line:   token.Line,
		})
	}
	return ret
}

func NewDocument(report *analyzer.Report, opts Options) Document {
	return Document{
		Name:    report.Name,
		Tokens:  report.Count(),
		Errors:  len(report.Errors()),
		Elapsed: report.Elapsed.String(),
		Rows:    rows(report.Tokens, opts),
	}
}

func newDocuments(reports []*analyzer.Report, opts Options) documents {
	docs := documents{
		Reports: make([]Document, 0, len(reports)),
	}
	for _, report := range reports {
		docs.Reports = append(docs.Reports, NewDocument(report, opts))
	}
	return docs
}

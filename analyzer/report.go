package analyzer

import (
	"time"

	"github.com/reusee/pasclex/lexer"
	"github.com/samber/lo"
)

// Report is the result of one complete scan.
type Report struct {
	Name    string
	Source  string
	Tokens  []lexer.Token
	Elapsed time.Duration
}

func (r *Report) Errors() []lexer.Token {
	return lexer.Errors(r.Tokens)
}

func (r *Report) HasErrors() bool {
	return lo.ContainsBy(r.Tokens, lexer.Token.IsError)
}

// Count is the number of tokens, EOF included.
func (r *Report) Count() int {
	return len(r.Tokens)
}

func (r *Report) Counts() map[lexer.TokenType]int {
	return lo.CountValuesBy(r.Tokens, func(token lexer.Token) lexer.TokenType {
		return token.Type
	})
}

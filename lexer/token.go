package lexer

import "fmt"

// Token is a classified unit of source text.
// For STRING_LITERAL the lexeme excludes the delimiters, for ERROR it holds the diagnostic message.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q (line %d)", t.Type, t.Lexeme, t.Line)
}

func (t Token) IsError() bool {
	return t.Type == ERROR
}

func Errors(tokens []Token) (ret []Token) {
	for _, token := range tokens {
		if token.IsError() {
			ret = append(ret, token)
		}
	}
	return
}

package lexer

// exact-case, never written after init
var keywords = map[string]TokenType{
	"program": PROGRAM,
	"var":     VAR,
	"begin":   BEGIN,
	"end":     END,
	"if":      IF,
	"then":    THEN,
	"else":    ELSE,
	"while":   WHILE,
	"do":      DO,
	"integer": INTEGER,
	"real":    REAL,
}

// LookupKeyword reports the keyword type of word, case sensitive.
func LookupKeyword(word string) (TokenType, bool) {
	t, ok := keywords[word]
	return t, ok
}

package lexer

import "fmt"

type TokenType uint8

const (
	PROGRAM TokenType = iota
	VAR
	BEGIN
	END
	IF
	THEN
	ELSE
	WHILE
	DO
	INTEGER
	REAL

	IDENTIFIER
	NUMBER
	STRING_LITERAL

	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	EQUAL
	LESS_THAN
	LESS_THAN_OR_EQUAL
	GREATER_THAN
	GREATER_THAN_OR_EQUAL
	ASSIGN
	LPAREN
	RPAREN
	SEMICOLON
	COLON
	COMMA
	PERIOD

	EOF
	ERROR

	numTokenTypes
)

var tokenTypeNames = [numTokenTypes]string{
	PROGRAM:               "PROGRAM",
	VAR:                   "VAR",
	BEGIN:                 "BEGIN",
	END:                   "END",
	IF:                    "IF",
	THEN:                  "THEN",
	ELSE:                  "ELSE",
	WHILE:                 "WHILE",
	DO:                    "DO",
	INTEGER:               "INTEGER",
	REAL:                  "REAL",
	IDENTIFIER:            "IDENTIFIER",
	NUMBER:                "NUMBER",
	STRING_LITERAL:        "STRING_LITERAL",
	PLUS:                  "PLUS",
	MINUS:                 "MINUS",
	MULTIPLY:              "MULTIPLY",
	DIVIDE:                "DIVIDE",
	EQUAL:                 "EQUAL",
	LESS_THAN:             "LESS_THAN",
	LESS_THAN_OR_EQUAL:    "LESS_THAN_OR_EQUAL",
	GREATER_THAN:          "GREATER_THAN",
	GREATER_THAN_OR_EQUAL: "GREATER_THAN_OR_EQUAL",
	ASSIGN:                "ASSIGN",
	LPAREN:                "LPAREN",
	RPAREN:                "RPAREN",
	SEMICOLON:             "SEMICOLON",
	COLON:                 "COLON",
	COMMA:                 "COMMA",
	PERIOD:                "PERIOD",
	EOF:                   "EOF",
	ERROR:                 "ERROR",
}

func (t TokenType) String() string {
	if t < numTokenTypes {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", uint8(t))
}

func (t TokenType) MarshalText() ([]byte, error) {
	if t >= numTokenTypes {
		return nil, fmt.Errorf("unknown token type: %d", uint8(t))
	}
	return []byte(tokenTypeNames[t]), nil
}

func (t *TokenType) UnmarshalText(text []byte) error {
	for i, name := range tokenTypeNames {
		if name == string(text) {
			*t = TokenType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token type: %s", text)
}

// IsKeyword reports whether t is one of the reserved-word types.
func (t TokenType) IsKeyword() bool {
	return t <= REAL
}

func (t TokenType) IsOperator() bool {
	return t >= PLUS && t <= PERIOD
}

package lexer

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	msgMissingTerminator     = "missing statement terminator"
	msgUnterminatedString    = "unterminated string literal"
	msgUnterminatedComment   = "unterminated block comment"
	msgUnexpectedCharacterFn = "unexpected character %q at line %d"
)

// Error is a lexical fault found while extracting a token.
// The scan loop turns it into an ERROR token.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

type Lexer struct {
	source string
	pos    int
	line   int

	tokens []Token
	done   bool

	// last non-ERROR token and the length of tokens right after it was appended
	prev    Token
	prevEnd int
	hasPrev bool
}

func New(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
	}
}

func Tokenize(source string) []Token {
	return New(source).Scan()
}

// Scan runs the lexer to the end of the source.
// The result always ends with one EOF token, lexical faults are reported as ERROR tokens.
func (l *Lexer) Scan() []Token {
	if l.done {
		return l.tokens
	}
	l.done = true

	for {
		if err := l.skipInsignificant(); err != nil {
			l.fail(err)
			continue
		}
		if l.atEnd() {
			break
		}
		token, err := l.next()
		if err != nil {
			l.fail(err)
			continue
		}
		l.emit(token)
	}

	l.tokens = append(l.tokens, Token{
		Type: EOF,
		Line: l.line,
	})
	return l.tokens
}

func (l *Lexer) emit(token Token) {
	if l.hasPrev && l.prev.Line < token.Line && l.prev.Type != SEMICOLON {
		// placed right after the previous token so lines stay ordered when ERROR tokens came in between
		l.tokens = slices.Insert(l.tokens, l.prevEnd, Token{
			Type:   ERROR,
			Lexeme: msgMissingTerminator,
			Line:   l.prev.Line,
		})
	}
	l.tokens = append(l.tokens, token)
	l.prev = token
	l.prevEnd = len(l.tokens)
	l.hasPrev = true
}

func (l *Lexer) fail(err error) {
	var lexErr *Error
	if !errors.As(err, &lexErr) {
		lexErr = &Error{
			Line:    l.line,
			Message: err.Error(),
		}
	}
	l.tokens = append(l.tokens, Token{
		Type:   ERROR,
		Lexeme: lexErr.Message,
		Line:   lexErr.Line,
	})
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.source)
}

func (l *Lexer) peekRune() (rune, int) {
	return utf8.DecodeRuneInString(l.source[l.pos:])
}

// byteAt returns the byte at offset n from the cursor, or 0 past the end.
func (l *Lexer) byteAt(n int) byte {
	if l.pos+n >= len(l.source) {
		return 0
	}
	return l.source[l.pos+n]
}

func (l *Lexer) skipInsignificant() error {
	for !l.atEnd() {
		r, size := l.peekRune()
		switch {
		case r == '\n':
			l.line++
			l.pos += size
		case unicode.IsSpace(r):
			l.pos += size
		case r == '/' && l.byteAt(1) == '/':
			l.skipLineComment()
		case r == '/' && l.byteAt(1) == '*':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		case r == '{':
			if err := l.skipBraceComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) skipLineComment() {
	l.pos += 2
	for !l.atEnd() && l.source[l.pos] != '\n' {
		l.pos++
	}
	// counts as a consumed newline even on the last line
	l.line++
	if !l.atEnd() {
		l.pos++
	}
}

func (l *Lexer) skipBlockComment() error {
	l.pos += 2
	for !l.atEnd() {
		if l.source[l.pos] == '\n' {
			l.line++
		} else if strings.HasPrefix(l.source[l.pos:], "*/") {
			l.pos += 2
			return nil
		}
		l.pos++
	}
	return &Error{
		Line:    l.line,
		Message: msgUnterminatedComment,
	}
}

func (l *Lexer) skipBraceComment() error {
	l.pos++
	for !l.atEnd() {
		switch l.source[l.pos] {
		case '\n':
			l.line++
		case '}':
			l.pos++
			return nil
		}
		l.pos++
	}
	return &Error{
		Line:    l.line,
		Message: msgUnterminatedComment,
	}
}

func (l *Lexer) next() (Token, error) {
	r, size := l.peekRune()
	switch {
	case unicode.IsDigit(r):
		return l.number(), nil
	case unicode.IsLetter(r):
		return l.identifierOrKeyword(), nil
	case r == '\'' || r == '"':
		return l.stringLiteral(byte(r))
	}
	if token, ok := l.operator(); ok {
		return token, nil
	}
	return Token{}, l.unexpected(r, size)
}

func (l *Lexer) number() Token {
	start := l.pos
	for !l.atEnd() {
		r, size := l.peekRune()
		if unicode.IsDigit(r) {
			l.pos += size
			continue
		}
		if r == '.' {
			// a dot not followed by a digit belongs to the next token, as in `end.`
			next, _ := utf8.DecodeRuneInString(l.source[l.pos+1:])
			if unicode.IsDigit(next) {
				l.pos++
				continue
			}
		}
		break
	}
	return Token{
		Type:   NUMBER,
		Lexeme: l.source[start:l.pos],
		Line:   l.line,
	}
}

func (l *Lexer) identifierOrKeyword() Token {
	start := l.pos
	for !l.atEnd() {
		r, size := l.peekRune()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.pos += size
	}
	lexeme := l.source[start:l.pos]
	typ, ok := LookupKeyword(lexeme)
	if !ok {
		typ = IDENTIFIER
	}
	return Token{
		Type:   typ,
		Lexeme: lexeme,
		Line:   l.line,
	}
}

func (l *Lexer) stringLiteral(quote byte) (Token, error) {
	line := l.line
	l.pos++
	start := l.pos
	for !l.atEnd() {
		switch l.source[l.pos] {
		case quote:
			lexeme := l.source[start:l.pos]
			l.pos++
			return Token{
				Type:   STRING_LITERAL,
				Lexeme: lexeme,
				Line:   line,
			}, nil
		case '\n':
			// stop before the newline, whitespace skipping counts it
			return Token{}, &Error{
				Line:    line,
				Message: msgUnterminatedString,
			}
		}
		l.pos++
	}
	return Token{}, &Error{
		Line:    line,
		Message: msgUnterminatedString,
	}
}

var twoCharOperators = map[string]TokenType{
	":=": ASSIGN,
	"<=": LESS_THAN_OR_EQUAL,
	">=": GREATER_THAN_OR_EQUAL,
}

var oneCharOperators = map[byte]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': MULTIPLY,
	'/': DIVIDE,
	'=': EQUAL,
	'<': LESS_THAN,
	'>': GREATER_THAN,
	'(': LPAREN,
	')': RPAREN,
	';': SEMICOLON,
	':': COLON,
	',': COMMA,
	'.': PERIOD,
}

func (l *Lexer) operator() (Token, bool) {
	if l.pos+2 <= len(l.source) {
		lexeme := l.source[l.pos : l.pos+2]
		if typ, ok := twoCharOperators[lexeme]; ok {
			l.pos += 2
			return Token{
				Type:   typ,
				Lexeme: lexeme,
				Line:   l.line,
			}, true
		}
	}
	typ, ok := oneCharOperators[l.source[l.pos]]
	if !ok {
		return Token{}, false
	}
	lexeme := l.source[l.pos : l.pos+1]
	l.pos++
	return Token{
		Type:   typ,
		Lexeme: lexeme,
		Line:   l.line,
	}, true
}

// unexpected reports r and skips to the next whitespace so the same fault is not hit again.
func (l *Lexer) unexpected(r rune, size int) error {
	err := &Error{
		Line:    l.line,
		Message: fmt.Sprintf(msgUnexpectedCharacterFn, r, l.line),
	}
	l.pos += size
	for !l.atEnd() {
		r, size := l.peekRune()
		if unicode.IsSpace(r) {
			break
		}
		l.pos += size
	}
	return err
}

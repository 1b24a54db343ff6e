package lexer

import (
	"math/rand/v2"
	"strings"
	"testing"
)

var samplePieces = []struct {
	text string
	typ  TokenType
}{
	{"program", PROGRAM},
	{"var", VAR},
	{"begin", BEGIN},
	{"end", END},
	{"if", IF},
	{"then", THEN},
	{"else", ELSE},
	{"while", WHILE},
	{"do", DO},
	{"integer", INTEGER},
	{"real", REAL},
	{"x", IDENTIFIER},
	{"Total_2", IDENTIFIER},
	{"END", IDENTIFIER},
	{"42", NUMBER},
	{"3.14", NUMBER},
	{"'a b'", STRING_LITERAL},
	{`"it's"`, STRING_LITERAL},
	{"+", PLUS},
	{"-", MINUS},
	{"*", MULTIPLY},
	{"/", DIVIDE},
	{"=", EQUAL},
	{"<", LESS_THAN},
	{"<=", LESS_THAN_OR_EQUAL},
	{">", GREATER_THAN},
	{">=", GREATER_THAN_OR_EQUAL},
	{":=", ASSIGN},
	{"(", LPAREN},
	{")", RPAREN},
	{";", SEMICOLON},
	{":", COLON},
	{",", COMMA},
	{".", PERIOD},
}

func randomSource(r *rand.Rand, n int) (string, []TokenType) {
	var parts []string
	var types []TokenType
	for range n {
		piece := samplePieces[r.IntN(len(samplePieces))]
		parts = append(parts, piece.text)
		types = append(types, piece.typ)
	}
	return strings.Join(parts, " "), types
}

func TestNoFaultInput(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		src, types := randomSource(r, 1+r.IntN(50))
		tokens := Tokenize(src)
		if len(tokens) != len(types)+1 {
			t.Fatalf("%q: got %v", src, tokens)
		}
		for i, typ := range types {
			if tokens[i].Type != typ {
				t.Fatalf("%q: step %d: expected %v, got %v", src, i, typ, tokens[i])
			}
		}
		eofs := 0
		for _, token := range tokens {
			if token.Type == ERROR {
				t.Fatalf("%q: got %v", src, token)
			}
			if token.Type == EOF {
				eofs++
			}
		}
		if eofs != 1 || tokens[len(tokens)-1].Type != EOF {
			t.Fatalf("%q: got %v", src, tokens)
		}
	}
}

func TestLinesNonDecreasing(t *testing.T) {
	inputs := []string{
		"x\n@ y\n'abc\nz",
		"begin\n x := 1\n end.",
		"a\n\n\n{ b\n c }\n d // e\n f /* g\n h",
		"# $ %\n^ & ~\n'x\n\"y",
		"program p;\nvar a: integer;\nbegin\n a := 'x\n ; b := 2.5.;\nend.",
	}
	r := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		src, _ := randomSource(r, 30)
		src = strings.ReplaceAll(src, " ", []string{" ", "\n", "\t", " \r\n"}[r.IntN(4)])
		inputs = append(inputs, src)
	}

	for _, input := range inputs {
		tokens := Tokenize(input)
		for i := 1; i < len(tokens); i++ {
			if tokens[i].Line < tokens[i-1].Line {
				t.Fatalf("%q: line decreased at %d: %v then %v", input, i, tokens[i-1], tokens[i])
			}
		}
		if tokens[len(tokens)-1].Type != EOF {
			t.Fatalf("%q: got %v", input, tokens)
		}
	}
}

func reconstruct(tokens []Token) string {
	var parts []string
	for _, token := range tokens {
		switch token.Type {
		case ERROR, EOF:
			continue
		case STRING_LITERAL:
			quote := "'"
			if strings.Contains(token.Lexeme, "'") {
				quote = `"`
			}
			parts = append(parts, quote+token.Lexeme+quote)
		default:
			parts = append(parts, token.Lexeme)
		}
	}
	return strings.Join(parts, " ")
}

func significantTypes(tokens []Token) (ret []TokenType) {
	for _, token := range tokens {
		if token.Type != ERROR {
			ret = append(ret, token.Type)
		}
	}
	return
}

func TestRelexReconstructed(t *testing.T) {
	inputs := []string{
		"program p;\nvar a: integer;\nbegin\n a := 'x y';\n if a >= 2.5 then a := a / 3\nend.",
		"x:=1;y:=x*(2+3)<=4",
		"'abc\nok := \"fine\" { skipped } // gone",
		"12.x",
	}
	r := rand.New(rand.NewPCG(5, 6))
	for range 100 {
		src, _ := randomSource(r, 40)
		inputs = append(inputs, strings.ReplaceAll(src, " ", "\n"))
	}

	for _, input := range inputs {
		first := significantTypes(Tokenize(input))
		second := significantTypes(Tokenize(reconstruct(Tokenize(input))))
		if len(first) != len(second) {
			t.Fatalf("%q: got %v and %v", input, first, second)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("%q: step %d: %v and %v", input, i, first[i], second[i])
			}
		}
	}
}

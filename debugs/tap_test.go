package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pasclex/lexer"
	"github.com/reusee/pasclex/modes"
	"go.starlark.net/starlark"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"tokens": lexer.Tokenize("x := 1;"),
		})
	})
}

func TestGlobals(t *testing.T) {
	globals := Globals(map[string]any{
		"tokens": lexer.Tokenize("x := 1;"),
		"lex":    lexer.Tokenize,
	})
	tokens, ok := globals["tokens"].(*starlark.List)
	if !ok || tokens.Len() != 5 {
		t.Fatalf("got %v", globals["tokens"])
	}
	if _, ok := globals["lex"].(starlark.Callable); !ok {
		t.Fatalf("got %T", globals["lex"])
	}
}

func TestLexGlobal(t *testing.T) {
	globals := Globals(map[string]any{
		"lex": lexer.Tokenize,
	})
	thread := &starlark.Thread{Name: "test"}
	ret, err := starlark.Call(thread, globals["lex"], starlark.Tuple{starlark.String("if x := 1")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	list, ok := ret.(*starlark.List)
	if !ok || list.Len() != 5 {
		t.Fatalf("got %v", ret)
	}

	expected := []struct {
		typ      string
		keyword  bool
		operator bool
	}{
		{"IF", true, false},
		{"IDENTIFIER", false, false},
		{"ASSIGN", false, true},
		{"NUMBER", false, false},
		{"EOF", false, false},
	}
	for i, e := range expected {
		d := list.Index(i).(*starlark.Dict)
		typ, _, _ := d.Get(starlark.String("type"))
		if typ != starlark.String(e.typ) {
			t.Fatalf("step %d: got %v", i, typ)
		}
		keyword, _, _ := d.Get(starlark.String("keyword"))
		if keyword != starlark.Bool(e.keyword) {
			t.Fatalf("step %d: got keyword %v", i, keyword)
		}
		operator, _, _ := d.Get(starlark.String("operator"))
		if operator != starlark.Bool(e.operator) {
			t.Fatalf("step %d: got operator %v", i, operator)
		}
	}

	if _, err := starlark.Call(thread, globals["lex"], starlark.Tuple{starlark.MakeInt(1)}, nil); err == nil {
		t.Fatal("should error")
	}
}

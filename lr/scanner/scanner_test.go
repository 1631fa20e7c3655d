package scanner

import (
	"errors"
	"testing"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.scanner")
	defer teardown()
	//
	var tok lr0.Token = MakeDefaultToken(7, "->", lr0.Span{3, 5}, 2)
	if tok.TokType() != 7 || tok.Lexeme() != "->" || tok.Value() != nil {
		t.Errorf("unexpected token %v", tok)
	}
	if tok.Span().Len() != 2 {
		t.Errorf("expected token span to have length 2, is %v", tok.Span())
	}
	if tok.(DefaultToken).Line() != 2 {
		t.Errorf("expected token on line 2")
	}
	LogError(errors.New("test error"))
}

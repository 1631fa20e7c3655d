package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// S -> aA ; A -> c | d
func makeSimpleGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a").N("A").End()
	b.LHS("A").T("c").End()
	b.LHS("A").T("d").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("cannot build grammar: %v", err)
	}
	return g
}

// E -> E+T | T ; T -> T*F | F ; F -> (E) | id
func makeExprGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Expr")
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("cannot build grammar: %v", err)
	}
	return g
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeSimpleGrammar(t)
	if g.Size() != 3 {
		t.Fatalf("expected grammar to have 3 rules, has %d", g.Size())
	}
	if g.StartSymbol().Name != "S" {
		t.Errorf("expected start symbol to be S, is %v", g.StartSymbol())
	}
	if len(g.Terminals()) != 3 || len(g.NonTerminals()) != 2 {
		t.Errorf("expected 3 terminals and 2 non-terminals, have %d and %d",
			len(g.Terminals()), len(g.NonTerminals()))
	}
	if g.SymbolByName("A") == nil || g.SymbolByName("A").IsTerminal() {
		t.Errorf("expected A to be a non-terminal")
	}
	if g.SymbolByName("c") != g.Rule(1).RHS()[0] {
		t.Errorf("expected symbols to be interned")
	}
	if len(g.RulesFor(g.SymbolByName("A"))) != 2 {
		t.Errorf("expected A to have 2 rules")
	}
	if g.String() != "0: S -> aA\n1: A -> c\n2: A -> d\n" {
		t.Errorf("unexpected grammar listing:\n%s", g)
	}
	g.Dump()
}

func TestGrammarDuplicateRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	r1 := b.LHS("S").T("a").End()
	r2 := b.LHS("S").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if r1 != r2 || g.Size() != 1 {
		t.Errorf("expected duplicate rule not to be recorded twice, grammar has %d rules", g.Size())
	}
}

func TestGrammarSymbolKindMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("A").End()
	b.LHS("A").T("a").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for terminal A used as LHS")
	}
}

func TestGrammarEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a").N("B").End()
	r := b.LHS("B").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsEps() || r.Len() != 0 {
		t.Errorf("expected B-rule to be an epsilon rule")
	}
	if r.String() != "B -> #" {
		t.Errorf("expected epsilon rule to print as 'B -> #', is %q", r)
	}
	if g.Size() != 2 {
		t.Errorf("expected 2 rules, have %d", g.Size())
	}
}

func TestGrammarEachSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	names := g.EachTerminal(func(A *Symbol) interface{} {
		return A.Name
	})
	expected := []string{"+", "*", "(", ")", "id"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d terminals, have %v", len(expected), names)
	}
	for i, n := range expected {
		if names[i] != n {
			t.Errorf("expected terminal #%d to be %q, is %v", i, n, names[i])
		}
	}
	cnt := len(g.EachSymbol(func(A *Symbol) interface{} { return A }))
	if cnt != g.SymbolCount() || cnt != 8 {
		t.Errorf("expected 8 symbols, have %d", cnt)
	}
	if g.Rule(0).String() != "E -> E + T" {
		t.Errorf("expected spaced rendering for multi-letter grammars, have %q", g.Rule(0))
	}
}

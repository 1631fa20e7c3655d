package lr

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/npillmayer/lr0/lr/iteratable"
)

// EpsilonName is the name under which an empty right-hand side is printed.
const EpsilonName = "#"

// --- Symbols ---------------------------------------------------------------

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Symbols are interned per grammar: there is exactly one *Symbol per name, thus
// symbols of the same grammar may be compared by identity.
type Symbol struct {
	Name     string
	ID       int // serial number within the symbols of a grammar
	terminal bool
}

// IsTerminal is a predicate.
func (A *Symbol) IsTerminal() bool {
	return A.terminal
}

func (A *Symbol) String() string {
	if A == nil {
		return "<nil>"
	}
	return A.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a production of a grammar, LHS ➞ RHS.
// Rules are immutable once they are part of a grammar.
type Rule struct {
	Serial int     // ordinal number of the rule, in the order it has been recorded
	LHS    *Symbol // left hand side non-terminal
	rhs    []*Symbol
}

// RHS returns a copy of the right-hand side of a rule.
// For an epsilon-rule the RHS is empty.
func (r *Rule) RHS() []*Symbol {
	rhs := make([]*Symbol, len(r.rhs))
	copy(rhs, r.rhs)
	return rhs
}

// Len returns the number of symbols on the right-hand side of r.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEps is a predicate: is r an epsilon-rule?
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

// sep returns the separator used for printing RHS symbols. Grammars of
// single-letter symbols are printed compactly, as they are written.
func (r *Rule) sep() string {
	if len(r.LHS.Name) > 1 {
		return " "
	}
	for _, A := range r.rhs {
		if len(A.Name) > 1 {
			return " "
		}
	}
	return ""
}

func (r *Rule) String() string {
	if r.IsEps() {
		return fmt.Sprintf("%s -> %s", r.LHS, EpsilonName)
	}
	return fmt.Sprintf("%s -> %s", r.LHS, symbolString(r.rhs, r.sep()))
}

func (r *Rule) sameRHS(rhs []*Symbol) bool {
	if len(r.rhs) != len(rhs) {
		return false
	}
	for i, A := range r.rhs {
		if A != rhs[i] {
			return false
		}
	}
	return true
}

func symbolString(syms []*Symbol, sep string) string {
	var b bytes.Buffer
	for i, A := range syms {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(A.Name)
	}
	return b.String()
}

// --- Grammars --------------------------------------------------------------

// Grammar is a context-free grammar: an ordered list of rules, together with
// the terminals and non-terminals occuring in them. The first rule's LHS is
// the start symbol. Create grammars with a GrammarBuilder.
type Grammar struct {
	Name         string
	rules        []*Rule
	terminals    []*Symbol // in order of first appearance
	nonterminals []*Symbol // in order of first appearance
	symbols      []*Symbol // all symbols, index = Symbol.ID
	byName       map[string]*Symbol
	byLHS        map[*Symbol][]*Rule
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:   name,
		byName: make(map[string]*Symbol),
		byLHS:  make(map[*Symbol][]*Rule),
	}
}

// Size returns the number of rules of g.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule no. n, or nil if n is out of range.
func (g *Grammar) Rule(n int) *Rule {
	if n < 0 || n >= len(g.rules) {
		return nil
	}
	return g.rules[n]
}

// Rules returns all rules in the order they have been recorded.
func (g *Grammar) Rules() []*Rule {
	rules := make([]*Rule, len(g.rules))
	copy(rules, g.rules)
	return rules
}

// StartSymbol returns the LHS of the first rule, or nil for an empty grammar.
func (g *Grammar) StartSymbol() *Symbol {
	if len(g.rules) == 0 {
		return nil
	}
	return g.rules[0].LHS
}

// SymbolByName returns the symbol for a name, or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.byName[name]
}

// SymbolCount returns the number of distinct symbols of g.
func (g *Grammar) SymbolCount() int {
	return len(g.symbols)
}

// Terminals returns the terminals of g in order of their first appearance.
func (g *Grammar) Terminals() []*Symbol {
	return append([]*Symbol(nil), g.terminals...)
}

// NonTerminals returns the non-terminals of g in order of their first appearance.
func (g *Grammar) NonTerminals() []*Symbol {
	return append([]*Symbol(nil), g.nonterminals...)
}

// RulesFor returns all rules with LHS A, in grammar order.
func (g *Grammar) RulesFor(A *Symbol) []*Rule {
	return append([]*Rule(nil), g.byLHS[A]...)
}

// FindNonTermRules returns a fresh set of items A ➞ •α, one for every rule
// with LHS A.
func (g *Grammar) FindNonTermRules(A *Symbol) *iteratable.Set {
	R := newItemSet()
	for _, r := range g.byLHS[A] {
		item, _ := StartItem(r)
		R.Add(item)
	}
	return R
}

// EachSymbol iterates over all symbols of g, in order of their IDs.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) []interface{} {
	return eachOf(g.symbols, mapper)
}

// EachNonTerminal iterates over all non-terminals of g.
func (g *Grammar) EachNonTerminal(mapper func(A *Symbol) interface{}) []interface{} {
	return eachOf(g.nonterminals, mapper)
}

// EachTerminal iterates over all terminals of g.
func (g *Grammar) EachTerminal(mapper func(A *Symbol) interface{}) []interface{} {
	return eachOf(g.terminals, mapper)
}

func eachOf(syms []*Symbol, mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range syms {
		if v := mapper(A); v != nil {
			r = append(r, v)
		}
	}
	return r
}

// Dump is a debugging helper: it traces the rules of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ---------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------")
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	for _, r := range g.rules {
		b.WriteString(fmt.Sprintf("%d: %s\n", r.Serial, r))
	}
	return b.String()
}

func (g *Grammar) symbol(name string, terminal bool) (*Symbol, error) {
	if name == "" {
		return nil, errors.New("empty symbol name")
	}
	if A, ok := g.byName[name]; ok {
		if A.terminal != terminal {
			if terminal {
				return nil, fmt.Errorf("non-terminal %q used as terminal", name)
			}
			return nil, fmt.Errorf("terminal %q used as non-terminal", name)
		}
		return A, nil
	}
	A := &Symbol{Name: name, ID: len(g.symbols), terminal: terminal}
	g.symbols = append(g.symbols, A)
	g.byName[name] = A
	if terminal {
		g.terminals = append(g.terminals, A)
	} else {
		g.nonterminals = append(g.nonterminals, A)
	}
	return A, nil
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a helper for constructing grammars. Use it like this:
//
//    b := lr.NewGrammarBuilder("G")
//    b.LHS("S").T("a").N("A").End()   // S ➞ a A
//    b.LHS("A").T("c").End()          // A ➞ c
//    b.LHS("A").Epsilon()             // A ➞ ε
//    g, err := b.Grammar()
//
// Rules are recorded in the order of calls to End() or Epsilon(). A rule
// which has been recorded before is not recorded a second time.
type GrammarBuilder struct {
	g   *Grammar
	err error // first error encountered
}

// RuleBuilder is a helper type for building the RHS of a rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs []*Symbol
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar(name)}
}

func (gb *GrammarBuilder) fail(err error) {
	if gb.err == nil {
		gb.err = err
	}
}

// LHS starts a new rule with non-terminal name as its left hand side.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	A, err := gb.g.symbol(name, false)
	if err != nil {
		gb.fail(fmt.Errorf("LHS: %w", err))
	}
	return &RuleBuilder{gb: gb, lhs: A}
}

// N appends a non-terminal to the RHS of a rule.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	A, err := rb.gb.g.symbol(name, false)
	if err != nil {
		rb.gb.fail(fmt.Errorf("rule for %v: %w", rb.lhs, err))
		return rb
	}
	rb.rhs = append(rb.rhs, A)
	return rb
}

// T appends a terminal to the RHS of a rule.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	A, err := rb.gb.g.symbol(name, true)
	if err != nil {
		rb.gb.fail(fmt.Errorf("rule for %v: %w", rb.lhs, err))
		return rb
	}
	rb.rhs = append(rb.rhs, A)
	return rb
}

// Epsilon completes a rule with an empty RHS.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}

// End completes a rule and records it with the grammar. If an identical rule
// has been recorded before, this rule is returned instead.
// Returns nil if the rule is invalid.
func (rb *RuleBuilder) End() *Rule {
	if rb.lhs == nil {
		rb.gb.fail(errors.New("rule without left hand side"))
		return nil
	}
	g := rb.gb.g
	for _, r := range g.byLHS[rb.lhs] {
		if r.sameRHS(rb.rhs) {
			tracer().Infof("production %v already present, not recorded twice", r)
			return r
		}
	}
	r := &Rule{
		Serial: len(g.rules),
		LHS:    rb.lhs,
		rhs:    rb.rhs,
	}
	g.rules = append(g.rules, r)
	g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
	return r
}

// Grammar returns the grammar built so far, or the first error encountered
// during construction. Non-terminals without any rule are reported to the
// trace, but are no error.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	for _, A := range gb.g.nonterminals {
		if len(gb.g.byLHS[A]) == 0 {
			tracer().Infof("grammar %s: non-terminal %v has no rules", gb.g.Name, A)
		}
	}
	return gb.g, nil
}

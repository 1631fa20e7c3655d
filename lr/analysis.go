package lr

import (
	"github.com/npillmayer/lr0/lr/iteratable"
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// LRAnalysis is the grammar analysis needed to construct LR(0) item sets.
// It holds, for every non-terminal A, the items A ➞ •α of A's rules.
// An LRAnalysis is read-only after creation and may be shared.
type LRAnalysis struct {
	g           *Grammar
	derivations map[*Symbol]*iteratable.Set // non-terminal A => { A ➞ •α }
}

// Analysis creates an analysis object for a grammar. Returns nil for a nil grammar.
func Analysis(g *Grammar) *LRAnalysis {
	if g == nil {
		return nil
	}
	ga := &LRAnalysis{
		g:           g,
		derivations: make(map[*Symbol]*iteratable.Set, len(g.nonterminals)),
	}
	for _, A := range g.nonterminals {
		ga.derivations[A] = g.FindNonTermRules(A)
	}
	return ga
}

// Grammar returns the grammar under analysis.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// startItems returns a fresh set of items A ➞ •α for non-terminal A.
func (ga *LRAnalysis) startItems(A *Symbol) *iteratable.Set {
	if R, ok := ga.derivations[A]; ok {
		return R.Copy()
	}
	return newItemSet()
}

// Closure returns the smallest superset of S which contains B ➞ •γ for every
// rule B ➞ γ, whenever an item A ➞ α•Bβ is contained. S is not modified.
func (ga *LRAnalysis) Closure(S *iteratable.Set) *iteratable.Set {
	return ga.closureSet(S)
}

// https://www.cs.bgu.ac.il/~comp151/wiki.files/ps6.html#sec-2-7-3
func (ga *LRAnalysis) closureSet(S *iteratable.Set) *iteratable.Set {
	C := S.Copy() // add start items to closure
	C.IterateOnce()
	for C.Next() {
		item := asItem(C.Item())
		A := item.PeekSymbol()           // get symbol A after dot
		if A != nil && !A.IsTerminal() { // A is non-terminal
			R := ga.startItems(A)
			if New := R.Difference(C); !New.Empty() {
				tracer().Debugf("closure: %v adds %d item(s) for %v", item, New.Size(), A)
				C.Union(New)
			}
		}
	}
	return C
}

// Goto returns the closure of the kernel { A ➞ αX•β | A ➞ α•Xβ ∈ S }.
// If no item of S has X after its dot, the result is empty.
func (ga *LRAnalysis) Goto(S *iteratable.Set, X *Symbol) *iteratable.Set {
	gclosure, _ := ga.gotoSetClosure(S, X)
	return gclosure
}

// Kernel returns the advanced items { A ➞ αX•β | A ➞ α•Xβ ∈ S }, without
// closure.
func (ga *LRAnalysis) Kernel(S *iteratable.Set, X *Symbol) *iteratable.Set {
	kernel, _ := ga.gotoSet(S, X)
	return kernel
}

func (ga *LRAnalysis) gotoSet(closure *iteratable.Set, A *Symbol) (*iteratable.Set, *Symbol) {
	// for every item in closure C
	// if item in C:  N -> ... *A ...
	//     advance N -> ... A * ...
	gotoset := newItemSet()
	if A == nil {
		return gotoset, A
	}
	for _, x := range closure.Values() {
		i := asItem(x)
		if i.PeekSymbol() == A {
			ii := i.Advance()
			tracer().Debugf("goto(%s) -%s-> %s", i, A, ii)
			gotoset.Add(ii)
		}
	}
	return gotoset, A
}

func (ga *LRAnalysis) gotoSetClosure(i *iteratable.Set, A *Symbol) (*iteratable.Set, *Symbol) {
	gotoset, _ := ga.gotoSet(i, A)
	if gotoset.Empty() {
		return gotoset, A
	}
	gclosure := ga.closureSet(gotoset)
	tracer().Debugf("goto(%s) --%s--> %s", itemSetString(i), A, itemSetString(gclosure))
	return gclosure, A
}

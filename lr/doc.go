/*
Package lr implements grammars, LR(0) items and the construction of the
characteristic finite state machine (CFSM) of a grammar, i.e. the canonical
collection of LR(0) item sets and the transitions between them.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may
contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").T("a").N("A").End()  // S  ->  a A
    b.LHS("A").T("c").End()         // A  ->  c
    b.LHS("A").T("d").End()         // A  ->  d
    g, err := b.Grammar()

This results in the following trivial grammar:

   fmt.Print(g)

   0: S -> aA
   1: A -> c
   2: A -> d

Grammars in a compact textual form may be read with package grammarfile.

Closure and Goto

An LRAnalysis object for a grammar provides the two basic operations on sets
of LR(0) items: Closure and Goto. Both are pure functions of the item set and
the grammar.

    ga := lr.Analysis(g)
    item, _ := lr.StartItem(g.Rule(0))
    S0 := ga.Closure(lr.NewItemSet(item))   // { S -> .aA }
    S1 := ga.Goto(S0, g.SymbolByName("a"))  // { S -> a.A, A -> .c, A -> .d }

CFSM Construction

A CFSM builder discovers all item sets reachable from the closure of the
first rule's start item. Item sets are deduplicated by set equality and
transitions are recorded in the order they are discovered.

    cfsm, err := lr.NewCFSMBuilder(ga).Build()
    if err != nil { ... }
    cfsm.WriteListing(os.Stdout)
    cfsm.CFSM2GraphViz("cfsm.dot")

By default the start state is seeded from the first rule only. With option
SeedAllStartRules(true) every rule of the start symbol contributes to the
start state, as it would for an augmented grammar S' ➞ S.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lr0.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.lr")
}

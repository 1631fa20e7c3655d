/*
Package lr0 is a toolbox for constructing LR(0) automata.

Given a context-free grammar, lr0 builds the characteristic finite state
machine (CFSM) of the grammar, i.e. the canonical collection of LR(0) item
sets together with the transitions between them. The CFSM recognizes the
viable prefixes of the grammar and is the backbone of every bottom-up
parser generator. Package structure is as follows:

■ lr: Package lr implements grammars, LR(0) items, closure and goto
operations and the construction of the CFSM, together with exporters for
listings and Graphviz.

■ lr/grammarfile: Package grammarfile reads grammars in a compact textual
format (one rule per line, single-letter nonterminals).

■ lr/scanner: Package scanner defines the tokenizer interface used by readers
of package lr; sub-package lexmach adapts lexmachine to it.

■ cmd/lr0: A command line tool to build, print, export and explore LR(0)
automata.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr0

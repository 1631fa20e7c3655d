/*
Command lr0 builds the LR(0) automaton (CFSM) for a grammar file and prints
it, exports it to Graphviz or lets users explore it interactively.

    lr0 build expr.g                 # print grammar, states and transitions
    lr0 build expr.g --dot expr.dot  # additionally write a Graphviz file
    lr0 build expr.g --listing       # plain text listing
    lr0 explore expr.g               # interactive mode

Global flags are --trace [Debug|Info|Error] and --panic-on-invariant, which
makes automaton construction panic if its transition function is not unique.

Grammar files contain one line per non-terminal, e.g.

    E -> E+T | T
    T -> T*F | F
    F -> (E) | i


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lr0.cli'
func tracer() tracing.Trace {
	return tracing.Select("lr0.cli")
}

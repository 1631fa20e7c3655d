package lr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteListing writes a human readable listing of all states and transitions
// of c:
//
//    === States ===
//    State 0:
//      S -> .aA
//    State 1:
//      S -> a.A
//      A -> .c
//      A -> .d
//    ...
//    === Transitions ===
//      0 --a--> 1
//      1 --A--> 2
//
// States are listed in ID order and items in the order they have been added.
// Transitions are listed in the order they have been discovered.
func (c *CFSM) WriteListing(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "=== States ===")
	for _, s := range c.States() {
		fmt.Fprintf(bw, "State %d:\n", s.ID)
		for _, i := range s.Items() {
			fmt.Fprintf(bw, "  %s\n", i)
		}
	}
	fmt.Fprintln(bw, "=== Transitions ===")
	for _, e := range c.Transitions() {
		fmt.Fprintf(bw, "  %s\n", e)
	}
	return bw.Flush()
}

// Listing returns the output of WriteListing as a string.
func (c *CFSM) Listing() string {
	var b strings.Builder
	_ = c.WriteListing(&b)
	return b.String()
}

// WriteGraphViz writes c in the Graphviz Dot format.
func (c *CFSM) WriteGraphViz(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		fmt.Fprintf(bw, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.Items()))
	}
	for _, e := range c.Transitions() {
		fmt.Fprintf(bw, "s%03d -> s%03d [label=\"%s\"]\n", e.From, e.To, escapeGraphviz(e.Label.Name))
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// CFSM2GraphViz exports a CFSM to the Graphviz Dot format, given a filename.
func (c *CFSM) CFSM2GraphViz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("file open error: %w", err)
	}
	if err = c.WriteGraphViz(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func nodecolor(state *CFSMState) string {
	if state.IsAccepting() {
		return "lightgray"
	}
	return "white"
}

// forGraphviz renders items as record label lines.
func forGraphviz(items []Item) string {
	var b strings.Builder
	for _, i := range items {
		b.WriteString(escapeGraphviz(i.String()))
		b.WriteString("\\l")
	}
	return b.String()
}

var graphvizEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`{`, `\{`,
	`}`, `\}`,
	`|`, `\|`,
	`<`, `\<`,
	`>`, `\>`,
)

func escapeGraphviz(s string) string {
	return graphvizEscaper.Replace(s)
}

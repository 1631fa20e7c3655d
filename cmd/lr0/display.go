package main

import (
	"strconv"
	"strings"

	"github.com/npillmayer/lr0/lr"
	"github.com/pterm/pterm"
)

// printGrammar prints the symbols and rules of a grammar.
func printGrammar(g *lr.Grammar) {
	pterm.DefaultSection.Println("Grammar " + g.Name)
	pterm.Info.Println("Non-terminals: " + symbolNames(g.NonTerminals()))
	pterm.Info.Println("Terminals:     " + symbolNames(g.Terminals()))
	pterm.DefaultTable.WithHasHeader().WithData(ruleData(g)).Render()
}

// printCFSM prints the states of an automaton as a tree and its transitions
// as a table.
func printCFSM(cfsm *lr.CFSM) {
	pterm.DefaultSection.Println("States")
	root := pterm.NewTreeFromLeveledList(stateList(cfsm.States()))
	pterm.DefaultTree.WithRoot(root).Render()
	pterm.DefaultSection.Println("Transitions")
	pterm.DefaultTable.WithHasHeader().WithData(transitionData(cfsm.Transitions())).Render()
	pterm.Info.Println(summary(cfsm))
}

func symbolNames(syms []*lr.Symbol) string {
	names := make([]string, len(syms))
	for i, A := range syms {
		names[i] = A.Name
	}
	return strings.Join(names, " ")
}

func ruleData(g *lr.Grammar) pterm.TableData {
	td := pterm.TableData{{"#", "Rule"}}
	for _, r := range g.Rules() {
		td = append(td, []string{strconv.Itoa(r.Serial), r.String()})
	}
	return td
}

func stateList(states []*lr.CFSMState) pterm.LeveledList {
	ll := pterm.LeveledList{}
	for _, s := range states {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: stateLabel(s)})
		for _, i := range s.Items() {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: i.String()})
		}
	}
	return ll
}

func stateLabel(s *lr.CFSMState) string {
	label := "State " + strconv.Itoa(int(s.ID))
	if s.IsAccepting() {
		label += " (accept)"
	}
	return label
}

func transitionData(edges []lr.Transition) pterm.TableData {
	td := pterm.TableData{{"From", "Symbol", "To"}}
	for _, e := range edges {
		td = append(td, []string{
			strconv.Itoa(int(e.From)),
			e.Label.Name,
			strconv.Itoa(int(e.To)),
		})
	}
	return td
}

func summary(cfsm *lr.CFSM) string {
	return strconv.Itoa(cfsm.StateCount()) + " states, " +
		strconv.Itoa(len(cfsm.Transitions())) + " transitions"
}

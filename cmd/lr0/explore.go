package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lr0/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var exploreFlags = struct {
	allStartRules *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "explore <grammar file path>",
		Short:   "Explore the LR(0) automaton of a grammar interactively",
		Example: `  lr0 explore expr.g`,
		Args:    cobra.ExactArgs(1),
		RunE:    runExplore,
	}
	exploreFlags.allStartRules = cmd.Flags().Bool("all-start-rules", false, "seed the start state with all rules of the start symbol")
	rootCmd.AddCommand(cmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfsm, err := loadCFSM(args[0], lr.SeedAllStartRules(*exploreFlags.allStartRules))
	if err != nil {
		return err
	}
	repl, err := readline.New("lr0> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	x := &explorer{cfsm: cfsm, out: cmd.OutOrStdout()}
	pterm.Info.Println(summary(cfsm))
	pterm.Info.Println("Quit with <ctrl>D or 'quit', type 'help' for a list of commands")
	x.REPL(repl)
	return nil
}

// explorer interprets commands for inspecting a CFSM.
type explorer struct {
	cfsm *lr.CFSM
	out  io.Writer
}

// REPL reads and evaluates commands until EOF or 'quit'.
func (x *explorer) REPL(repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := x.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(x.out, "Good bye!")
}

const exploreHelp = `Commands:
  states       list all states
  state N      list the items of state N
  edges N      list the transitions leaving state N
  goto N X     show the destination of state N on symbol X
  dot FILE     write the automaton to a Graphviz file
  help         show this text
  quit         leave
`

var errUsage = errors.New("wrong number of arguments, type 'help' for usage")

// Eval evaluates a single command line. It returns true if the user wants to quit.
func (x *explorer) Eval(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	tracer().Debugf("command %q with arguments %v", args[0], args[1:])
	switch args[0] {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(x.out, exploreHelp)
	case "states":
		if len(args) != 1 {
			return false, errUsage
		}
		for _, s := range x.cfsm.States() {
			fmt.Fprintf(x.out, "%s: %d items, %d kernel\n", stateLabel(s), s.Size(), len(s.Kernel()))
		}
	case "state":
		s, err := x.stateArg(args, 2)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(x.out, "%s:\n", stateLabel(s))
		for _, i := range s.Items() {
			fmt.Fprintf(x.out, "  %s\n", i)
		}
	case "edges":
		s, err := x.stateArg(args, 2)
		if err != nil {
			return false, err
		}
		for _, e := range x.cfsm.TransitionsFrom(s.ID) {
			fmt.Fprintf(x.out, "  %s\n", e)
		}
	case "goto":
		s, err := x.stateArg(args, 3)
		if err != nil {
			return false, err
		}
		A := x.cfsm.Grammar().SymbolByName(args[2])
		if A == nil {
			return false, fmt.Errorf("unknown symbol %q", args[2])
		}
		to, ok := x.cfsm.Goto(s.ID, A)
		if !ok {
			fmt.Fprintf(x.out, "no transition from state %d on %s\n", s.ID, A)
			break
		}
		fmt.Fprintf(x.out, "  %d --%s--> %d\n", s.ID, A, to)
	case "dot":
		if len(args) != 2 {
			return false, errUsage
		}
		if err := x.cfsm.CFSM2GraphViz(args[1]); err != nil {
			return false, err
		}
		fmt.Fprintf(x.out, "automaton written to %s\n", args[1])
	default:
		return false, fmt.Errorf("unknown command %q, type 'help' for a list of commands", args[0])
	}
	return false, nil
}

func (x *explorer) stateArg(args []string, argc int) (*lr.CFSMState, error) {
	if len(args) != argc {
		return nil, errUsage
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("not a state number: %q", args[1])
	}
	s := x.cfsm.State(uint(n))
	if s == nil {
		return nil, fmt.Errorf("no state %d, automaton has %d states", n, x.cfsm.StateCount())
	}
	return s, nil
}

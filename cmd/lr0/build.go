package main

import (
	"github.com/npillmayer/lr0/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var buildFlags = struct {
	dot           *string
	allStartRules *bool
	maxStates     *int
	listing       *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "build <grammar file path>",
		Short:   "Build and print the LR(0) automaton of a grammar",
		Example: `  lr0 build expr.g --dot expr.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runBuild,
	}
	buildFlags.dot = cmd.Flags().String("dot", "", "write the automaton to a Graphviz file")
	buildFlags.allStartRules = cmd.Flags().Bool("all-start-rules", false, "seed the start state with all rules of the start symbol")
	buildFlags.maxStates = cmd.Flags().Int("max-states", 0, "maximum number of states (0 = unlimited)")
	buildFlags.listing = cmd.Flags().BoolP("listing", "l", false, "print a plain text listing")
	rootCmd.AddCommand(cmd)
}

func buildOptions() []lr.BuildOption {
	return []lr.BuildOption{
		lr.SeedAllStartRules(*buildFlags.allStartRules),
		lr.MaxStates(*buildFlags.maxStates),
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfsm, err := loadCFSM(args[0], buildOptions()...)
	if err != nil {
		return err
	}
	if *buildFlags.listing {
		if err = cfsm.WriteListing(cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		printGrammar(cfsm.Grammar())
		printCFSM(cfsm)
	}
	if *buildFlags.dot != "" {
		if err = cfsm.CFSM2GraphViz(*buildFlags.dot); err != nil {
			return err
		}
		pterm.Info.Println("Automaton written to " + *buildFlags.dot)
	}
	return nil
}

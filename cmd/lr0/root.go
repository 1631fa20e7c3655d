package main

import (
	"fmt"

	"github.com/npillmayer/lr0/lr"
	"github.com/npillmayer/lr0/lr/grammarfile"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace            *string
	panicOnInvariant *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "lr0",
	Short: "Construct the LR(0) automaton of a grammar",
	Long: `lr0 reads a context-free grammar and constructs its characteristic
finite state machine, i.e. the canonical collection of LR(0) item sets
together with the transitions between them.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "Trace level [Debug|Info|Error]")
	rootFlags.panicOnInvariant = rootCmd.PersistentFlags().Bool("panic-on-invariant", false,
		"panic if the automaton's transition function is not unique")
}

// Execute runs the root command.
func Execute() error {
	initDisplay()
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

// configuration collects the settings given on the command line.
func configuration() schuko.Configuration {
	return testconfig.Conf{
		"trace":                *rootFlags.trace,
		lr.PanicOnInvariantKey: *rootFlags.panicOnInvariant,
	}
}

// setup initializes global configuration and tracing. Every package of
// lr0 traces to the same Go logger.
func setup(cmd *cobra.Command, args []string) error {
	gconf.Initialize(configuration())
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(gconf.GetString("trace")))
	tracer().Infof("Trace level is %s", gconf.GetString("trace"))
	if gconf.GetBool(lr.PanicOnInvariantKey) {
		tracer().Infof("CFSM invariant violations will panic")
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadCFSM reads a grammar file and constructs the CFSM for it.
func loadCFSM(path string, opts ...lr.BuildOption) (*lr.CFSM, error) {
	g, err := grammarfile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g.Dump() // only visible in debug mode
	cfsm, err := lr.BuildCFSM(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot build automaton for %s: %w", path, err)
	}
	return cfsm, nil
}

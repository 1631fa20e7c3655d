package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/lr0/lr"
	"github.com/npillmayer/lr0/lr/grammarfile"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const exprGrammar = `E -> E+T | T
T -> T*F | F
F -> (E) | i
`

func makeCFSM(t *testing.T, input string) *lr.CFSM {
	g, err := grammarfile.Parse("G", input)
	if err != nil {
		t.Fatal(err)
	}
	cfsm, err := lr.BuildCFSM(g)
	if err != nil {
		t.Fatal(err)
	}
	return cfsm
}

func TestDisplayData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.cli")
	defer teardown()
	//
	assert := assert.New(t)
	cfsm := makeCFSM(t, "S -> aA\nA -> c | d")
	td := transitionData(cfsm.Transitions())
	assert.Len(td, 5)
	assert.Equal([]string{"From", "Symbol", "To"}, td[0])
	assert.Equal([]string{"1", "A", "2"}, td[2])
	ll := stateList(cfsm.States())
	assert.Len(ll, 5+7)
	assert.Equal("State 0", ll[0].Text)
	assert.Equal(1, ll[1].Level)
	assert.Equal("S -> .aA", ll[1].Text)
	assert.Equal("State 2 (accept)", stateLabel(cfsm.State(2)))
	rd := ruleData(cfsm.Grammar())
	assert.Equal([]string{"2", "A -> d"}, rd[3])
	assert.Equal("S A", symbolNames(cfsm.Grammar().NonTerminals()))
	assert.Equal("5 states, 4 transitions", summary(cfsm))
}

func TestExplorer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.cli")
	defer teardown()
	//
	assert := assert.New(t)
	var out bytes.Buffer
	x := &explorer{cfsm: makeCFSM(t, exprGrammar), out: &out}
	testCases := []struct {
		line   string
		expect string
	}{
		{"states", "State 11: 1 items, 1 kernel"},
		{"state 1", "State 1:\n  E -> E.+T\n"},
		{"edges 8", "  8 --)--> 11\n  8 --+--> 6\n"},
		{"goto 0 (", "  0 --(--> 4\n"},
		{"goto 3 i", "no transition from state 3 on i"},
		{"help", "goto N X"},
	}
	for _, tc := range testCases {
		out.Reset()
		quit, err := x.Eval(tc.line)
		assert.NoError(err, tc.line)
		assert.False(quit)
		assert.Contains(out.String(), tc.expect, tc.line)
	}
	for _, line := range []string{"state", "state x", "state 99", "goto 0 Z", "edges", "frobnicate"} {
		_, err := x.Eval(line)
		assert.Error(err, line)
	}
	quit, err := x.Eval("quit")
	assert.NoError(err)
	assert.True(quit)
}

func TestExplorerDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.cli")
	defer teardown()
	//
	assert := assert.New(t)
	dir, err := ioutil.TempDir("", "lr0")
	if !assert.NoError(err) {
		return
	}
	defer os.RemoveAll(dir)
	var out bytes.Buffer
	x := &explorer{cfsm: makeCFSM(t, exprGrammar), out: &out}
	filename := filepath.Join(dir, "expr.dot")
	_, err = x.Eval("dot " + filename)
	assert.NoError(err)
	_, err = os.Stat(filename)
	assert.NoError(err)
}

func TestBuildCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.cli")
	defer teardown()
	//
	assert := assert.New(t)
	dir, err := ioutil.TempDir("", "lr0")
	if !assert.NoError(err) {
		return
	}
	defer os.RemoveAll(dir)
	gfile := filepath.Join(dir, "simple.g")
	dotfile := filepath.Join(dir, "simple.dot")
	if !assert.NoError(ioutil.WriteFile(gfile, []byte("S -> aA\nA -> c | d\n"), 0644)) {
		return
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"build", gfile, "--listing", "--dot", dotfile})
	if !assert.NoError(rootCmd.Execute()) {
		return
	}
	assert.True(strings.HasPrefix(out.String(), "=== States ===\nState 0:\n  S -> .aA\n"))
	assert.Contains(out.String(), "  1 --d--> 4\n")
	dot, err := ioutil.ReadFile(dotfile)
	if assert.NoError(err) {
		assert.Contains(string(dot), "s000 -> s001")
	}
	rootCmd.SetArgs([]string{"build", filepath.Join(dir, "missing.g")})
	assert.Error(rootCmd.Execute())
}

func TestRootFlagsConfigureLibrary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.cli")
	defer teardown()
	//
	assert := assert.New(t)
	dir, err := ioutil.TempDir("", "lr0")
	if !assert.NoError(err) {
		return
	}
	defer os.RemoveAll(dir)
	gfile := filepath.Join(dir, "simple.g")
	if !assert.NoError(ioutil.WriteFile(gfile, []byte("S -> aA\nA -> c | d\n"), 0644)) {
		return
	}
	defer func() {
		*rootFlags.panicOnInvariant = false
		*rootFlags.trace = "Error"
		gconf.Initialize(testconfig.Conf{})
	}()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--panic-on-invariant", "--trace", "Info", "build", gfile, "--listing"})
	if !assert.NoError(rootCmd.Execute()) {
		return
	}
	assert.True(gconf.GetBool(lr.PanicOnInvariantKey))
	assert.Equal("Info", gconf.GetString("trace"))
	_, isGoLogger := tracing.Select("lr0.lr").(*gologadapter.Tracer)
	assert.True(isGoLogger, "expected packages to trace to the Go logger")
	assert.Equal(tracing.LevelInfo, tracer().GetTraceLevel())
	rootCmd.SetArgs([]string{"--panic-on-invariant=false", "build", gfile, "--listing"})
	if assert.NoError(rootCmd.Execute()) {
		assert.False(gconf.GetBool(lr.PanicOnInvariantKey))
	}
}

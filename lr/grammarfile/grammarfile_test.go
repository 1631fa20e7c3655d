package grammarfile

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/lr0/lr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.grammar")
	defer teardown()
	//
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "single rule",
			input:  "S -> a",
			expect: "0: S -> a\n",
		},
		{
			name:   "alternatives",
			input:  "S -> aA\nA -> c | d\n",
			expect: "0: S -> aA\n1: A -> c\n2: A -> d\n",
		},
		{
			name:   "whitespace and blank lines",
			input:  "\n  S->a A \t\r\n\n\nA ->\tc|d\n\n",
			expect: "0: S -> aA\n1: A -> c\n2: A -> d\n",
		},
		{
			name:   "epsilon",
			input:  "S -> aB\nB -> # | b",
			expect: "0: S -> aB\n1: B -> #\n2: B -> b\n",
		},
		{
			name:   "arrow on right-hand side",
			input:  "S -> (a->b)",
			expect: "0: S -> (a->b)\n",
		},
		{
			name:   "duplicate alternative",
			input:  "S -> a | a\nS -> a",
			expect: "0: S -> a\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			g, err := Parse("G", tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, g.String())
			assert.Equal("S", g.StartSymbol().Name)
		})
	}
}

func Test_Parse_Symbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.grammar")
	defer teardown()
	//
	assert := assert.New(t)
	g, err := Parse("G", "E -> E+T | T\nT -> T*F | F\nF -> (E) | i")
	if !assert.NoError(err) {
		return
	}
	assert.Equal(6, g.Size())
	assert.Len(g.NonTerminals(), 3)
	assert.Len(g.Terminals(), 5)
	assert.True(g.SymbolByName("+").IsTerminal())
	assert.False(g.SymbolByName("F").IsTerminal())
	cfsm, err := lr.BuildCFSM(g)
	if assert.NoError(err) {
		assert.Equal(12, cfsm.StateCount())
	}
}

func Test_Parse_Errors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.grammar")
	defer teardown()
	//
	testCases := []struct {
		name  string
		input string
		line  int
		span  lr0.Span
		msg   string
	}{
		{name: "empty input", input: "", line: 1, msg: "no productions"},
		{name: "blank input", input: "\n \n\t\n", line: 4, msg: "no productions"},
		{name: "missing arrow", input: "S -> a\nA c", line: 2, span: lr0.Span{7, 10}, msg: "missing '->'"},
		{name: "lhs only", input: "S", line: 1, span: lr0.Span{0, 1}, msg: "missing '->'"},
		{name: "lowercase lhs", input: "a -> b", line: 1, span: lr0.Span{0, 1}, msg: "left-hand side"},
		{name: "long lhs", input: "S -> a\n\nAB -> b", line: 3, span: lr0.Span{8, 10}, msg: "left-hand side"},
		{name: "empty rhs", input: "S ->", line: 1, span: lr0.Span{2, 4}, msg: "empty alternative #1"},
		{name: "empty alternative", input: "S -> a || b", line: 1, span: lr0.Span{7, 9}, msg: "empty alternative #2"},
		{name: "trailing bar", input: "S -> a |", line: 1, span: lr0.Span{7, 8}, msg: "empty alternative #2"},
		{name: "non-ascii terminal", input: "S -> é", line: 1, span: lr0.Span{5, 7}, msg: "non-ASCII character \"é\""},
		{name: "non-ascii in second line", input: "S -> aA\nA -> ü", line: 2, span: lr0.Span{13, 15}, msg: "non-ASCII"},
		{name: "invalid utf-8", input: "S -> a\xff", line: 1, span: lr0.Span{6, 7}, msg: "non-ASCII"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			_, err := Parse("G", tc.input)
			var serr *SyntaxError
			if !assert.True(errors.As(err, &serr), "expected syntax error, have %v", err) {
				return
			}
			assert.Equal(tc.line, serr.Line)
			assert.Equal(tc.span, serr.Span)
			assert.Contains(serr.Error(), tc.msg)
		})
	}
}

func Test_Read(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.grammar")
	defer teardown()
	//
	assert := assert.New(t)
	g, err := Read("Simple", strings.NewReader("S -> aA\nA -> c | d"))
	if assert.NoError(err) {
		assert.Equal("Simple", g.Name)
		assert.Equal(3, g.Size())
	}
	_, err = Read("Broken", strings.NewReader("S a"))
	if assert.Error(err) {
		assert.True(strings.HasPrefix(err.Error(), "grammar Broken: line 1"), err.Error())
		assert.Contains(err.Error(), "(0…3): missing '->' after S")
	}
}

func Test_ReadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.grammar")
	defer teardown()
	//
	assert := assert.New(t)
	dir, err := ioutil.TempDir("", "grammarfile")
	if !assert.NoError(err) {
		return
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "simple.g")
	if !assert.NoError(ioutil.WriteFile(path, []byte("S -> aA\nA -> c | d\n"), 0644)) {
		return
	}
	g, err := ReadFile(path)
	if assert.NoError(err) {
		assert.Equal("simple", g.Name)
		assert.Equal(3, g.Size())
	}
	_, err = ReadFile(filepath.Join(dir, "missing.g"))
	assert.True(os.IsNotExist(errors.Unwrap(err)) || os.IsNotExist(err))
}

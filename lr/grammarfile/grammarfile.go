/*
Package grammarfile reads context-free grammars in a compact textual format.

Every line holds the rules for one non-terminal:

    S -> aA
    A -> c | d
    B -> #

Non-terminals are single uppercase letters, every other character except
'|' and '#' is a terminal. '#' denotes the empty right-hand side.
Grammar files are plain ASCII, other characters are rejected with a
*SyntaxError. Whitespace is ignored, as are blank lines. The left-hand side of the first
rule is the start symbol. Rules are numbered in the order they appear.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammarfile

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/lr0/lr"
	"github.com/npillmayer/lr0/lr/scanner"
	"github.com/npillmayer/lr0/lr/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
)

// tracer traces with key 'lr0.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.grammar")
}

// Token types of the grammar file format.
const (
	NonTerm = iota + 1
	Term
	Arrow
	Bar
	Eps
	NL
)

// SyntaxError is an error in a grammar definition.
type SyntaxError struct {
	Line int      // input line, starting at 1
	Span lr0.Span // byte offsets of the offending input, may be null
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Span.IsNull() {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d %v: %s", e.Line, e.Span, e.Msg)
}

func syntaxError(line int, span lr0.Span, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Line: line, Span: span, Msg: fmt.Sprintf(format, args...)}
}

var (
	adapter     *lexmach.LMAdapter
	adapterErr  error
	adapterOnce sync.Once
)

// lexer returns the tokenizer factory for grammar files. It is compiled once.
func lexer() (*lexmach.LMAdapter, error) {
	adapterOnce.Do(func() {
		tokenIds := map[string]int{"->": Arrow, "|": Bar, "#": Eps}
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`[A-Z]`), lexmach.MakeToken("NONTERM", NonTerm))
			lexer.Add([]byte(`\n`), lexmach.MakeToken("NL", NL))
			lexer.Add([]byte(`( |\t|\r)+`), lexmach.Skip)
			lexer.Add([]byte("[^A-Z \t\r\n\\|#]"), lexmach.MakeToken("TERM", Term))
		}
		literals := []string{"->", "|", "#"}
		adapter, adapterErr = lexmach.NewLMAdapter(init, literals, nil, tokenIds)
	})
	return adapter, adapterErr
}

// ReadFile reads a grammar from a file. The grammar is named after the file.
func ReadFile(path string) (*lr.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Read(name, f)
}

// Read reads a grammar definition from r. Syntax errors are reported as
// *SyntaxError, wrapped with the grammar's name.
func Read(name string, r io.Reader) (*lr.Grammar, error) {
	input, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	g, err := Parse(name, string(input))
	if err != nil {
		return nil, fmt.Errorf("grammar %s: %w", name, err)
	}
	return g, nil
}

// Parse creates a grammar from a grammar definition.
func Parse(name string, input string) (*lr.Grammar, error) {
	if err := checkASCII(input); err != nil {
		return nil, err
	}
	lm, err := lexer()
	if err != nil {
		return nil, err
	}
	sc, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		scanner.LogError(e)
		if scanErr == nil {
			scanErr = e
		}
	})
	b := lr.NewGrammarBuilder(name)
	rules := 0
	lineno := 1
	var line []scanner.DefaultToken
	for {
		tok := sc.NextToken().(scanner.DefaultToken)
		if scanErr != nil {
			return nil, syntaxError(lineno, tok.Span(), "%v", scanErr)
		}
		if tok.TokType() != NL && tok.TokType() != scanner.EOF {
			line = append(line, tok)
			continue
		}
		n, err := readLine(b, lineno, line)
		if err != nil {
			return nil, err
		}
		rules += n
		if tok.TokType() == scanner.EOF {
			break
		}
		line = line[:0]
		lineno++
	}
	if rules == 0 {
		return nil, syntaxError(lineno, lr0.Span{}, "no productions found")
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Infof("grammar %s has %d rules", g.Name, g.Size())
	return g, nil
}

// checkASCII reports the first character of input outside of 7-bit ASCII,
// including bytes which are not valid UTF-8.
func checkASCII(input string) error {
	lineno := 1
	for pos, r := range input {
		if r == '\n' {
			lineno++
			continue
		}
		if r >= utf8.RuneSelf {
			_, size := utf8.DecodeRuneInString(input[pos:])
			span := lr0.Span{uint64(pos), uint64(pos + size)}
			return syntaxError(lineno, span, "non-ASCII character %q", input[span.From():span.To()])
		}
	}
	return nil
}

// readLine records the rules of a single input line and returns their number.
func readLine(b *lr.GrammarBuilder, lineno int, line []scanner.DefaultToken) (int, error) {
	if len(line) == 0 {
		return 0, nil
	}
	lhs := line[0]
	arrow := arrowIndex(line)
	if arrow < 0 {
		if lhs.TokType() != NonTerm {
			return 0, syntaxError(lineno, tokenSpan(line), "missing '->'")
		}
		return 0, syntaxError(lineno, tokenSpan(line), "missing '->' after %s", lhs.Lexeme())
	}
	if arrow != 1 || lhs.TokType() != NonTerm {
		return 0, syntaxError(lineno, tokenSpan(line[:arrow]), "left-hand side must be a single uppercase letter")
	}
	var alternatives [][]scanner.DefaultToken
	seps := []scanner.DefaultToken{line[1]} // separators preceding each alternative
	alt := []scanner.DefaultToken{}
	for _, tok := range line[2:] {
		if tok.TokType() == Bar {
			alternatives = append(alternatives, alt)
			seps = append(seps, tok)
			alt = []scanner.DefaultToken{}
			continue
		}
		alt = append(alt, tok)
	}
	alternatives = append(alternatives, alt)
	for i, alt := range alternatives {
		if len(alt) == 0 {
			span := seps[i].Span()
			if i+1 < len(seps) {
				span = span.Extend(seps[i+1].Span())
			}
			return 0, syntaxError(lineno, span, "empty alternative #%d for %s", i+1, lhs.Lexeme())
		}
		rb := b.LHS(lhs.Lexeme())
		for _, tok := range alt {
			switch tok.TokType() {
			case NonTerm:
				rb.N(tok.Lexeme())
			case Eps:
				// an empty right-hand side is written as '#'
			case Arrow:
				rb.T("-").T(">")
			default:
				rb.T(tok.Lexeme())
			}
		}
		r := rb.End()
		tracer().Debugf("line %d: rule %v", lineno, r)
	}
	return len(alternatives), nil
}

// arrowIndex returns the position of the first '->' in line, or -1.
func arrowIndex(line []scanner.DefaultToken) int {
	for i, tok := range line {
		if tok.TokType() == Arrow {
			return i
		}
	}
	return -1
}

// tokenSpan returns the span covering all of toks.
func tokenSpan(toks []scanner.DefaultToken) lr0.Span {
	var span lr0.Span
	for _, tok := range toks {
		if span.IsNull() {
			span = tok.Span()
			continue
		}
		span = span.Extend(tok.Span())
	}
	return span
}

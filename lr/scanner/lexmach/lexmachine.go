package lexmach

import (
	"strings"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/lr0/lr/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'lr0.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ("->", "|", …), a list of keywords and a map for translating
// token strings to their token types.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: scanner.LogError, size: len(input)}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	size    int // length of input in bytes
	line    int // line of last token
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = scanner.LogError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. Input which does not match
// any pattern is reported to the error handler and skipped.
// At the end of input a token of type scanner.EOF is returned, repeatedly.
func (lms *LMScanner) NextToken() lr0.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", lr0.Span{}, 0)
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(lms.size)
		return scanner.MakeDefaultToken(scanner.EOF, "", lr0.Span{end, end}, lms.line)
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | %q at line %d", token.Type, token.Lexeme, token.StartLine)
	lms.line = token.StartLine
	return scanner.MakeDefaultToken(
		lr0.TokType(token.Type),
		string(token.Lexeme),
		lr0.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		token.StartLine,
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

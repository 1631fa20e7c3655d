/*
Package scanner defines an interface for tokenizers used by the readers of
package lr, together with a default token type.

The default implementation is an adapter for lexmachine, living in
sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lr0.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lr0.scanner")
}

// EOF is the token type signalling the end of input.
const EOF lr0.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lr0.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for tokenizers.
func LogError(e error) {
	tracer().Errorf("scanner error: %s", e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner. Besides its span it remembers the input line it has
// been found on.
type DefaultToken struct {
	kind   lr0.TokType
	lexeme string
	Val    interface{}
	span   lr0.Span
	line   int
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ lr0.TokType, lexeme string, span lr0.Span, line int) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
		line:   line,
	}
}

var _ lr0.Token = DefaultToken{}

func (t DefaultToken) TokType() lr0.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() lr0.Span {
	return t.span
}

// Line returns the input line of a token, starting at 1.
func (t DefaultToken) Line() int {
	return t.line
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q@%d%v>", t.kind, t.lexeme, t.line, t.span)
}

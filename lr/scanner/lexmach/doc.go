/*
Package lexmach tokenizes input with DFAs generated by lexmachine
(https://github.com/timtadh/lexmachine).

An LMAdapter compiles a lexer once. It is set up with a callback which
registers the regular expressions, together with the literal strings and
keywords and a table of token IDs for them. The adapter then hands out an
LMScanner for every input, which is a scanner.Tokenizer.

The grammar file reader of this module tokenizes rules like "A -> c | d"
this way:

	const (
	    NonTerm = iota + 1
	    Term
	    Arrow
	    Bar
	)
	init := func(lexer *lexmachine.Lexer) {
	    lexer.Add([]byte(`[A-Z]`), lexmach.MakeToken("NONTERM", NonTerm))
	    lexer.Add([]byte(`( |\t)+`), lexmach.Skip)
	    lexer.Add([]byte(`[a-z]`), lexmach.MakeToken("TERM", Term))
	}
	ids := map[string]int{"->": Arrow, "|": Bar}
	lm, err := lexmach.NewLMAdapter(init, []string{"->", "|"}, nil, ids)
	…
	sc, err := lm.Scanner("A -> c | d")
	…
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
	    fmt.Println(tok.Lexeme(), tok.Span())   // "A" (0…1), "->" (2…4), …
	}

Spans are byte offsets into the input. Input no pattern matches is reported
to the scanner's error handler and skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

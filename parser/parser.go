/*
Package parser provides a mini-lisp parser.

	program   := stmt*
	stmt      := expr | '(' 'define' ID expr ')' | '(' print-op expr ')'
	print-op  := 'print-num' | 'print-bool'
	expr      := BOOL | INT | ID | num-op | logical-op | fun | call | if
	num-op    := '(' ('+' | '*') expr expr+ ')'
	           | '(' ('-' | '/' | 'mod' | '>' | '<' | '=') expr expr ')'
	logical-op := '(' ('and' | 'or') expr expr+ ')' | '(' 'not' expr ')'
	fun       := '(' 'fun' '(' ID* ')' def* expr ')'
	def       := '(' 'define' ID expr ')'
	call      := '(' (ID | fun | call) expr* ')'
	if        := '(' 'if' expr expr expr ')'
	BOOL      := '#t' | '#f'
	INT       := '0' | '-'? [1-9] [0-9]*
	ID        := letter (letter | digit | '-')*
*/
package parser

import (
	"io"
	"strings"

	"github.com/Lefia/mini-lisp/lisp"
	"github.com/Lefia/mini-lisp/parser/rdparser"
	"github.com/Lefia/mini-lisp/parser/token"
)

// SyntaxError is the error type returned for malformed source text.
type SyntaxError = rdparser.SyntaxError

// NewReader returns a new lisp.Reader.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// Parse parses the program in r.  The name is used to report source
// locations.
func Parse(name string, r io.Reader) (*lisp.Program, error) {
	p := rdparser.New(token.NewScanner(name, r))
	return p.ParseProgram()
}

// ParseString parses the program in src.
func ParseString(name, src string) (*lisp.Program, error) {
	return Parse(name, strings.NewReader(src))
}

// IsIncomplete returns true if err indicates that the parsed text ended
// inside an unterminated form.
func IsIncomplete(err error) bool {
	return rdparser.IsIncomplete(err)
}

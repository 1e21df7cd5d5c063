package token

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from a rune stream (io.Reader).
// Scanner tracks the byte offset, line, and column of every rune it reads.
type Scanner struct {
	file string
	r    *bufio.Reader

	pos  int // byte offset of the next rune
	line int // line of the next rune
	col  int // column of the next rune

	start Location // location of the first rune in the current token
	text  strings.Builder
	c     Rune

	peeked  bool
	next    Rune
	nextErr error
}

// NewScanner initializes and returns a new Scanner.
func NewScanner(file string, r io.Reader) *Scanner {
	s := &Scanner{
		file: file,
		r:    bufio.NewReader(r),
		line: 1,
		col:  1,
	}
	s.Ignore()
	return s
}

// EmitToken returns a token containing the text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.text.Reset()
	s.start = Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}

// Text returns a string containing text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) Text() string {
	return s.text.String()
}

// Rune returns the current unicode rune that is being scanned.  The rune
// returned by Rune is the last rune in a token returned by EmitToken.
func (s *Scanner) Rune() rune {
	return s.c.C
}

// Peek returns the next rune to be scanned, if there are any.  If an invalid
// utf-8 sequence or EOF prevents futher runes from being scanned Peek returns
// a false second value.  If Peek returns a false value the next call to
// s.ScanRune will return an error that reflects of the cause.
func (s *Scanner) Peek() (rune, bool) {
	s.fillPeek()
	if s.nextErr != nil {
		return 0, false
	}
	return s.next.C, true
}

// ScanRune attempts to scan a utf-8 rune from the input for inclusion in the
// current token.  At the end of input ScanRune returns io.EOF.
func (s *Scanner) ScanRune() error {
	s.fillPeek()
	if s.nextErr != nil {
		return s.nextErr
	}
	s.peeked = false
	s.c = s.next
	s.text.WriteRune(s.c.C)
	s.pos += s.c.N
	if s.c.C == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return nil
}

func (s *Scanner) fillPeek() {
	if s.peeked {
		return
	}
	s.peeked = true
	c, n, err := s.r.ReadRune()
	s.next = Rune{c, n}
	s.nextErr = err
	if err == nil && s.next.IsRuneError() {
		s.nextErr = &InvalidUTF8Error{Source: s.Loc()}
	}
}

// LocStart returns a Location referencing the beginning of the current token,
// just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	loc := s.start
	return &loc
}

// Loc returns a Location referencing the next rune to be scanned.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}

// Rune contains a rune that read by Scanner during peeking operations.
type Rune struct {
	C rune
	N int
}

// IsRuneError returns true if Rune represents an invalid utf-8 sequence read
// by utf8.DecodeRune.
func (r Rune) IsRuneError() bool {
	return r.C == utf8.RuneError && r.N == 1
}

// InvalidUTF8Error is returned by Scanner when the source text is not valid
// utf-8.
type InvalidUTF8Error struct {
	Source *Location
}

func (err *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("%v: invalid utf-8 rune", err.Source)
}

package lexer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/Lefia/mini-lisp/parser/internal/interntoken"
	"github.com/Lefia/mini-lisp/parser/token"
)

// operatorRunes are the single rune symbols naming numeric operators.  The
// minus sign is handled separately because it may also begin an integer
// literal.
const operatorRunes = "+*/<>="

type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune
	intern  *interntoken.Table

	// readErr is a terminal error encountered while reading from the
	// scanner.
	readErr error
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// NewInterned returns a Lexer that interns symbol text in tab.
func NewInterned(s *token.Scanner, tab *interntoken.Table) *Lexer {
	lex := New(s)
	lex.intern = tab
	return lex
}

func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readErr = lex.skipWhitespace()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readChar()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	switch lex.ch {
	case '(':
		return lex.charToken(token.PAREN_L)
	case ')':
		return lex.charToken(token.PAREN_R)
	case ';':
		for lex.peekRune() != '\n' {
			err := lex.readChar()
			if err == io.EOF {
				lex.readErr = nil
				return lex.scanner.EmitToken(token.COMMENT)
			}
			if err != nil {
				return lex.emitError(err, false)
			}
		}
		return lex.scanner.EmitToken(token.COMMENT)
	case '#':
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
		switch lex.ch {
		case 't', 'f':
			if !lex.atDelimiter() {
				return lex.invalidf("invalid boolean literal starting with %q", lex.scanner.Text())
			}
			return lex.scanner.EmitToken(token.BOOL)
		default:
			return lex.invalidf("invalid boolean literal %q", lex.scanner.Text())
		}
	case '-':
		if isDigit(lex.peekRune()) {
			return lex.readNumber()
		}
		if !lex.atDelimiter() {
			return lex.invalidf("unexpected text starting with %q", lex.ch)
		}
		return lex.symbolToken()
	default:
		if isDigit(lex.ch) {
			return lex.readNumber()
		}

		if strings.ContainsRune(operatorRunes, lex.ch) {
			if !lex.atDelimiter() {
				return lex.invalidf("unexpected text following operator %q", lex.ch)
			}
			return lex.symbolToken()
		}

		if isWordStart(lex.ch) {
			err := lex.readSymbol()
			if err != nil {
				return lex.emitError(err, false)
			}
			return lex.symbolToken()
		}

		return lex.invalidf("unexpected text starting with %q", lex.ch)
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	var uerr *token.InvalidUTF8Error
	if errors.As(err, &uerr) {
		tok := lex.emit(token.ERROR, "invalid utf-8 rune")
		tok.Source = uerr.Source
		return tok
	}
	return lex.emit(token.ERROR, err.Error())
}

// invalidf emits an INVALID token and stops the lexer.  Every subsequent
// call to NextToken returns an ERROR token.
func (lex *Lexer) invalidf(format string, v ...interface{}) *token.Token {
	lex.readErr = fmt.Errorf(format, v...)
	return lex.emit(token.INVALID, lex.readErr.Error())
}

func (lex *Lexer) charToken(typ token.Type) *token.Token {
	tok := lex.scanner.EmitToken(typ)
	return tok
}

func (lex *Lexer) symbolToken() *token.Token {
	tok := lex.scanner.EmitToken(token.SYMBOL)
	tok.Text = lex.intern.Get(tok.Text)
	return tok
}

func (lex *Lexer) readSymbol() error {
	for isWord(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	return nil
}

func (lex *Lexer) readNumber() *token.Token {
	for isDigit(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
	}
	if !lex.atDelimiter() {
		return lex.invalidf("invalid integer literal starting with %q", lex.scanner.Text())
	}
	// the returned string may not actually be a usable number (overflow), but
	// we can find that out at parse time -- not scan time.
	return lex.scanner.EmitToken(token.INT)
}

// atDelimiter reports whether the next rune ends the current token.
func (lex *Lexer) atDelimiter() bool {
	c, ok := lex.scanner.Peek()
	if !ok {
		return true
	}
	return unicode.IsSpace(c) || c == '(' || c == ')' || c == ';'
}

func (lex *Lexer) skipWhitespace() error {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !unicode.IsSpace(c) {
			break
		}
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isWordStart(c rune) bool {
	return unicode.IsLetter(c)
}

func isWord(c rune) bool {
	return unicode.IsLetter(c) || isDigit(c) || c == '-'
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

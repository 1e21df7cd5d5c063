package token

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	s := NewScanner("test", strings.NewReader("ab\nc"))
	c, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 'a', c)

	require.NoError(t, s.ScanRune())
	require.NoError(t, s.ScanRune())
	assert.Equal(t, 'b', s.Rune())
	tok := s.EmitToken(SYMBOL)
	assert.Equal(t, "ab", tok.Text)
	assert.Equal(t, "test:1:1", tok.Source.String())

	require.NoError(t, s.ScanRune())
	s.Ignore()
	require.NoError(t, s.ScanRune())
	tok = s.EmitToken(SYMBOL)
	assert.Equal(t, "c", tok.Text)
	assert.Equal(t, &Location{File: "test", Pos: 3, Line: 2, Col: 1}, tok.Source)

	_, ok = s.Peek()
	assert.False(t, ok)
	assert.Equal(t, io.EOF, s.ScanRune())
	assert.Equal(t, &Location{File: "test", Pos: 4, Line: 2, Col: 2}, s.Loc())
}

func TestScanner_invalidUTF8(t *testing.T) {
	s := NewScanner("test", strings.NewReader("a\xff"))
	require.NoError(t, s.ScanRune())
	_, ok := s.Peek()
	assert.False(t, ok)
	err := s.ScanRune()
	if assert.IsType(t, &InvalidUTF8Error{}, err) {
		assert.Equal(t, "test:1:2: invalid utf-8 rune", err.Error())
	}
}

func TestLocation(t *testing.T) {
	var loc *Location
	assert.Equal(t, "<unknown>", loc.String())
	assert.Equal(t, "f[3]", (&Location{File: "f", Pos: 3}).String())
	assert.Equal(t, "f:2", (&Location{File: "f", Line: 2}).String())
	assert.Equal(t, "f:2:5", (&Location{File: "f", Line: 2, Col: 5}).String())
}

func TestToken(t *testing.T) {
	assert.Equal(t, "EOF", (&Token{Type: EOF}).String())
	assert.Equal(t, "bad input", (&Token{Type: ERROR, Text: "bad input"}).String())
	assert.Equal(t, `symbol "x"`, (&Token{Type: SYMBOL, Text: "x"}).String())
	assert.Equal(t, "invalid", Type(numTokenTypes+1).String())
}

package lisp

import (
	"bytes"
	"testing"

	"github.com/Lefia/mini-lisp/parser/token"
	"github.com/stretchr/testify/assert"
)

func TestCallStack(t *testing.T) {
	s := &CallStack{}
	assert.Equal(t, 0, s.Height())
	assert.Nil(t, s.Top())
	assert.True(t, s.Push("fact", &token.Location{File: "test", Line: 3, Col: 1}))
	assert.True(t, s.Push(AnonymousFunName, nil))
	assert.Equal(t, 2, s.Height())
	assert.Equal(t, AnonymousFunName, s.Top().Name)

	cp := s.Copy()
	f := s.Pop()
	assert.Equal(t, AnonymousFunName, f.Name)
	assert.Equal(t, 1, s.Height())
	assert.Equal(t, 2, cp.Height())

	var buf bytes.Buffer
	_, err := cp.DebugPrint(&buf)
	assert.NoError(t, err)
	assert.Equal(t, "Stack Trace [2 frames -- entrypoint last]:\n"+
		"  height 1: anonymous\n"+
		"  height 0: fact (test:3:1)\n", buf.String())

	s.Pop()
	assert.Panics(t, func() { s.Pop() })

	var nilStack *CallStack
	assert.Equal(t, 0, nilStack.Height())
	assert.Nil(t, nilStack.Top())
}

func TestCallStack_maxHeight(t *testing.T) {
	s := &CallStack{MaxHeight: 2}
	assert.True(t, s.Push("a", nil))
	assert.True(t, s.Push("b", nil))
	assert.False(t, s.Push("c", nil))
	assert.Equal(t, 2, s.Height())
	assert.Equal(t, "b", s.Top().Name)
}

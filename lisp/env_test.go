package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertNumEqual(t *testing.T, expect int64, v Value) {
	t.Helper()
	if assert.True(t, v.IsNumber(), "not a number: %v", v) {
		assert.Equal(t, expect, v.Num)
	}
}

func TestRoot(t *testing.T) {
	env := NewEnv(nil)
	assert.Equal(t, 0, env.Len())
	assert.Nil(t, env.Runtime)
	env.Bind("a", Number(1))
	_, ok := env.Lookup("b")
	assert.False(t, ok)
	v, ok := env.Lookup("a")
	assert.True(t, ok)
	AssertNumEqual(t, 1, v)
	assert.Equal(t, 0, env.Depth())
	assert.Equal(t, env, env.Root())
}

func TestChild(t *testing.T) {
	root := NewEnv(nil)
	root.Bind("a", Number(1))
	root.Bind("b", Number(2))
	env := root.Extend()
	assert.Equal(t, 0, env.Len())
	env.Bind("b", Number(3))

	v, ok := env.Lookup("a")
	assert.True(t, ok)
	AssertNumEqual(t, 1, v)
	v, ok = env.Lookup("b")
	assert.True(t, ok)
	AssertNumEqual(t, 3, v)

	// the parent binding is shadowed, not replaced
	v, ok = root.Lookup("b")
	assert.True(t, ok)
	AssertNumEqual(t, 2, v)

	assert.True(t, env.IsBoundLocally("b"))
	assert.False(t, env.IsBoundLocally("a"))
	assert.Equal(t, 1, env.Depth())
	assert.Equal(t, root, env.Root())
	assert.NotEqual(t, root.ID, env.ID)
}

func TestRebind(t *testing.T) {
	env := NewEnv(nil)
	env.Bind("x", Number(1))
	env.Bind("y", Bool(true))
	env.Bind("x", Bool(false))
	assert.Equal(t, 2, env.Len())
	assert.Equal(t, []string{"x", "y"}, env.Names())
	v, _ := env.Lookup("x")
	assert.True(t, v.Equal(Bool(false)))
}

func TestSharedScope(t *testing.T) {
	// Two children of the same scope observe bindings made in it after they
	// were created.
	root := NewEnv(nil)
	a := root.Extend()
	b := root.Extend()
	root.Bind("late", Number(7))
	for _, env := range []*Env{a, b} {
		v, ok := env.Lookup("late")
		assert.True(t, ok)
		AssertNumEqual(t, 7, v)
	}
}

func TestBindInvalid(t *testing.T) {
	env := NewEnv(nil)
	assert.Panics(t, func() { env.Bind("x", Value{}) })
}

func TestRuntimeInherited(t *testing.T) {
	rt, err := NewRuntime(nil)
	assert.NoError(t, err)
	env := rt.Global().Extend().Extend()
	assert.Equal(t, rt, env.Runtime)
	assert.Equal(t, rt.Global(), env.Root())
}

package lisp

import (
	"fmt"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// Env is one frame of a lexical scope chain.  An Env is shared by every
// closure created while it was the active environment, so a binding made in
// an Env is visible to all of them.  Env is not safe for concurrent use.
type Env struct {
	ID      uint
	Parent  *Env
	Runtime *Runtime
	scope   *bindings
}

// NewEnv returns initializes and returns a new Env.  If parent is nil a root
// Env is returned.  Otherwise the new Env shares the Runtime of parent.
func NewEnv(parent *Env) *Env {
	var rt *Runtime
	if parent != nil {
		rt = parent.Runtime
	}
	return &Env{
		ID:      getEnvID(),
		Parent:  parent,
		Runtime: rt,
		scope:   newBindings(0),
	}
}

// Extend returns a new empty scope whose parent is env.
func (env *Env) Extend() *Env {
	return NewEnv(env)
}

// Lookup returns the value bound to name in env or the nearest ancestor of
// env that binds name.
func (env *Env) Lookup(name string) (Value, bool) {
	for ; env != nil; env = env.Parent {
		v, ok := env.scope.Get(name)
		if ok {
			return v, true
		}
	}
	return Value{}, false
}

// Bind binds name to v in env.  Ancestors of env are never modified.
func (env *Env) Bind(name string, v Value) {
	if v.Kind == KindInvalid {
		panic(fmt.Sprintf("invalid value bound to %s", name))
	}
	env.scope.Put(name, v)
}

// IsBoundLocally returns true if name is bound in env itself.
func (env *Env) IsBoundLocally(name string) bool {
	_, ok := env.scope.Get(name)
	return ok
}

// Len returns the number of local bindings in env.
func (env *Env) Len() int {
	return env.scope.Len()
}

// Names returns the names bound locally in env in the order they were first
// bound.
func (env *Env) Names() []string {
	return env.scope.Names()
}

// Depth returns the number of ancestors of env.
func (env *Env) Depth() int {
	n := 0
	for p := env.Parent; p != nil; p = p.Parent {
		n++
	}
	return n
}

// Root returns the root of the scope chain containing env.
func (env *Env) Root() *Env {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

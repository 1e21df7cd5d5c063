package lisp

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the type of a Value
type Kind uint

// Possible Kind values
const (
	KindInvalid Kind = iota
	KindNumber
	KindBoolean
	KindClosure
)

var kindStrings = []string{
	KindInvalid: "INVALID",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindClosure: "function",
}

func (k Kind) String() string {
	if int(k) >= len(kindStrings) {
		return kindStrings[KindInvalid]
	}
	return kindStrings[k]
}

// Value is a runtime value.  Values are immutable, a binding may be replaced
// but the Value it refers to never changes.  The zero Value is invalid.
type Value struct {
	Kind Kind
	Num  int64
	Bool bool
	Fun  *Closure
}

// Closure is a function value.  Env is shared with every other closure
// created in the same scope, it is never copied.
type Closure struct {
	Params []string
	Body   Expr
	Env    *Env
	Source *FunExpr
}

// Number returns a Value representing the number x.
func Number(x int64) Value {
	return Value{
		Kind: KindNumber,
		Num:  x,
	}
}

// Bool returns a Value representing the boolean b.
func Bool(b bool) Value {
	return Value{
		Kind: KindBoolean,
		Bool: b,
	}
}

// Fun returns a Value wrapping the closure c.
func Fun(c *Closure) Value {
	if c == nil {
		panic("nil closure")
	}
	return Value{
		Kind: KindClosure,
		Fun:  c,
	}
}

// Arity returns the number of parameters c binds.
func (c *Closure) Arity() int {
	return len(c.Params)
}

func (c *Closure) String() string {
	return fmt.Sprintf("#<closure (%s)>", strings.Join(c.Params, " "))
}

// IsNumber returns true if v is a number.
func (v Value) IsNumber() bool {
	return v.Kind == KindNumber
}

// IsBool returns true if v is a boolean.
func (v Value) IsBool() bool {
	return v.Kind == KindBoolean
}

// IsClosure returns true if v is a function.
func (v Value) IsClosure() bool {
	return v.Kind == KindClosure
}

// Equal returns true if v and other are the same value.  Closures are equal
// only when they are the same closure.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNumber:
		return v.Num == other.Num
	case KindBoolean:
		return v.Bool == other.Bool
	case KindClosure:
		return v.Fun == other.Fun
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatInt(v.Num, 10)
	case KindBoolean:
		return formatBool(v.Bool)
	case KindClosure:
		return v.Fun.String()
	default:
		return "#<invalid>"
	}
}

func formatBool(b bool) string {
	if b {
		return "#t"
	}
	return "#f"
}

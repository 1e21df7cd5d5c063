package lisp

import (
	"errors"
	"fmt"

	"github.com/Lefia/mini-lisp/parser/token"
)

// Condition classifies a runtime error.
type Condition string

// Conditions produced by the evaluator.
const (
	CondUnboundVariable Condition = "unbound-variable"
	CondTypeMismatch    Condition = "type-mismatch"
	CondArityMismatch   Condition = "arity-mismatch"
	CondDivisionByZero  Condition = "division-by-zero"
	CondStackOverflow   Condition = "stack-overflow"
)

// Error is a runtime error.  The evaluator never panics on user reachable
// conditions, it returns an *Error instead.
type Error struct {
	Condition Condition
	Message   string
	Source    *token.Location
	// Stack is a copy of the call stack at the point the error occurred.
	Stack *CallStack
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Source != nil {
		return fmt.Sprintf("%v: %s: %s", e.Source, e.Condition, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Condition, e.Message)
}

// ConditionOf returns the Condition of err if err is (or wraps) an *Error.
// ConditionOf returns an empty Condition otherwise.
func ConditionOf(err error) Condition {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Condition
	}
	return ""
}

// Errorf returns an error with the given condition.  The error's source
// location is that of node, when node is not nil.
func (env *Env) Errorf(node Node, cond Condition, format string, v ...interface{}) error {
	err := &Error{
		Condition: cond,
		Message:   fmt.Sprintf(format, v...),
	}
	if node != nil {
		err.Source = node.Loc()
	}
	if env.Runtime != nil && env.Runtime.Stack != nil {
		err.Stack = env.Runtime.Stack.Copy()
	}
	return err
}

func (env *Env) typeError(node Node, want Kind, got Value) error {
	return env.Errorf(node, CondTypeMismatch, "expected %v but got %v", want, got.Kind)
}

// toNumber coerces v to a number.
func (env *Env) toNumber(node Node, v Value) (int64, error) {
	if v.Kind != KindNumber {
		return 0, env.typeError(node, KindNumber, v)
	}
	return v.Num, nil
}

// toBool coerces v to a boolean.
func (env *Env) toBool(node Node, v Value) (bool, error) {
	if v.Kind != KindBoolean {
		return false, env.typeError(node, KindBoolean, v)
	}
	return v.Bool, nil
}

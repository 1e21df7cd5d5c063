package lisp

import (
	"fmt"
	"io"
	"strconv"
)

// Execute executes stmt in the context (scope) of env.  A define statement
// binds its name in env itself, never in a child or ancestor of env.
func (env *Env) Execute(stmt Stmt) error {
	switch s := stmt.(type) {
	case *ExprStmt:
		_, err := env.Eval(s.X)
		return err
	case *DefineStmt:
		v, err := env.Eval(s.X)
		if err != nil {
			// The name stays unbound (or keeps its previous value).
			return err
		}
		env.Bind(s.Name, v)
		return nil
	case *PrintStmt:
		v, err := env.Eval(s.X)
		if err != nil {
			return err
		}
		var text string
		switch s.Kind {
		case PrintNum:
			x, err := env.toNumber(s.X, v)
			if err != nil {
				return err
			}
			text = strconv.FormatInt(x, 10)
		case PrintBool:
			b, err := env.toBool(s.X, v)
			if err != nil {
				return err
			}
			text = formatBool(b)
		default:
			panic(fmt.Sprintf("invalid print kind: %d", s.Kind))
		}
		_, err = io.WriteString(env.stdout(), text+"\n")
		if err != nil {
			return fmt.Errorf("%s: %w", s.Kind, err)
		}
		return nil
	case nil:
		panic("nil statement")
	default:
		panic(fmt.Sprintf("unknown statement type: %T", stmt))
	}
}

// Eval evaluates x in the context (scope) of env and returns the resulting
// Value.
func (env *Env) Eval(x Expr) (Value, error) {
	switch x := x.(type) {
	case *BoolLit:
		return Bool(x.Val), nil
	case *NumLit:
		return Number(x.Val), nil
	case *Ident:
		v, ok := env.Lookup(x.Name)
		if !ok {
			return Value{}, env.Errorf(x, CondUnboundVariable, "variable %s is not bound", x.Name)
		}
		return v, nil
	case *NumExpr:
		return env.evalNumExpr(x)
	case *LogicalExpr:
		return env.evalLogicalExpr(x)
	case *IfExpr:
		c, err := env.Eval(x.Cond)
		if err != nil {
			return Value{}, err
		}
		ok, err := env.toBool(x.Cond, c)
		if err != nil {
			return Value{}, err
		}
		if ok {
			return env.Eval(x.Then)
		}
		return env.Eval(x.Else)
	case *FunExpr:
		return env.evalFunExpr(x)
	case *CallExpr:
		return env.evalCall(x)
	case nil:
		panic("nil expression")
	default:
		panic(fmt.Sprintf("unknown expression type: %T", x))
	}
}

func (env *Env) evalNumExpr(x *NumExpr) (Value, error) {
	if x.Op.IsFold() {
		if len(x.Args) < 1 {
			return Value{}, env.Errorf(x, CondArityMismatch, "%v expects at least 1 argument (got %d)", x.Op, len(x.Args))
		}
	} else if len(x.Args) != 2 {
		return Value{}, env.Errorf(x, CondArityMismatch, "%v expects 2 arguments (got %d)", x.Op, len(x.Args))
	}
	args := make([]int64, len(x.Args))
	for i, arg := range x.Args {
		v, err := env.Eval(arg)
		if err != nil {
			return Value{}, err
		}
		args[i], err = env.toNumber(arg, v)
		if err != nil {
			return Value{}, err
		}
	}
	switch x.Op {
	case OpPlus:
		var sum int64
		for _, a := range args {
			sum += a
		}
		return Number(sum), nil
	case OpMultiply:
		prod := int64(1)
		for _, a := range args {
			prod *= a
		}
		return Number(prod), nil
	case OpMinus:
		return Number(args[0] - args[1]), nil
	case OpDivide:
		if args[1] == 0 {
			return Value{}, env.Errorf(x, CondDivisionByZero, "division by zero")
		}
		return Number(args[0] / args[1]), nil
	case OpModulus:
		if args[1] == 0 {
			return Value{}, env.Errorf(x, CondDivisionByZero, "modulus by zero")
		}
		return Number(args[0] % args[1]), nil
	case OpGreater:
		return Bool(args[0] > args[1]), nil
	case OpSmaller:
		return Bool(args[0] < args[1]), nil
	case OpEqual:
		return Bool(args[0] == args[1]), nil
	default:
		panic(fmt.Sprintf("invalid numeric operator: %d", x.Op))
	}
}

// evalLogicalExpr evaluates every argument of x, even when an earlier
// argument already determines the result.
func (env *Env) evalLogicalExpr(x *LogicalExpr) (Value, error) {
	if x.Op == OpNot {
		if len(x.Args) != 1 {
			return Value{}, env.Errorf(x, CondArityMismatch, "%v expects 1 argument (got %d)", x.Op, len(x.Args))
		}
	} else if len(x.Args) < 1 {
		return Value{}, env.Errorf(x, CondArityMismatch, "%v expects at least 1 argument (got %d)", x.Op, len(x.Args))
	}
	args := make([]bool, len(x.Args))
	for i, arg := range x.Args {
		v, err := env.Eval(arg)
		if err != nil {
			return Value{}, err
		}
		args[i], err = env.toBool(arg, v)
		if err != nil {
			return Value{}, err
		}
	}
	switch x.Op {
	case OpAnd:
		result := true
		for _, a := range args {
			result = result && a
		}
		return Bool(result), nil
	case OpOr:
		result := false
		for _, a := range args {
			result = result || a
		}
		return Bool(result), nil
	case OpNot:
		return Bool(!args[0]), nil
	default:
		panic(fmt.Sprintf("invalid logical operator: %d", x.Op))
	}
}

// evalFunExpr creates the scope hosting the local definitions of x and
// returns a closure capturing it.  The body of x is not evaluated.
func (env *Env) evalFunExpr(x *FunExpr) (Value, error) {
	scope := env.Extend()
	for _, def := range x.Defs {
		err := scope.Execute(def)
		if err != nil {
			return Value{}, err
		}
	}
	fun := &Closure{
		Params: x.Params,
		Body:   x.Body,
		Env:    scope,
		Source: x,
	}
	return Fun(fun), nil
}

// evalCall applies a closure.  Arguments are evaluated in env, the caller's
// scope, and bound in a new child of the closure's captured scope.
func (env *Env) evalCall(x *CallExpr) (Value, error) {
	f, err := env.Eval(x.Func)
	if err != nil {
		return Value{}, err
	}
	if f.Kind != KindClosure {
		return Value{}, env.typeError(x.Func, KindClosure, f)
	}
	fun := f.Fun
	name := callName(x)
	if len(x.Args) != len(fun.Params) {
		return Value{}, env.Errorf(x, CondArityMismatch, "function %s expects %d arguments (got %d)",
			name, len(fun.Params), len(x.Args))
	}

	frame := fun.Env.Extend()
	for i, arg := range x.Args {
		v, err := env.Eval(arg)
		if err != nil {
			return Value{}, err
		}
		frame.Bind(fun.Params[i], v)
	}

	rt := env.Runtime
	if rt != nil {
		if !rt.Stack.Push(name, x.Source) {
			return Value{}, env.Errorf(x, CondStackOverflow, "maximum stack height exceeded (%d)", rt.Stack.MaxHeight)
		}
		defer rt.Stack.Pop()
		if rt.Trace {
			rt.tracef("call %s", traceCall(name, fun, frame))
		}
	}
	v, err := frame.Eval(fun.Body)
	if rt != nil && err == nil {
		rt.tracef("%s returned %v", name, v)
	}
	return v, err
}

func (env *Env) stdout() io.Writer {
	if env.Runtime == nil || env.Runtime.Stdout == nil {
		return io.Discard
	}
	return env.Runtime.Stdout
}

func callName(x *CallExpr) string {
	if id, ok := x.Func.(*Ident); ok {
		return id.Name
	}
	return AnonymousFunName
}

func traceCall(name string, fun *Closure, frame *Env) string {
	text := "(" + name
	for _, p := range fun.Params {
		v, _ := frame.Lookup(p)
		text += " " + v.String()
	}
	return text + ")"
}

package lisp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Runtime is the state shared by every Env in a scope chain: the output sink
// print statements write to, the diagnostic writer, and the call stack.
type Runtime struct {
	Stdout io.Writer
	Stderr io.Writer
	Stack  *CallStack
	Reader Reader
	Trace  bool

	global *Env
}

// NewRuntime returns a Runtime with an empty global environment.  Print
// statements write to stdout.
func NewRuntime(stdout io.Writer, config ...Config) (*Runtime, error) {
	if stdout == nil {
		stdout = io.Discard
	}
	rt := &Runtime{
		Stdout: stdout,
		Stderr: os.Stderr,
		Stack:  &CallStack{},
	}
	for _, fn := range config {
		err := fn(rt)
		if err != nil {
			return nil, fmt.Errorf("runtime config: %w", err)
		}
	}
	rt.global = NewEnv(nil)
	rt.global.Runtime = rt
	return rt, nil
}

// Run executes prog with a fresh global environment and writes print output
// to w.  Run stops at the first error and returns it.
func Run(prog *Program, w io.Writer, config ...Config) error {
	rt, err := NewRuntime(w, config...)
	if err != nil {
		return err
	}
	return rt.Run(prog)
}

// Global returns the top-level environment of rt.
func (rt *Runtime) Global() *Env {
	return rt.global
}

// Run executes each statement of prog in order in the global environment.
// Run stops at the first error and returns it, statements following the
// failed statement are not executed.
func (rt *Runtime) Run(prog *Program) error {
	for _, stmt := range prog.Stmts {
		err := rt.global.Execute(stmt)
		if err != nil {
			return err
		}
	}
	return nil
}

// Load reads a program from r using the configured Reader and runs it in the
// global environment.  Definitions made by earlier calls to Load remain
// visible.
func (rt *Runtime) Load(name string, r io.Reader) error {
	if rt.Reader == nil {
		return errors.New("no reader configured")
	}
	prog, err := rt.Reader.Read(name, r)
	if err != nil {
		return err
	}
	return rt.Run(prog)
}

// LoadString parses and runs the program contained in src.
func (rt *Runtime) LoadString(name, src string) error {
	return rt.Load(name, strings.NewReader(src))
}

// LoadFile parses and runs the program stored at path.
func (rt *Runtime) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return rt.Load(path, f)
}

// Exec executes stmt in the global environment.  If stmt is an expression
// statement its value is returned along with a true second value.
func (rt *Runtime) Exec(stmt Stmt) (Value, bool, error) {
	if s, ok := stmt.(*ExprStmt); ok {
		v, err := rt.global.Eval(s.X)
		if err != nil {
			return Value{}, false, err
		}
		return v, true, nil
	}
	return Value{}, false, rt.global.Execute(stmt)
}

func (rt *Runtime) tracef(format string, v ...interface{}) {
	if !rt.Trace {
		return
	}
	indent := strings.Repeat("  ", rt.Stack.Height())
	fmt.Fprintf(rt.Stderr, "trace: "+indent+format+"\n", v...)
}

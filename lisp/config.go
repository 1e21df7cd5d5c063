package lisp

import (
	"errors"
	"io"
)

// Config is a function that configures a Runtime.
type Config func(rt *Runtime) error

// WithMaximumStackHeight returns a Config that will prevent a runtime from
// allowing more than n active function calls.  A call that would exceed the
// limit fails with CondStackOverflow.  When n is zero the stack is unbounded
// and deep recursion is limited only by the Go runtime.
func WithMaximumStackHeight(n int) Config {
	return func(rt *Runtime) error {
		if n < 0 {
			return errors.New("negative maximum stack height")
		}
		rt.Stack.MaxHeight = n
		return nil
	}
}

// WithStderr returns a Config that makes a runtime write debugging output to
// w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(rt *Runtime) error {
		if w == nil {
			return errors.New("nil stderr writer")
		}
		rt.Stderr = w
		return nil
	}
}

// WithTrace returns a Config that makes a runtime write a line to its stderr
// writer each time a function is called or returns.
func WithTrace(on bool) Config {
	return func(rt *Runtime) error {
		rt.Trace = on
		return nil
	}
}

// WithReader returns a Config that makes a runtime use r to parse programs
// passed to Load.
func WithReader(r Reader) Config {
	return func(rt *Runtime) error {
		rt.Reader = r
		return nil
	}
}

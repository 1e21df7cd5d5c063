/*
Package lisptest provides helpers for testing mini-lisp programs end to end,
from source text through the parser and the evaluator.
*/
package lisptest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lefia/mini-lisp/lisp"
	"github.com/Lefia/mini-lisp/parser"
)

// Runner is a test runner for program files.  A program file NAME.lisp is
// run and its print output compared against the contents of NAME.out.  When
// NAME.err exists the program must fail with the error it contains.
type Runner struct {
	// Config is applied to the runtime of every program.
	Config []lisp.Config
}

func (r *Runner) NewRuntime(stdout *bytes.Buffer) (*lisp.Runtime, error) {
	config := append([]lisp.Config{lisp.WithReader(parser.NewReader())}, r.Config...)
	return lisp.NewRuntime(stdout, config...)
}

// RunTestFile runs the program at path as a subtest of t.
func (r *Runner) RunTestFile(t *testing.T, path string) {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	t.Run(filepath.Base(base), func(t *testing.T) {
		source, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Unable to read test file: %v", err)
		}
		expect, err := os.ReadFile(base + ".out")
		if err != nil {
			t.Fatalf("Unable to read expected output: %v", err)
		}
		expectErr, err := os.ReadFile(base + ".err")
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("Unable to read expected error: %v", err)
		}

		var stdout bytes.Buffer
		rt, err := r.NewRuntime(&stdout)
		if err != nil {
			t.Fatal(err)
		}
		err = rt.Load(filepath.Base(path), bytes.NewReader(source))
		switch {
		case err != nil && expectErr == nil:
			t.Error(err)
			var lerr *lisp.Error
			if errors.As(err, &lerr) && lerr.Stack != nil {
				var buf bytes.Buffer
				lerr.Stack.DebugPrint(&buf)
				t.Error(buf.String())
			}
		case err == nil && expectErr != nil:
			t.Errorf("expected error %q", strings.TrimSpace(string(expectErr)))
		case err != nil:
			if ErrorString(err) != strings.TrimSpace(string(expectErr)) {
				t.Errorf("expected error %q (got %q)", strings.TrimSpace(string(expectErr)), ErrorString(err))
			}
		}
		if stdout.String() != string(expect) {
			t.Errorf("expected output %q (got %q)", expect, stdout.String())
		}
	})
}

// RunTestDir runs every program file in dir.
func (r *Runner) RunTestDir(t *testing.T, dir string) {
	files, err := filepath.Glob(filepath.Join(dir, "*.lisp"))
	if err != nil {
		t.Fatalf("Failed to list test files: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("No test files in %s", dir)
	}
	for _, path := range files {
		r.RunTestFile(t, path)
	}
}

// ErrorString formats err without its source location so expected errors
// do not depend on the layout of test input.
func ErrorString(err error) string {
	var lerr *lisp.Error
	if errors.As(err, &lerr) {
		return string(lerr.Condition) + ": " + lerr.Message
	}
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		return "syntax error: " + serr.Message
	}
	return err.Error()
}

// TestSequence is a sequence of mini-lisp statements which are executed
// sequentially by a lisp.Runtime.
type TestSequence []struct {
	Expr   string // a mini-lisp statement
	Result string // the value of an expression statement or an error
	Output string // text printed by the statement
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.Runtimes.
// Definitions made by earlier statements of a sequence are visible to later
// ones.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var stdout bytes.Buffer
		rt, err := lisp.NewRuntime(&stdout)
		if err != nil {
			t.Fatal(err)
		}
		for j, expr := range test.TestSequence {
			stdout.Reset()
			prog, err := parser.ParseString("test", expr.Expr)
			if err != nil {
				if ErrorString(err) != expr.Result {
					t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				}
				continue
			}
			if len(prog.Stmts) == 0 {
				t.Errorf("test %d %q: expr %d: no statement parsed", i, test.Name, j)
				continue
			}
			if len(prog.Stmts) != 1 {
				t.Errorf("test %d %q: expr %d: more than one statement parsed (%d)", i, test.Name, j, len(prog.Stmts))
				continue
			}
			var result string
			v, ok, err := rt.Exec(prog.Stmts[0])
			switch {
			case err != nil:
				result = ErrorString(err)
			case ok:
				result = v.String()
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if stdout.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, stdout.String())
			}
		}
	}
}

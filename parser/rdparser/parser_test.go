package rdparser

import (
	"strings"
	"testing"

	"github.com/Lefia/mini-lisp/lisp"
	"github.com/Lefia/mini-lisp/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(src string) (*lisp.Program, error) {
	p := New(token.NewScanner("test", strings.NewReader(src)))
	return p.ParseProgram()
}

func TestParser(t *testing.T) {
	tests := []struct {
		source string
		result string
	}{
		{"", ""},
		{"1", "1"},
		{"-12", "-12"},
		{"0", "0"},
		{"#t #f", "#t\n#f"},
		{"x", "x"},
		{"(+ 1 2 3)", "(+ 1 2 3)"},
		{"(- 1 2)", "(- 1 2)"},
		{"(mod 7 (/ 9 3))", "(mod 7 (/ 9 3))"},
		{"(and #t (or #f #t) (not #f))", "(and #t (or #f #t) (not #f))"},
		{"(= (> 1 2) (< 1 2))", "(= (> 1 2) (< 1 2))"},
		{"(if (< 1 2) 3 4)", "(if (< 1 2) 3 4)"},
		{"(fun () 1)", "(fun () 1)"},
		{"(fun (x y) (+ x y))", "(fun (x y) (+ x y))"},
		{"(fun (x) (define y 2) (define z 3) (* x y z))", "(fun (x) (define y 2) (define z 3) (* x y z))"},
		{"((fun (x) x) 1)", "((fun (x) x) 1)"},
		{"((add-x 10) 1)", "((add-x 10) 1)"},
		{"(f)", "(f)"},
		{"(define foo 1)", "(define foo 1)"},
		{"(print-num (+ 1 2))", "(print-num (+ 1 2))"},
		{"(print-bool #t)", "(print-bool #t)"},
		{"; comment\n(print-num 1) ; trailing\n", "(print-num 1)"},
		{"(print-num\n  ; inside\n  1)", "(print-num 1)"},
	}
	for i, test := range tests {
		prog, err := parseString(test.source)
		if assert.NoError(t, err, "test %d: %q", i, test.source) {
			assert.Equal(t, test.result, prog.String(), "test %d: %q", i, test.source)
		}
	}
}

func TestParser_nodes(t *testing.T) {
	prog, err := parseString("(define f (fun (a b) (define c 1) (+ a b c)))\n(print-num (f 1 2))")
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 2)
	assert.Equal(t, "test", prog.Name)

	def, ok := prog.Stmts[0].(*lisp.DefineStmt)
	require.True(t, ok)
	assert.Equal(t, "f", def.Name)
	assert.Equal(t, "test:1:1", def.Loc().String())
	fun, ok := def.X.(*lisp.FunExpr)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, fun.Params)
	require.Len(t, fun.Defs, 1)
	assert.Equal(t, "c", fun.Defs[0].Name)
	body, ok := fun.Body.(*lisp.NumExpr)
	require.True(t, ok)
	assert.Equal(t, lisp.OpPlus, body.Op)
	assert.Len(t, body.Args, 3)

	stmt, ok := prog.Stmts[1].(*lisp.PrintStmt)
	require.True(t, ok)
	assert.Equal(t, lisp.PrintNum, stmt.Kind)
	call, ok := stmt.X.(*lisp.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "test:2:12", call.Loc().String())
	assert.Equal(t, "f", call.Func.String())
}

func TestParser_syntaxErrors(t *testing.T) {
	tests := []struct {
		source     string
		message    string
		incomplete bool
	}{
		{"(+)", "test:1:1: syntax error: + expects at least 2 arguments (got 0)", false},
		{"(+ 1)", "test:1:1: syntax error: + expects at least 2 arguments (got 1)", false},
		{"(+ (* 5 2) -)", "test:1:12: syntax error: reserved word - cannot be used as a variable name", false},
		{"(- 1 2 3)", "test:1:1: syntax error: - expects 2 arguments (got 3)", false},
		{"(not #t #f)", "test:1:1: syntax error: not expects 1 argument (got 2)", false},
		{"(and #t)", "test:1:1: syntax error: and expects at least 2 arguments (got 1)", false},
		{"(if #t 1)", "test:1:1: syntax error: if expects 3 arguments (got 2)", false},
		{"()", "test:1:1: syntax error: empty expression", false},
		{")", "test:1:1: syntax error: unexpected )", false},
		{"(1 2)", `test:1:2: syntax error: int "1" is not a function`, false},
		{"(define if 1)", "test:1:9: syntax error: reserved word if cannot be used as a variable name", false},
		{"(define 1 1)", `test:1:9: syntax error: variable name expected (got int "1")`, false},
		{"(define x 1 2)", `test:1:13: syntax error: unexpected int "2" in define form`, false},
		{"(+ 1 (define x 1))", "test:1:7: syntax error: define is a statement, not an expression", false},
		{"(fun (x x) x)", "test:1:9: syntax error: duplicate parameter x", false},
		{"(fun (x))", "test:1:1: syntax error: function body is empty", false},
		{"(fun (x) 1 2)", `test:1:12: syntax error: unexpected int "2" in fun form`, false},
		{"007", "test:1:1: syntax error: invalid integer literal: 007", false},
		{"-0", "test:1:1: syntax error: invalid integer literal: -0", false},
		{"9223372036854775808", "test:1:1: syntax error: integer literal overflows int64: 9223372036854775808", false},
		{"(print-num #x)", `test:1:12: syntax error: invalid boolean literal "#x"`, false},
		{"(print-num \xff)", "test:1:12: syntax error: invalid utf-8 rune", false},
		{"(+ 1\n  \xff)", "test:2:3: syntax error: invalid utf-8 rune", false},
		{"(print-num 1", "test:1:1: syntax error: unmatched (", true},
		{"(define f (fun (x)", "test:1:11: syntax error: unmatched (", true},
		{"(+ 1 (* 2", "test:1:6: syntax error: unmatched (", true},
		{"(fun (a b", "test:1:6: syntax error: unmatched (", true},
		{"(define", "test:1:8: syntax error: unexpected EOF", true},
	}
	for i, test := range tests {
		_, err := parseString(test.source)
		if assert.Error(t, err, "test %d: %q", i, test.source) {
			assert.Equal(t, test.message, err.Error(), "test %d: %q", i, test.source)
			assert.Equal(t, test.incomplete, IsIncomplete(err), "test %d: %q", i, test.source)
		}
	}
}

func TestParser_int64Bounds(t *testing.T) {
	prog, err := parseString("9223372036854775807 -9223372036854775808")
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 2)
	assert.Equal(t, int64(9223372036854775807), prog.Stmts[0].(*lisp.ExprStmt).X.(*lisp.NumLit).Val)
	assert.Equal(t, int64(-9223372036854775808), prog.Stmts[1].(*lisp.ExprStmt).X.(*lisp.NumLit).Val)
}

func TestReader(t *testing.T) {
	r := NewReader()
	prog, err := r.Read("a.lisp", strings.NewReader("(print-num x)"))
	require.NoError(t, err)
	assert.Equal(t, "a.lisp", prog.Name)
	assert.Equal(t, "a.lisp:1:12", prog.Stmts[0].(*lisp.PrintStmt).X.Loc().String())
}

func TestIsReserved(t *testing.T) {
	for _, name := range []string{"define", "fun", "if", "and", "or", "not", "mod", "print-num", "print-bool", "+"} {
		assert.True(t, IsReserved(name), name)
	}
	assert.False(t, IsReserved("x"))
	assert.False(t, IsReserved("define-x"))
}

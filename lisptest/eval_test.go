package lisptest

import "testing"

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"literals", TestSequence{
			{"3", "3", ""},
			{"-3", "-3", ""},
			{"#t", "#t", ""},
			{"#f", "#f", ""},
		}},
		{"arithmetic", TestSequence{
			{"(+ 1 2)", "3", ""},
			{"(+ 1 2 3 4)", "10", ""},
			{"(* 2 3 4)", "24", ""},
			{"(- 1 5)", "-4", ""},
			{"(/ 9 2)", "4", ""},
			{"(/ -9 2)", "-4", ""},
			{"(mod 9 2)", "1", ""},
			{"(mod -9 2)", "-1", ""},
			{"(+ 9223372036854775807 1)", "-9223372036854775808", ""},
		}},
		{"comparison", TestSequence{
			{"(> 2 1)", "#t", ""},
			{"(< 2 1)", "#f", ""},
			{"(= 2 2)", "#t", ""},
			{"(= 2 (+ 1 1))", "#t", ""},
		}},
		{"logic", TestSequence{
			{"(and #t #t)", "#t", ""},
			{"(and #t #f #t)", "#f", ""},
			{"(or #f #f)", "#f", ""},
			{"(or #f #f #t)", "#t", ""},
			{"(not (and #t #f))", "#t", ""},
		}},
		{"if", TestSequence{
			{"(if #t 1 2)", "1", ""},
			{"(if #f 1 2)", "2", ""},
			{"(if (< 1 2) (+ 1 2 3) (* 1 2 3 4 5))", "6", ""},
			{"(if #t 1 undefined)", "1", ""},
			{"(if #f undefined #t)", "#t", ""},
			{"(if 1 2 3)", "type-mismatch: expected boolean but got number", ""},
		}},
		{"print", TestSequence{
			{"(print-num (+ 1 2))", "", "3\n"},
			{"(print-num -7)", "", "-7\n"},
			{"(print-bool (> 1 2))", "", "#f\n"},
			{"(print-bool #t)", "", "#t\n"},
			{"(print-num #t)", "type-mismatch: expected number but got boolean", ""},
			{"(print-bool 0)", "type-mismatch: expected boolean but got number", ""},
			{"(print-num (fun (x) x))", "type-mismatch: expected number but got function", ""},
		}},
		{"functions", TestSequence{
			{"(fun (x) x)", "#<closure (x)>", ""},
			{"(fun () 1)", "#<closure ()>", ""},
			{"((fun (x) x) 1)", "1", ""},
			{"((fun () (+ 1 1)))", "2", ""},
			{"((fun (x y) (+ x y)) 1 2)", "3", ""},
			{"(((fun (x) (fun (y) (* x y))) 3) 4)", "12", ""},
			{"(define double (fun (x) (* x 2)))", "", ""},
			{"(double 21)", "42", ""},
			{"double", "#<closure (x)>", ""},
			{"(define apply-twice (fun (f x) (f (f x))))", "", ""},
			{"(apply-twice double 3)", "12", ""},
			{"(apply-twice (fun (x) (- x 1)) 3)", "1", ""},
		}},
		{"recursion", TestSequence{
			{"(define fact (fun (n) (if (< n 3) n (* n (fact (- n 1))))))", "", ""},
			{"(fact 5)", "120", ""},
			{"(define even (fun (n) (if (= n 0) #t (odd (- n 1)))))", "", ""},
			{"(define odd (fun (n) (if (= n 0) #f (even (- n 1)))))", "", ""},
			{"(even 10)", "#t", ""},
			{"(odd 7)", "#t", ""},
		}},
		{"syntax", TestSequence{
			{"(+)", "syntax error: + expects at least 2 arguments (got 0)", ""},
			{"(+ (* 5 2) -)", "syntax error: reserved word - cannot be used as a variable name", ""},
			{"(define define 1)", "syntax error: reserved word define cannot be used as a variable name", ""},
			{"(mod 1 2 3)", "syntax error: mod expects 2 arguments (got 3)", ""},
		}},
	}
	RunTestSuite(t, tests)
}

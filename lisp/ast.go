package lisp

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/Lefia/mini-lisp/parser/token"
)

// Program is an ordered sequence of statements.  A Program is never modified
// by evaluation so a single Program may be run any number of times.
type Program struct {
	Name  string
	Stmts []Stmt
}

func (p *Program) String() string {
	lines := make([]string, len(p.Stmts))
	for i, s := range p.Stmts {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}

// Node is implemented by every statement and expression.
type Node interface {
	// Loc returns the location of the node in source text.  Loc returns nil
	// for nodes not produced by a parser.
	Loc() *token.Location
	String() string
}

// Stmt is a top-level statement or a definition local to a function.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression that evaluates to a Value.
type Expr interface {
	Node
	exprNode()
}

// PrintKind is the type a print statement coerces its value to.
type PrintKind uint

// Possible PrintKind values
const (
	PrintNum PrintKind = iota
	PrintBool
)

var printKindStrings = []string{
	PrintNum:  "print-num",
	PrintBool: "print-bool",
}

func (k PrintKind) String() string {
	if int(k) >= len(printKindStrings) {
		return "print-invalid"
	}
	return printKindStrings[k]
}

// NumOp is an arithmetic or comparison operator.
type NumOp uint

// Possible NumOp values
const (
	OpPlus NumOp = iota
	OpMinus
	OpMultiply
	OpDivide
	OpModulus
	OpGreater
	OpSmaller
	OpEqual
)

var numOpStrings = []string{
	OpPlus:     "+",
	OpMinus:    "-",
	OpMultiply: "*",
	OpDivide:   "/",
	OpModulus:  "mod",
	OpGreater:  ">",
	OpSmaller:  "<",
	OpEqual:    "=",
}

func (op NumOp) String() string {
	if int(op) >= len(numOpStrings) {
		return "INVALID"
	}
	return numOpStrings[op]
}

// IsFold returns true if op folds over any number of arguments.  All other
// operators are binary.
func (op NumOp) IsFold() bool {
	return op == OpPlus || op == OpMultiply
}

// LookupNumOp returns the operator named by sym.
func LookupNumOp(sym string) (NumOp, bool) {
	for i, s := range numOpStrings {
		if s == sym {
			return NumOp(i), true
		}
	}
	return 0, false
}

// LogicalOp is a boolean operator.
type LogicalOp uint

// Possible LogicalOp values
const (
	OpAnd LogicalOp = iota
	OpOr
	OpNot
)

var logicalOpStrings = []string{
	OpAnd: "and",
	OpOr:  "or",
	OpNot: "not",
}

func (op LogicalOp) String() string {
	if int(op) >= len(logicalOpStrings) {
		return "INVALID"
	}
	return logicalOpStrings[op]
}

// LookupLogicalOp returns the operator named by sym.
func LookupLogicalOp(sym string) (LogicalOp, bool) {
	for i, s := range logicalOpStrings {
		if s == sym {
			return LogicalOp(i), true
		}
	}
	return 0, false
}

// ExprStmt evaluates X and discards the result.
type ExprStmt struct {
	X Expr
}

// PrintStmt evaluates X and writes it to the output sink.
type PrintStmt struct {
	Kind   PrintKind
	X      Expr
	Source *token.Location
}

// DefineStmt binds Name to the value of X in the current environment.
type DefineStmt struct {
	Name   string
	X      Expr
	Source *token.Location
}

func (s *ExprStmt) Loc() *token.Location   { return s.X.Loc() }
func (s *PrintStmt) Loc() *token.Location  { return s.Source }
func (s *DefineStmt) Loc() *token.Location { return s.Source }

func (s *ExprStmt) String() string { return s.X.String() }

func (s *PrintStmt) String() string {
	return "(" + s.Kind.String() + " " + s.X.String() + ")"
}

func (s *DefineStmt) String() string {
	return "(define " + s.Name + " " + s.X.String() + ")"
}

func (*ExprStmt) stmtNode()   {}
func (*PrintStmt) stmtNode()  {}
func (*DefineStmt) stmtNode() {}

// BoolLit is a boolean literal, #t or #f.
type BoolLit struct {
	Val    bool
	Source *token.Location
}

// NumLit is an integer literal.
type NumLit struct {
	Val    int64
	Source *token.Location
}

// Ident is a reference to a variable.
type Ident struct {
	Name   string
	Source *token.Location
}

// NumExpr applies an arithmetic or comparison operator.
type NumExpr struct {
	Op     NumOp
	Args   []Expr
	Source *token.Location
}

// LogicalExpr applies a boolean operator.
type LogicalExpr struct {
	Op     LogicalOp
	Args   []Expr
	Source *token.Location
}

// FunExpr is a function literal.  Defs are executed each time the literal is
// evaluated, in the scope that becomes the closure's environment.
type FunExpr struct {
	Params []string
	Defs   []*DefineStmt
	Body   Expr
	Source *token.Location
}

// CallExpr applies the closure Func evaluates to.
type CallExpr struct {
	Func   Expr
	Args   []Expr
	Source *token.Location
}

// IfExpr evaluates exactly one of Then and Else.
type IfExpr struct {
	Cond   Expr
	Then   Expr
	Else   Expr
	Source *token.Location
}

func (x *BoolLit) Loc() *token.Location     { return x.Source }
func (x *NumLit) Loc() *token.Location      { return x.Source }
func (x *Ident) Loc() *token.Location       { return x.Source }
func (x *NumExpr) Loc() *token.Location     { return x.Source }
func (x *LogicalExpr) Loc() *token.Location { return x.Source }
func (x *FunExpr) Loc() *token.Location     { return x.Source }
func (x *CallExpr) Loc() *token.Location    { return x.Source }
func (x *IfExpr) Loc() *token.Location      { return x.Source }

func (*BoolLit) exprNode()     {}
func (*NumLit) exprNode()      {}
func (*Ident) exprNode()       {}
func (*NumExpr) exprNode()     {}
func (*LogicalExpr) exprNode() {}
func (*FunExpr) exprNode()     {}
func (*CallExpr) exprNode()    {}
func (*IfExpr) exprNode()      {}

func (x *BoolLit) String() string {
	if x.Val {
		return "#t"
	}
	return "#f"
}

func (x *NumLit) String() string { return strconv.FormatInt(x.Val, 10) }

func (x *Ident) String() string { return x.Name }

func (x *NumExpr) String() string {
	return formList(x.Op.String(), x.Args)
}

func (x *LogicalExpr) String() string {
	return formList(x.Op.String(), x.Args)
}

func (x *FunExpr) String() string {
	var buf bytes.Buffer
	buf.WriteString("(fun (")
	buf.WriteString(strings.Join(x.Params, " "))
	buf.WriteString(")")
	for _, d := range x.Defs {
		buf.WriteString(" ")
		buf.WriteString(d.String())
	}
	buf.WriteString(" ")
	buf.WriteString(x.Body.String())
	buf.WriteString(")")
	return buf.String()
}

func (x *CallExpr) String() string {
	return formList(x.Func.String(), x.Args)
}

func (x *IfExpr) String() string {
	return "(if " + x.Cond.String() + " " + x.Then.String() + " " + x.Else.String() + ")"
}

func formList(head string, args []Expr) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(head)
	for _, arg := range args {
		buf.WriteString(" ")
		buf.WriteString(arg.String())
	}
	buf.WriteString(")")
	return buf.String()
}

package rdparser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Lefia/mini-lisp/lisp"
	"github.com/Lefia/mini-lisp/parser/internal/interntoken"
	"github.com/Lefia/mini-lisp/parser/lexer"
	"github.com/Lefia/mini-lisp/parser/token"
)

// Reserved words cannot be used as variable names.
const (
	keywordDefine    = "define"
	keywordFun       = "fun"
	keywordIf        = "if"
	keywordPrintNum  = "print-num"
	keywordPrintBool = "print-bool"
)

var reserved = map[string]bool{
	keywordDefine:    true,
	keywordFun:       true,
	keywordIf:        true,
	keywordPrintNum:  true,
	keywordPrintBool: true,
	"mod":            true,
	"and":            true,
	"or":             true,
	"not":            true,
	"+":              true,
	"-":              true,
	"*":              true,
	"/":              true,
	">":              true,
	"<":              true,
	"=":              true,
}

// IsReserved returns true if name is a keyword or operator and cannot name
// a variable.
func IsReserved(name string) bool {
	return reserved[name]
}

type reader struct {
	intern *interntoken.Table
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.  Identifier text
// is interned across every source the reader parses.
func NewReader() lisp.Reader {
	return &reader{intern: interntoken.NewTable()}
}

// Read implements lisp.Reader.
func (r *reader) Read(name string, src io.Reader) (*lisp.Program, error) {
	s := token.NewScanner(name, src)
	p := NewInterned(s, r.intern)
	return p.ParseProgram()
}

// Parser is a mini-lisp parser.
type Parser struct {
	name string
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	return NewInterned(scanner, nil)
}

// NewInterned returns a Parser whose identifiers are interned in tab.
func NewInterned(scanner *token.Scanner, tab *interntoken.Table) *Parser {
	p := &Parser{
		name: scanner.LocStart().File,
		lex:  lexer.NewInterned(scanner, tab),
	}
	p.initTokens()
	return p
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
}

// ParseProgram parses statements until the end of input.
func (p *Parser) ParseProgram() (*lisp.Program, error) {
	prog := &lisp.Program{Name: p.name}
	for !p.expect(token.EOF) {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

// ParseStatement parses a print statement, a define statement, or an
// expression statement.
func (p *Parser) ParseStatement() (lisp.Stmt, error) {
	if !p.expect(token.PAREN_L) {
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		return &lisp.ExprStmt{X: x}, nil
	}
	open := p.Token()
	if p.PeekType() == token.SYMBOL {
		switch p.Peek().Text {
		case keywordDefine:
			p.ReadToken()
			return p.parseDefine(open)
		case keywordPrintNum, keywordPrintBool:
			p.ReadToken()
			return p.parsePrint(open)
		}
	}
	x, err := p.parseForm(open)
	if err != nil {
		return nil, err
	}
	return &lisp.ExprStmt{X: x}, nil
}

// ParseExpression parses a single expression.
func (p *Parser) ParseExpression() (lisp.Expr, error) {
	switch p.PeekType() {
	case token.INT:
		return p.ParseLiteralInt()
	case token.BOOL:
		return p.ParseLiteralBool()
	case token.SYMBOL:
		return p.ParseIdent()
	case token.PAREN_L:
		p.ReadToken()
		return p.parseForm(p.Token())
	case token.EOF:
		p.ReadToken()
		return nil, p.incompletef("unexpected EOF")
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return nil, p.errorf("%s", p.Token().Text)
	default:
		p.ReadToken()
		return nil, p.errorf("unexpected %s", p.Token().Type)
	}
}

func (p *Parser) ParseLiteralInt() (*lisp.NumLit, error) {
	if !p.expect(token.INT) {
		return nil, p.errorf("invalid integer literal: %v", p.PeekType())
	}
	text := p.Token().Text
	digits := strings.TrimPrefix(text, "-")
	if strings.HasPrefix(digits, "0") && text != "0" {
		return nil, p.errorf("invalid integer literal: %v", text)
	}
	x, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, p.errorf("integer literal overflows int64: %v", text)
	}
	return &lisp.NumLit{Val: x, Source: p.Token().Source}, nil
}

func (p *Parser) ParseLiteralBool() (*lisp.BoolLit, error) {
	if !p.expect(token.BOOL) {
		return nil, p.errorf("invalid boolean literal: %v", p.PeekType())
	}
	switch p.Token().Text {
	case "#t":
		return &lisp.BoolLit{Val: true, Source: p.Token().Source}, nil
	case "#f":
		return &lisp.BoolLit{Val: false, Source: p.Token().Source}, nil
	default:
		return nil, p.errorf("invalid boolean literal: %v", p.Token().Text)
	}
}

func (p *Parser) ParseIdent() (*lisp.Ident, error) {
	name, err := p.parseName("variable")
	if err != nil {
		return nil, err
	}
	return &lisp.Ident{Name: name, Source: p.Token().Source}, nil
}

// parseName reads a symbol that names a variable.
func (p *Parser) parseName(what string) (string, error) {
	if !p.expect(token.SYMBOL) {
		p.ReadToken()
		if p.Token().Type == token.EOF {
			return "", p.incompletef("unexpected EOF")
		}
		return "", p.errorf("%s name expected (got %v)", what, p.Token())
	}
	name := p.Token().Text
	if IsReserved(name) {
		return "", p.errorf("reserved word %s cannot be used as a %s name", name, what)
	}
	return name, nil
}

// parseForm parses the remainder of a parenthesized expression following
// the open parenthesis.
func (p *Parser) parseForm(open *token.Token) (lisp.Expr, error) {
	switch p.PeekType() {
	case token.PAREN_R:
		p.ReadToken()
		return nil, p.errorAt(open.Source, "empty expression")
	case token.EOF:
		return nil, p.unmatched(open)
	case token.SYMBOL:
		head := p.Peek().Text
		if op, ok := lisp.LookupNumOp(head); ok {
			p.ReadToken()
			return p.parseNumExpr(open, op)
		}
		if op, ok := lisp.LookupLogicalOp(head); ok {
			p.ReadToken()
			return p.parseLogicalExpr(open, op)
		}
		switch head {
		case keywordFun:
			p.ReadToken()
			return p.parseFun(open)
		case keywordIf:
			p.ReadToken()
			return p.parseIf(open)
		case keywordDefine, keywordPrintNum, keywordPrintBool:
			p.ReadToken()
			return nil, p.errorf("%s is a statement, not an expression", head)
		}
		return p.parseCall(open)
	case token.PAREN_L:
		return p.parseCall(open)
	default:
		p.ReadToken()
		if p.Token().Type == token.ERROR || p.Token().Type == token.INVALID {
			return nil, p.errorf("%s", p.Token().Text)
		}
		return nil, p.errorf("%v is not a function", p.Token())
	}
}

func (p *Parser) parseDefine(open *token.Token) (*lisp.DefineStmt, error) {
	name, err := p.parseName("variable")
	if err != nil {
		return nil, err
	}
	x, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	err = p.expectClose(open, keywordDefine)
	if err != nil {
		return nil, err
	}
	return &lisp.DefineStmt{Name: name, X: x, Source: open.Source}, nil
}

func (p *Parser) parsePrint(open *token.Token) (*lisp.PrintStmt, error) {
	kind := lisp.PrintNum
	if p.Token().Text == keywordPrintBool {
		kind = lisp.PrintBool
	}
	x, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	err = p.expectClose(open, kind.String())
	if err != nil {
		return nil, err
	}
	return &lisp.PrintStmt{Kind: kind, X: x, Source: open.Source}, nil
}

func (p *Parser) parseNumExpr(open *token.Token, op lisp.NumOp) (*lisp.NumExpr, error) {
	args, err := p.parseArgs(open)
	if err != nil {
		return nil, err
	}
	if op.IsFold() {
		if len(args) < 2 {
			return nil, p.errorAt(open.Source, "%v expects at least 2 arguments (got %d)", op, len(args))
		}
	} else if len(args) != 2 {
		return nil, p.errorAt(open.Source, "%v expects 2 arguments (got %d)", op, len(args))
	}
	return &lisp.NumExpr{Op: op, Args: args, Source: open.Source}, nil
}

func (p *Parser) parseLogicalExpr(open *token.Token, op lisp.LogicalOp) (*lisp.LogicalExpr, error) {
	args, err := p.parseArgs(open)
	if err != nil {
		return nil, err
	}
	if op == lisp.OpNot {
		if len(args) != 1 {
			return nil, p.errorAt(open.Source, "%v expects 1 argument (got %d)", op, len(args))
		}
	} else if len(args) < 2 {
		return nil, p.errorAt(open.Source, "%v expects at least 2 arguments (got %d)", op, len(args))
	}
	return &lisp.LogicalExpr{Op: op, Args: args, Source: open.Source}, nil
}

func (p *Parser) parseIf(open *token.Token) (*lisp.IfExpr, error) {
	args, err := p.parseArgs(open)
	if err != nil {
		return nil, err
	}
	if len(args) != 3 {
		return nil, p.errorAt(open.Source, "if expects 3 arguments (got %d)", len(args))
	}
	return &lisp.IfExpr{Cond: args[0], Then: args[1], Else: args[2], Source: open.Source}, nil
}

func (p *Parser) parseCall(open *token.Token) (*lisp.CallExpr, error) {
	fun, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	switch fun.(type) {
	case *lisp.Ident, *lisp.FunExpr, *lisp.CallExpr, *lisp.IfExpr:
	default:
		return nil, p.errorAt(fun.Loc(), "%v is not a function", fun)
	}
	args, err := p.parseArgs(open)
	if err != nil {
		return nil, err
	}
	return &lisp.CallExpr{Func: fun, Args: args, Source: open.Source}, nil
}

// parseFun parses a function literal following the keyword fun.
func (p *Parser) parseFun(open *token.Token) (*lisp.FunExpr, error) {
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	fun := &lisp.FunExpr{Params: params, Source: open.Source}
	for {
		if !p.expect(token.PAREN_L) {
			if p.PeekType() == token.EOF {
				return nil, p.unmatched(open)
			}
			if p.PeekType() == token.PAREN_R {
				p.ReadToken()
				return nil, p.errorAt(open.Source, "function body is empty")
			}
			fun.Body, err = p.ParseExpression()
			if err != nil {
				return nil, err
			}
			break
		}
		inner := p.Token()
		if p.PeekType() == token.SYMBOL && p.Peek().Text == keywordDefine {
			p.ReadToken()
			def, err := p.parseDefine(inner)
			if err != nil {
				return nil, err
			}
			fun.Defs = append(fun.Defs, def)
			continue
		}
		fun.Body, err = p.parseForm(inner)
		if err != nil {
			return nil, err
		}
		break
	}
	err = p.expectClose(open, keywordFun)
	if err != nil {
		return nil, err
	}
	return fun, nil
}

func (p *Parser) parseParams() ([]string, error) {
	if !p.expect(token.PAREN_L) {
		p.ReadToken()
		if p.Token().Type == token.EOF {
			return nil, p.incompletef("unexpected EOF")
		}
		return nil, p.errorf("parameter list expected (got %v)", p.Token())
	}
	open := p.Token()
	params := []string{}
	seen := make(map[string]bool)
	for !p.expect(token.PAREN_R) {
		if p.PeekType() == token.EOF {
			return nil, p.unmatched(open)
		}
		name, err := p.parseName("parameter")
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, p.errorf("duplicate parameter %s", name)
		}
		seen[name] = true
		params = append(params, name)
	}
	return params, nil
}

// parseArgs parses expressions until the parenthesis matching open.
func (p *Parser) parseArgs(open *token.Token) ([]lisp.Expr, error) {
	var args []lisp.Expr
	for !p.expect(token.PAREN_R) {
		if p.PeekType() == token.EOF {
			return nil, p.unmatched(open)
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, x)
	}
	return args, nil
}

func (p *Parser) expectClose(open *token.Token, form string) error {
	if p.expect(token.PAREN_R) {
		return nil
	}
	if p.PeekType() == token.EOF {
		return p.unmatched(open)
	}
	p.ReadToken()
	if p.Token().Type == token.ERROR || p.Token().Type == token.INVALID {
		return p.errorf("%s", p.Token().Text)
	}
	return p.errorf("unexpected %v in %s form", p.Token(), form)
}

// ReadToken advances the parser one token, skipping comments.
func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	for p.peek.Type == token.COMMENT {
		p.peek = p.lex.NextToken()
	}
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	if len(typ) == 0 {
		return peekType != token.EOF
	}
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) unmatched(open *token.Token) error {
	err := p.errorAt(open.Source, "unmatched %s", open.Text)
	err.Incomplete = true
	return err
}

func (p *Parser) errorf(format string, v ...interface{}) *SyntaxError {
	var loc *token.Location
	if p.curr != nil {
		loc = p.curr.Source
	}
	return p.errorAt(loc, format, v...)
}

func (p *Parser) incompletef(format string, v ...interface{}) *SyntaxError {
	err := p.errorf(format, v...)
	err.Incomplete = true
	return err
}

func (p *Parser) errorAt(loc *token.Location, format string, v ...interface{}) *SyntaxError {
	return &SyntaxError{
		Source:  loc,
		Message: fmt.Sprintf(format, v...),
	}
}

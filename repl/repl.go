package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Lefia/mini-lisp/lisp"
	"github.com/Lefia/mini-lisp/parser"
	"github.com/chzyer/readline"
)

// RunRepl runs a simple repl
func RunRepl(prompt string, config ...lisp.Config) {
	s, err := NewSession(os.Stdout, os.Stderr, config...)
	if err != nil {
		errln(err)
		return
	}

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			s.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if s.Input(line) {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}
	if err != io.EOF {
		errln(err)
		return
	}
	errln("done")
}

// Session is the state of a repl: a runtime whose definitions persist
// between inputs and any partial input waiting to be completed.
type Session struct {
	Runtime *lisp.Runtime
	stdout  io.Writer
	stderr  io.Writer
	buf     []byte
}

// NewSession returns a Session that prints to stdout and reports errors to
// stderr.
func NewSession(stdout, stderr io.Writer, config ...lisp.Config) (*Session, error) {
	config = append([]lisp.Config{lisp.WithStderr(stderr)}, config...)
	rt, err := lisp.NewRuntime(stdout, config...)
	if err != nil {
		return nil, err
	}
	return &Session{
		Runtime: rt,
		stdout:  stdout,
		stderr:  stderr,
	}, nil
}

// Input evaluates line, appended to any incomplete input already received.
// Input returns true if the text so far ends inside an open form and more
// input is needed.
func (s *Session) Input(line []byte) bool {
	if len(s.buf) != 0 {
		s.buf = append(s.buf, '\n')
	}
	s.buf = append(s.buf, line...)
	if len(strings.TrimSpace(string(s.buf))) == 0 {
		s.buf = nil
		return false
	}
	prog, err := parser.ParseString("repl", string(s.buf))
	if parser.IsIncomplete(err) {
		return true
	}
	s.buf = nil
	if err != nil {
		fmt.Fprintln(s.stderr, err)
		return false
	}
	for _, stmt := range prog.Stmts {
		v, ok, err := s.Runtime.Exec(stmt)
		if err != nil {
			fmt.Fprintln(s.stderr, err)
			return false
		}
		if ok {
			fmt.Fprintln(s.stdout, v)
		}
	}
	return false
}

// Reset discards incomplete input.
func (s *Session) Reset() {
	s.buf = nil
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}

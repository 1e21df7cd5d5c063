package rdparser

import (
	"errors"

	"github.com/Lefia/mini-lisp/parser/token"
)

// SyntaxError is returned when source text does not conform to the grammar.
type SyntaxError struct {
	Source  *token.Location
	Message string
	// Incomplete is true when input ended inside an unterminated form.  More
	// input may turn the text into a valid program.
	Incomplete bool
}

func (err *SyntaxError) Error() string {
	return err.Source.String() + ": syntax error: " + err.Message
}

// IsIncomplete returns true if err is a SyntaxError caused by input that
// ended before all open forms were closed.
func IsIncomplete(err error) bool {
	var serr *SyntaxError
	return errors.As(err, &serr) && serr.Incomplete
}

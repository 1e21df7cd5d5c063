package lisp

import "io"

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read the contents of r and return the program it contains.  The name
	// identifies the source in error locations.
	Read(name string, r io.Reader) (*Program, error)
}

package lisptest

import (
	"testing"

	"github.com/Lefia/mini-lisp/lisp"
)

func TestPrograms(t *testing.T) {
	r := &Runner{}
	r.RunTestDir(t, "testdata")
}

func TestPrograms_boundedStack(t *testing.T) {
	r := &Runner{Config: []lisp.Config{lisp.WithMaximumStackHeight(1000)}}
	r.RunTestFile(t, "testdata/recursion_1.lisp")
	r.RunTestFile(t, "testdata/recursion_2.lisp")
}

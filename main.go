package main

import "github.com/Lefia/mini-lisp/cmd"

func main() {
	cmd.Execute()
}

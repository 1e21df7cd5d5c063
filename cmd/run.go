package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/Lefia/mini-lisp/lisp"
	"github.com/Lefia/mini-lisp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runStackTrace bool
	runMaxStack   int
	runTrace      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE...",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := lisp.NewRuntime(os.Stdout,
			lisp.WithReader(parser.NewReader()),
			lisp.WithStderr(os.Stderr),
			lisp.WithMaximumStackHeight(runMaxStack),
			lisp.WithTrace(runTrace))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for i, arg := range args {
			if runExpression {
				err = rt.LoadString(fmt.Sprintf("expr%d", i+1), arg)
			} else {
				err = rt.LoadFile(arg)
			}
			if err != nil {
				runReportError(rt, err)
				os.Exit(1)
			}
		}
	},
}

func runReportError(rt *lisp.Runtime, err error) {
	fmt.Fprintln(rt.Stderr, err)
	var lerr *lisp.Error
	if runStackTrace && errors.As(err, &lerr) && lerr.Stack != nil {
		lerr.Stack.DebugPrint(rt.Stderr)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVar(&runStackTrace, "stack-trace", false,
		"Print a stack trace when a runtime error occurs")
	runCmd.Flags().IntVar(&runMaxStack, "max-stack", 0,
		"Maximum number of active function calls (0 is unlimited)")
	runCmd.Flags().BoolVar(&runTrace, "trace", false,
		"Print function calls and returns to stderr")
}

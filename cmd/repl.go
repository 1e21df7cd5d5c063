package cmd

import (
	"github.com/Lefia/mini-lisp/lisp"
	"github.com/Lefia/mini-lisp/repl"
	"github.com/spf13/cobra"
)

var (
	replPrompt   string
	replMaxStack int
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session.  Statements are executed as soon as they
are complete and the value of each expression is printed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(replPrompt, lisp.WithMaximumStackHeight(replMaxStack))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", "minilisp> ",
		"Prompt displayed when waiting for input")
	replCmd.Flags().IntVar(&replMaxStack, "max-stack", 10000,
		"Maximum number of active function calls (0 is unlimited)")
}

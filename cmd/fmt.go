package cmd

import (
	"fmt"
	"os"

	"github.com/Lefia/mini-lisp/parser"
	"github.com/spf13/cobra"
)

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt FILE",
	Short: "Print a program in canonical form",
	Long: `Parse a program and print each statement on its own line in canonical
form.  Comments are not preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		prog, err := parser.Parse(args[0], f)
		if err != nil {
			return err
		}
		for _, stmt := range prog.Stmts {
			fmt.Fprintln(cmd.OutOrStdout(), stmt)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an expression and print its truth value",
	Long: `Evaluate an expression and print true or false.

Variable values come from --vars-file and --var. If a variable has no
value and the session is interactive you'll be asked for it; answers are
saved to --vars-file when one is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eval, err := newEvaluator(cmd)
		if err != nil {
			return err
		}

		result, err := eval.Evaluate(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/torvand/proplog/src/tui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively",
	Long: `Read one expression per line and print its truth value. Variable
values given with --vars-file and --var carry over between expressions,
as do any values answered interactively. Type "exit" or press ctrl-d to
leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eval, err := newEvaluator(cmd)
		if err != nil {
			return err
		}

		terminal := tui.New()
		terminal.SetInput(cmd.InOrStdin())
		terminal.SetOutput(cmd.OutOrStdout())
		eval.SetTerminal(terminal)

		for {
			line, ok := terminal.ReadLine("> ")
			if !ok {
				return nil
			}

			expression := strings.TrimSpace(line)
			switch expression {
			case "":
				continue
			case "exit", "quit":
				return nil
			}

			result, err := eval.Evaluate(expression)
			if err != nil {
				// a bad expression shouldn't end the session
				terminal.Printf("error: %s\n", err)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/torvand/proplog/src/logic"
	"github.com/torvand/proplog/src/truthtable"
)

var tableCmd = &cobra.Command{
	Use:   "table <expression>",
	Short: "Print the truth table of an expression",
	Long: `Parse an expression and print it back fully parenthesized,
followed by its truth table with one row per possible assignment.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		node, err := logic.Parse(args[0])
		if err != nil {
			return err
		}

		table, err := truthtable.New(node)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, node)
		return table.Write(out)
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

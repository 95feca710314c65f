package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/torvand/proplog/src/assignment"
	"github.com/torvand/proplog/src/environment"
	"github.com/torvand/proplog/src/evaluator"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "proplog",
	Short: "A parser and evaluator for propositional logic.",
	Long: `A parser and evaluator for propositional-logic expressions.

Expressions are built from variables, the literals T and F, and the
operators ~ (not), && (and), || (or) and -> (implies), with parentheses
for grouping. For example:

  proplog eval --var a=true --var b=false '(a && b) || ~b'
  proplog table 'a -> b -> c'`,
	SilenceUsage: true,
}

// Execute runs the command tree. Any lex, syntax or evaluation error is
// printed by cobra and turns into a non-zero exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringArray("var", nil, "variable value as name=value, may be repeated")
	rootCmd.PersistentFlags().String("vars-file", "", "CSV or YAML file with variable values")
	rootCmd.PersistentFlags().Bool("interactive", false, "always ask for unbound variable values")
	rootCmd.PersistentFlags().Bool("no-interactive", false, "never ask for unbound variable values")
}

// newEvaluator builds an evaluator from the persistent flags: values from
// --vars-file first, then --var pairs on top, so the command line wins.
// Interactive answers are persisted back to --vars-file when one is given.
func newEvaluator(cmd *cobra.Command) (*evaluator.Evaluator, error) {
	if err := applyInteractiveFlags(cmd); err != nil {
		return nil, err
	}

	values := make(map[string]bool)

	var store *assignment.Store
	if varsFile, _ := cmd.Flags().GetString("vars-file"); varsFile != "" {
		store = assignment.NewStore(varsFile)

		fromFile, err := store.Read()
		if err != nil {
			return nil, err
		}
		for name, value := range fromFile {
			values[name] = value
		}
	}

	pairs, _ := cmd.Flags().GetStringArray("var")
	fromFlags, err := assignment.Parse(pairs)
	if err != nil {
		return nil, err
	}
	for name, value := range fromFlags {
		values[name] = value
	}

	eval := evaluator.New(values)
	if store != nil {
		eval.PersistTo(store)
	}
	return eval, nil
}

func applyInteractiveFlags(cmd *cobra.Command) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	noInteractive, _ := cmd.Flags().GetBool("no-interactive")

	if interactive && noInteractive {
		return fmt.Errorf("--interactive and --no-interactive are mutually exclusive")
	}
	if interactive {
		environment.ForceSetInteractive(true)
	}
	if noInteractive {
		environment.ForceSetInteractive(false)
	}
	return nil
}

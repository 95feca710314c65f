package e2e_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/torvand/proplog/src/assignment"
	"github.com/torvand/proplog/src/environment"
	"github.com/torvand/proplog/src/evaluator"
	helpers_test "github.com/torvand/proplog/src/helpers"
	"github.com/torvand/proplog/src/logic"
	"github.com/torvand/proplog/src/truthtable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full flow: variable values come from a file on disk, several expressions
// are evaluated against them, and an unbound variable in a non-interactive
// session produces a logged hint and an error.
func TestEvaluateWithAssignmentFile(t *testing.T) {
	// Capture log output
	var logOutput bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&logOutput, nil)))

	environment.ForceSetInteractive(false)
	t.Cleanup(environment.ClearInteractiveOverride)

	varsFile := helpers_test.CreateTempFileWithContents(t, "vars.yaml", `
rainy: true
weekend: false
holiday: false
`)

	eval, err := evaluator.NewFromStore(assignment.NewStore(varsFile))
	require.NoError(t, err)

	tests := map[string]bool{
		"rainy":                          true,
		"weekend || holiday":             false,
		"rainy -> ~(weekend || holiday)": true,
		"~rainy && weekend":              false,
	}
	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			result, err := eval.Evaluate(expression)
			require.NoError(t, err)

			assert.Equal(t, expected, result)
		})
	}

	t.Run("unbound variable", func(t *testing.T) {
		_, err := eval.Evaluate("rainy && sick")

		var unbound *logic.UnboundVariableError
		require.ErrorAs(t, err, &unbound)
		assert.Equal(t, "sick", unbound.Name)

		assert.Contains(t, logOutput.String(), "sick")
		assert.Contains(t, logOutput.String(), "--var sick=true")
	})
}

// Full flow for the truth-table surface: parse, render, and classify.
func TestTruthTableEndToEnd(t *testing.T) {
	node, err := logic.Parse("(a && b) -> a")
	require.NoError(t, err)

	table, err := truthtable.New(node)
	require.NoError(t, err)
	assert.True(t, table.Tautology())

	var rendered bytes.Buffer
	require.NoError(t, table.Write(&rendered))

	expected := `a b | ((a && b) -> a)
----+----------------
T T | T
T F | T
F T | T
F F | T
`
	assert.Equal(t, expected, rendered.String())
}

package truthtable_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/torvand/proplog/src/logic"
	"github.com/torvand/proplog/src/truthtable"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	node, err := logic.Parse("a && b")
	require.NoError(t, err)

	table, err := truthtable.New(node)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, table.Vars)

	// first variable varies slowest, true before false
	expectedRows := []truthtable.Row{
		{Values: []bool{true, true}, Result: true},
		{Values: []bool{true, false}, Result: false},
		{Values: []bool{false, true}, Result: false},
		{Values: []bool{false, false}, Result: false},
	}
	assert.Equal(t, expectedRows, table.Rows)
}

func TestNewWithoutVariables(t *testing.T) {
	node, err := logic.Parse("T && ~F")
	require.NoError(t, err)

	table, err := truthtable.New(node)
	require.NoError(t, err)

	assert.Empty(t, table.Vars)
	assert.Equal(t, []truthtable.Row{{Values: []bool{}, Result: true}}, table.Rows)
}

func TestNewRefusesTooManyVariables(t *testing.T) {
	// chain together more variables than the cap allows
	node := logic.Var("vA")
	for i := 1; i <= truthtable.MaxVars; i++ {
		node = logic.Or(node, logic.Var(fmt.Sprintf("v%c", 'A'+i)))
	}

	_, err := truthtable.New(node)
	assert.ErrorContains(t, err, "refusing")
}

func TestSatisfied(t *testing.T) {
	testCases := map[string]int{
		"a":       1, // of 2 rows
		"a && b":  1, // of 4 rows
		"a || b":  3,
		"a -> b":  3,
		"a || ~a": 2,
		"a && ~a": 0,
		"T":       1,
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			node, err := logic.Parse(expression)
			require.NoError(t, err)

			table, err := truthtable.New(node)
			require.NoError(t, err)

			assert.Equal(t, expected, table.Satisfied())

			// cross-check the count against the row results themselves
			ratios := lo.Map(table.Rows, func(row truthtable.Row, _ int) float64 {
				if row.Result {
					return 1
				}
				return 0
			})
			mean, err := stats.Mean(ratios)
			require.NoError(t, err)
			assert.InDelta(t, float64(expected)/float64(len(table.Rows)), mean, 0.0001)
		})
	}
}

func TestTautologyAndContradiction(t *testing.T) {
	testCases := map[string]struct {
		tautology     bool
		contradiction bool
	}{
		"a || ~a":       {tautology: true},
		"a -> a":        {tautology: true},
		"(a && b) -> a": {tautology: true},
		"a && ~a":       {contradiction: true},
		"~(a -> a)":     {contradiction: true},
		"a && b":        {},
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			node, err := logic.Parse(expression)
			require.NoError(t, err)

			table, err := truthtable.New(node)
			require.NoError(t, err)

			assert.Equal(t, expected.tautology, table.Tautology())
			assert.Equal(t, expected.contradiction, table.Contradiction())
		})
	}
}

func TestWrite(t *testing.T) {
	node, err := logic.Parse("a && b")
	require.NoError(t, err)

	table, err := truthtable.New(node)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	expected := `a b | (a && b)
----+---------
T T | T
T F | F
F T | F
F F | F
`
	assert.Equal(t, expected, buf.String())
}

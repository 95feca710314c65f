package truthtable

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/torvand/proplog/src/logic"
)

// MaxVars is the largest number of distinct variables a table is built for.
// Every variable doubles the row count, so 16 variables already means 65536
// rows.
const MaxVars = 16

// Row is one line of a truth table: the variable values in the table's Vars
// order, and what the expression evaluates to under them.
type Row struct {
	Values []bool
	Result bool
}

// Table holds the truth table of one expression: every possible assignment
// over its variables together with the expression's value.
type Table struct {
	Expression *logic.Node
	Vars       []string
	Rows       []Row
}

// New builds the truth table for the given expression. Rows are ordered with
// the first variable varying slowest and true before false. Expressions with
// more than MaxVars variables are refused.
func New(expression *logic.Node) (*Table, error) {
	vars := expression.Vars()
	if len(vars) > MaxVars {
		return nil, fmt.Errorf("expression has %d variables, refusing to build a table for more than %d", len(vars), MaxVars)
	}

	table := &Table{
		Expression: expression,
		Vars:       vars,
	}
	if err := table.fill(make(map[string]bool, len(vars)), 0); err != nil {
		return nil, err
	}
	return table, nil
}

func (t *Table) fill(assignment map[string]bool, i int) error {
	if i < len(t.Vars) {
		for _, value := range []bool{true, false} {
			assignment[t.Vars[i]] = value
			if err := t.fill(assignment, i+1); err != nil {
				return err
			}
		}
		return nil
	}

	result, err := t.Expression.Eval(assignment)
	if err != nil {
		// every variable is bound by construction, so this only fires on a
		// malformed tree
		return fmt.Errorf("failed to evaluate row %v: %w", assignment, err)
	}

	values := lo.Map(t.Vars, func(name string, _ int) bool {
		return assignment[name]
	})
	t.Rows = append(t.Rows, Row{Values: values, Result: result})
	return nil
}

// Satisfied returns the number of rows where the expression is true.
func (t *Table) Satisfied() int {
	return lo.CountBy(t.Rows, func(row Row) bool {
		return row.Result
	})
}

// Tautology reports whether the expression is true in every row.
func (t *Table) Tautology() bool {
	return t.Satisfied() == len(t.Rows)
}

// Contradiction reports whether the expression is false in every row.
func (t *Table) Contradiction() bool {
	return t.Satisfied() == 0
}

// Write renders the table, e.g. for "a && b":
//
//	a b | (a && b)
//	----+---------
//	T T | T
//	T F | F
//	F T | F
//	F F | F
func (t *Table) Write(w io.Writer) error {
	expression := t.Expression.String()

	header := strings.Join(t.Vars, " ") + " | " + expression
	separator := strings.Repeat("--", len(t.Vars)) + "+-" + strings.Repeat("-", len(expression))
	if _, err := fmt.Fprintf(w, "%s\n%s\n", header, separator); err != nil {
		return err
	}

	for _, row := range t.Rows {
		cells := lo.Map(row.Values, func(value bool, _ int) string {
			return torf(value)
		})
		line := strings.Join(cells, " ") + " | " + torf(row.Result)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func torf(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

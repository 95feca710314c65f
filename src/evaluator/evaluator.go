package evaluator

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/torvand/proplog/src/assignment"
	"github.com/torvand/proplog/src/environment"
	"github.com/torvand/proplog/src/logic"
	"github.com/torvand/proplog/src/tui"
)

// Evaluator parses expressions and evaluates them against a variable
// assignment. When an expression references a variable with no value and the
// session is interactive, the user is asked for the value, which is
// remembered for the rest of the session and optionally persisted to an
// assignment file.
type Evaluator struct {
	values   map[string]bool
	store    *assignment.Store
	terminal *tui.TUI
}

// New creates an Evaluator over the given variable values. The map is copied
// so later interactive answers don't leak back into the caller's map.
func New(values map[string]bool) *Evaluator {
	copied := make(map[string]bool, len(values))
	maps.Copy(copied, values)

	return &Evaluator{
		values:   copied,
		terminal: tui.New(),
	}
}

// NewFromStore creates an Evaluator whose values are loaded from the given
// store. Interactive answers are written back to it.
func NewFromStore(store *assignment.Store) (*Evaluator, error) {
	values, err := store.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to load variable values: %w", err)
	}

	evaluator := New(values)
	evaluator.store = store
	return evaluator, nil
}

// PersistTo makes interactive answers get written to the given store.
func (e *Evaluator) PersistTo(store *assignment.Store) {
	e.store = store
}

// SetTerminal replaces the terminal used for interactive questions. Mostly a
// test seam.
func (e *Evaluator) SetTerminal(terminal *tui.TUI) {
	e.terminal = terminal
}

// Set gives the named variable a value, overriding any previous one.
func (e *Evaluator) Set(name string, value bool) {
	e.values[name] = value
}

// Evaluate parses the expression and returns its truth value under the
// evaluator's assignment.
func (e *Evaluator) Evaluate(expression string) (bool, error) {
	node, err := logic.Parse(expression)
	if err != nil {
		return false, fmt.Errorf("failed to parse expression %q: %w", expression, err)
	}
	return e.EvaluateTree(node)
}

// EvaluateTree evaluates an already parsed expression, resolving unbound
// variables interactively when possible.
func (e *Evaluator) EvaluateTree(node *logic.Node) (bool, error) {
	for {
		result, err := node.Eval(e.values)

		var unbound *logic.UnboundVariableError
		if errors.As(err, &unbound) {
			if !environment.IsInteractive() {
				slog.Warn("Expression references a variable with no value. Give it one and run again.",
					"variable", unbound.Name,
					"hint", fmt.Sprintf("for example, pass --var %s=true", unbound.Name),
				)
				return false, err
			}

			value := e.terminal.AskYesNo("Variable %q has no value. Is it true? [y/N]: ", unbound.Name)
			e.values[unbound.Name] = value
			e.persist()
			continue
		}
		if err != nil {
			return false, fmt.Errorf("failed to evaluate %s: %w", node, err)
		}
		return result, nil
	}
}

func (e *Evaluator) persist() {
	if e.store == nil {
		return
	}

	if err := e.store.Write(e.values); err != nil {
		// not being able to save an answer shouldn't fail the evaluation
		slog.Warn("failed to save variable values",
			"path", e.store.Path(),
			"error", err,
		)
	}
}

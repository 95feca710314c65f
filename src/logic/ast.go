package logic

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Kind tells us what type of node we're looking at.
type Kind int

const (
	KindTrue Kind = iota
	KindFalse
	KindVar
	KindNot
	KindAnd
	KindOr
	KindImplies
)

// Node is one node of a parsed expression tree. Which fields are set depends
// on Kind: Name is only set for KindVar, Left is the sole operand of KindNot,
// and Left/Right are both set for the binary kinds. Trees are immutable after
// construction and can be evaluated any number of times with different
// assignments.
//
// The expression (a || b) && ~c is the tree
//
//	       &&
//	      /  \
//	     ||    ~
//	    /  \   |
//	   a    b  c
//
// which is built with And(Or(Var("a"), Var("b")), Not(Var("c"))).
type Node struct {
	Kind  Kind
	Name  string
	Left  *Node
	Right *Node
}

// True returns the boolean literal T.
func True() *Node {
	return &Node{Kind: KindTrue}
}

// False returns the boolean literal F.
func False() *Node {
	return &Node{Kind: KindFalse}
}

// Var returns a variable reference. Its value comes from the assignment
// passed to Eval.
func Var(name string) *Node {
	return &Node{Kind: KindVar, Name: name}
}

// Not returns the negation ~x.
func Not(x *Node) *Node {
	return &Node{Kind: KindNot, Left: x}
}

// And returns the conjunction l && r.
func And(l, r *Node) *Node {
	return &Node{Kind: KindAnd, Left: l, Right: r}
}

// Or returns the disjunction l || r.
func Or(l, r *Node) *Node {
	return &Node{Kind: KindOr, Left: l, Right: r}
}

// Implies returns the implication l -> r, with l the antecedent and r the
// consequent. Unlike And and Or the operand order matters: T -> F is false
// while F -> T is true.
func Implies(l, r *Node) *Node {
	return &Node{Kind: KindImplies, Left: l, Right: r}
}

// Eval computes the truth value of the subtree rooted at n under the given
// variable assignment. It is a pure function: the tree is never modified and
// the same inputs always produce the same result. Referencing a variable
// missing from the assignment fails with an UnboundVariableError; both
// operands of && and || are evaluated left to right, so the leftmost unbound
// variable is the one reported.
func (n *Node) Eval(assignment map[string]bool) (bool, error) {
	switch n.Kind {
	case KindTrue:
		return true, nil
	case KindFalse:
		return false, nil
	case KindVar:
		value, ok := assignment[n.Name]
		if !ok {
			return false, NewUnboundVariableError(n.Name)
		}
		return value, nil
	case KindNot:
		value, err := n.Left.Eval(assignment)
		if err != nil {
			return false, err
		}
		return !value, nil
	}

	left, err := n.Left.Eval(assignment)
	if err != nil {
		return false, err
	}
	right, err := n.Right.Eval(assignment)
	if err != nil {
		return false, err
	}

	switch n.Kind {
	case KindAnd:
		return left && right, nil
	case KindOr:
		return left || right, nil
	case KindImplies:
		return !left || right, nil
	}

	return false, fmt.Errorf("unknown node kind: %v", n.Kind)
}

// String renders the expression with binary operators fully parenthesized,
// e.g. "((a && b) || ~c)".
func (n *Node) String() string {
	switch n.Kind {
	case KindTrue:
		return "T"
	case KindFalse:
		return "F"
	case KindVar:
		return n.Name
	case KindNot:
		return "~" + n.Left.String()
	case KindAnd:
		return fmt.Sprintf("(%s && %s)", n.Left, n.Right)
	case KindOr:
		return fmt.Sprintf("(%s || %s)", n.Left, n.Right)
	case KindImplies:
		return fmt.Sprintf("(%s -> %s)", n.Left, n.Right)
	default:
		return "<invalid>"
	}
}

// Equal reports whether n and other are structurally identical. Equivalent
// but differently shaped expressions are not equal: And(a, b) is not equal
// to And(b, a).
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Name != other.Name {
		return false
	}
	if n.Left != nil || other.Left != nil {
		if !n.Left.Equal(other.Left) {
			return false
		}
	}
	if n.Right != nil || other.Right != nil {
		if !n.Right.Equal(other.Right) {
			return false
		}
	}
	return true
}

// Vars returns the distinct variable names referenced in the expression,
// sorted alphabetically.
func (n *Node) Vars() []string {
	set := make(map[string]struct{})
	n.collectVars(set)
	if len(set) == 0 {
		return nil
	}

	names := lo.Keys(set)
	sort.Strings(names)
	return names
}

func (n *Node) collectVars(set map[string]struct{}) {
	if n == nil {
		return
	}
	if n.Kind == KindVar {
		set[n.Name] = struct{}{}
	}
	n.Left.collectVars(set)
	n.Right.collectVars(set)
}

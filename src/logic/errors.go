package logic

import (
	"fmt"
)

// LexError is returned when the input contains a character that cannot start
// any token, such as a lone '&' or a digit.
type LexError struct {
	Offset int
	Char   rune
}

// NewLexError creates a new LexError for the offending character at the given
// 0-based offset.
func NewLexError(offset int, char rune) error {
	return &LexError{Offset: offset, Char: char}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid symbol %q at offset %d", e.Char, e.Offset)
}

// SyntaxErrorKind distinguishes the structural grammar violations a
// SyntaxError can describe.
type SyntaxErrorKind int

const (
	// UnmatchedParen means a '(' was never closed. Pos is the offset of the
	// opening parenthesis.
	UnmatchedParen SyntaxErrorKind = iota
	// EmptyExpression means the input contained no tokens at all.
	EmptyExpression
	// UnexpectedToken means a token appeared where the grammar did not
	// allow it, including trailing input after a complete expression.
	UnexpectedToken
)

// SyntaxError is returned by Parse when the token stream violates the
// grammar. It carries enough context for a caller to render a useful
// message; the parser itself never prints.
type SyntaxError struct {
	Kind     SyntaxErrorKind
	Pos      int
	Got      string
	Expected string
}

// NewUnmatchedParenError creates a SyntaxError for a parenthesis opened at
// openPos that was never closed.
func NewUnmatchedParenError(openPos int) error {
	return &SyntaxError{
		Kind:     UnmatchedParen,
		Pos:      openPos,
		Expected: `")"`,
	}
}

// NewEmptyExpressionError creates a SyntaxError for empty or whitespace-only
// input.
func NewEmptyExpressionError() error {
	return &SyntaxError{
		Kind:     EmptyExpression,
		Expected: "an expression",
	}
}

// NewUnexpectedTokenError creates a SyntaxError for a token found where
// expected describes what the grammar allowed instead.
func NewUnexpectedTokenError(got Token, expected string) error {
	return &SyntaxError{
		Kind:     UnexpectedToken,
		Pos:      got.Pos,
		Got:      got.String(),
		Expected: expected,
	}
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnmatchedParen:
		return fmt.Sprintf("unclosed parenthesis opened at offset %d", e.Pos)
	case EmptyExpression:
		return "empty expression"
	default:
		return fmt.Sprintf("expected %s, but got %s at offset %d", e.Expected, e.Got, e.Pos)
	}
}

// UnboundVariableError is returned when evaluation encounters a variable
// that is absent from the assignment.
type UnboundVariableError struct {
	Name string
}

// NewUnboundVariableError creates a new UnboundVariableError naming the
// missing variable.
func NewUnboundVariableError(name string) error {
	return &UnboundVariableError{Name: name}
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

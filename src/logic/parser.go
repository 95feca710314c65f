package logic

import (
	"errors"
)

// The grammar, lowest precedence first:
//
//	expr        := implication
//	implication := disjunction ( "->" implication )?    right-associative
//	disjunction := conjunction ( "||" conjunction )*    left-associative
//	conjunction := unary ( "&&" unary )*                left-associative
//	unary       := "~" unary | primary
//	primary     := "T" | "F" | VARIABLE | "(" expr ")"
//
// So "a -> b -> c" parses as Implies(a, Implies(b, c)) and "a && b || c"
// parses as Or(And(a, b), c).

// Parse turns an expression string into its syntax tree. The whole input
// must form exactly one expression; trailing tokens, empty input and
// malformed syntax fail with a SyntaxError, and unrecognized characters fail
// with a LexError. No partial tree is returned on failure.
func Parse(input string) (*Node, error) {
	p := &parser{lex: newLexer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.tok.Kind == TokenEOF {
		return nil, NewEmptyExpressionError()
	}

	root, err := p.parseImplication()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != TokenEOF {
		return nil, NewUnexpectedTokenError(p.tok, "end of input")
	}
	return root, nil
}

// parser consumes tokens strictly left to right with a single token of
// lookahead. No backtracking.
type parser struct {
	lex *lexer
	tok Token
}

func (p *parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) parseImplication() (*Node, error) {
	lhs, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind == TokenImplies {
		if err := p.advance(); err != nil {
			return nil, err
		}
		// recursing into implication rather than looping makes "->"
		// right-associative
		rhs, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		lhs = Implies(lhs, rhs)
	}
	return lhs, nil
}

func (p *parser) parseDisjunction() (*Node, error) {
	lhs, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}

	for p.tok.Kind == TokenOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		lhs = Or(lhs, rhs)
	}
	return lhs, nil
}

func (p *parser) parseConjunction() (*Node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.tok.Kind == TokenAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = And(lhs, rhs)
	}
	return lhs, nil
}

func (p *parser) parseUnary() (*Node, error) {
	if p.tok.Kind == TokenNot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(operand), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*Node, error) {
	switch p.tok.Kind {
	case TokenTrue:
		return p.leaf(True())
	case TokenFalse:
		return p.leaf(False())
	case TokenVar:
		return p.leaf(Var(p.tok.Text))
	case TokenLParen:
		openPos := p.tok.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseImplication()
		if err != nil {
			// input that ran out inside the group, like "(" or "(a &&", is
			// a missing closing parenthesis, not just an unexpected token
			var syntaxErr *SyntaxError
			if errors.As(err, &syntaxErr) && syntaxErr.Kind == UnexpectedToken && p.tok.Kind == TokenEOF {
				return nil, NewUnmatchedParenError(openPos)
			}
			return nil, err
		}
		if p.tok.Kind != TokenRParen {
			if p.tok.Kind == TokenEOF {
				return nil, NewUnmatchedParenError(openPos)
			}
			return nil, NewUnexpectedTokenError(p.tok, `")"`)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, NewUnexpectedTokenError(p.tok, `"T", "F", a variable or "("`)
	}
}

// leaf consumes the current token and returns the given leaf node.
func (p *parser) leaf(n *Node) (*Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	return n, nil
}

package logic

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	TokenVar TokenKind = iota
	TokenTrue
	TokenFalse
	TokenNot
	TokenAnd
	TokenOr
	TokenImplies
	TokenLParen
	TokenRParen
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenVar:
		return "<var>"
	case TokenTrue:
		return "T"
	case TokenFalse:
		return "F"
	case TokenNot:
		return "~"
	case TokenAnd:
		return "&&"
	case TokenOr:
		return "||"
	case TokenImplies:
		return "->"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenEOF:
		return "<EOF>"
	default:
		return "<unknown>"
	}
}

// Token is one lexical unit of an expression. Pos is the 0-based byte offset
// of the token's first character in the input. Text holds the identifier for
// TokenVar tokens and is empty otherwise.
type Token struct {
	Kind TokenKind
	Pos  int
	Text string
}

func (t Token) String() string {
	if t.Kind == TokenVar {
		return t.Text
	}
	return t.Kind.String()
}

// lexer produces tokens from an expression string on demand. Once the input
// is exhausted it keeps returning TokenEOF.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// Next returns the next token in the input, skipping any whitespace before
// it. Keyword policy: a maximal run of letters is scanned first and
// classified afterwards, so exactly "T" and "F" are the boolean literals
// while longer runs like "True" or "Foo" are variables.
func (l *lexer) Next() (Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Pos: l.pos}, nil
	}

	start := l.pos
	c := l.input[l.pos]

	switch c {
	case '~':
		l.pos++
		return Token{Kind: TokenNot, Pos: start}, nil
	case '(':
		l.pos++
		return Token{Kind: TokenLParen, Pos: start}, nil
	case ')':
		l.pos++
		return Token{Kind: TokenRParen, Pos: start}, nil
	case '&':
		if l.peekAt(l.pos+1) == '&' {
			l.pos += 2
			return Token{Kind: TokenAnd, Pos: start}, nil
		}
		return Token{}, NewLexError(start, rune(c))
	case '|':
		if l.peekAt(l.pos+1) == '|' {
			l.pos += 2
			return Token{Kind: TokenOr, Pos: start}, nil
		}
		return Token{}, NewLexError(start, rune(c))
	case '-':
		if l.peekAt(l.pos+1) == '>' {
			l.pos += 2
			return Token{Kind: TokenImplies, Pos: start}, nil
		}
		return Token{}, NewLexError(start, rune(c))
	}

	if isLetter(c) {
		for l.pos < len(l.input) && isLetter(l.input[l.pos]) {
			l.pos++
		}
		word := l.input[start:l.pos]
		switch word {
		case "T":
			return Token{Kind: TokenTrue, Pos: start}, nil
		case "F":
			return Token{Kind: TokenFalse, Pos: start}, nil
		}
		return Token{Kind: TokenVar, Pos: start, Text: word}, nil
	}

	return Token{}, NewLexError(start, rune(c))
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

// peekAt returns the byte at the given offset, or 0 past the end of input.
func (l *lexer) peekAt(i int) byte {
	if i >= len(l.input) {
		return 0
	}
	return l.input[i]
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Tokenize scans the whole input and returns its tokens, ending with a
// TokenEOF token. It fails with a LexError at the first character that
// cannot start a token.
func Tokenize(input string) ([]Token, error) {
	lex := newLexer(input)

	var tokens []Token
	for {
		token, err := lex.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

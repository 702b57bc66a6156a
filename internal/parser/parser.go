package parser

import (
	"github.com/DjordjeVuckovic/logicka/internal/ast"
	"github.com/DjordjeVuckovic/logicka/internal/token"
)

var (
	operandStart  = []token.Type{token.IDENT, token.TRUE, token.FALSE, token.NOT, token.LPAREN}
	afterOperand  = []token.Type{token.AND, token.XOR, token.OR, token.IMPLIES, token.EQUIV, token.EOF}
	closingParens = []token.Type{token.RPAREN}
)

// Parse builds an expression tree from tokens produced by a token.Tokenizer.
//
// Precedence from loosest to tightest:
// EQUIV, IMPLIES, OR, XOR, AND, NOT. All binary connectives are
// left-associative, NOT is right-associative.
func Parse(tokens []token.Token) (ast.Node, error) {
	p := &parser{tokens: tokens}

	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if tok := p.current(); tok.Type != token.EOF {
		return nil, unexpected(tok, afterOperand)
	}
	return node, nil
}

// ParseString tokenizes and parses text.
func ParseString(text string) (ast.Node, error) {
	tokens, err := token.NewBoolTokenizer().Tokenize(text)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

type parser struct {
	tokens []token.Token
	pos    int
}

// current returns the token under the cursor. A stream that is missing its
// terminator behaves as if it ended with EOF.
func (p *parser) current() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	end := 0
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		end = last.Pos + len([]rune(last.Value))
	}
	return token.Token{Type: token.EOF, Pos: end}
}

func (p *parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpression() (ast.Node, error) {
	return p.parseEquiv()
}

func (p *parser) parseEquiv() (ast.Node, error) {
	return p.parseBinary(token.EQUIV, ast.Equiv, p.parseImplies)
}

func (p *parser) parseImplies() (ast.Node, error) {
	return p.parseBinary(token.IMPLIES, ast.Implies, p.parseOr)
}

func (p *parser) parseOr() (ast.Node, error) {
	return p.parseBinary(token.OR, ast.Or, p.parseXor)
}

func (p *parser) parseXor() (ast.Node, error) {
	return p.parseBinary(token.XOR, ast.Xor, p.parseAnd)
}

func (p *parser) parseAnd() (ast.Node, error) {
	return p.parseBinary(token.AND, ast.And, p.parseUnary)
}

// parseBinary parses a left-associative chain of one connective.
func (p *parser) parseBinary(tt token.Type, op ast.Op, next func() (ast.Node, error)) (ast.Node, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for p.current().Type == tt {
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = ast.Bin(op, left, right)
	}

	return left, nil
}

func (p *parser) parseUnary() (ast.Node, error) {
	if p.current().Type == token.NOT {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.Neg(operand), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (ast.Node, error) {
	tok := p.current()

	switch tok.Type {
	case token.IDENT:
		p.advance()
		return ast.Var(tok.Value), nil
	case token.TRUE:
		p.advance()
		return ast.Lit(true), nil
	case token.FALSE:
		p.advance()
		return ast.Lit(false), nil
	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if closing := p.current(); closing.Type != token.RPAREN {
			return nil, unexpected(closing, closingParens)
		}
		p.advance()
		return inner, nil
	default:
		return nil, unexpected(tok, operandStart)
	}
}

func unexpected(tok token.Token, expected []token.Type) *SyntaxError {
	return &SyntaxError{
		Pos:      tok.Pos,
		Expected: expected,
		Found:    tok.Type,
		Value:    tok.Value,
	}
}

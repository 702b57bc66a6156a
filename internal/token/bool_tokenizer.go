package token

import (
	"strings"
	"unicode"
)

type symbol struct {
	text []rune
	typ  Type
}

func sym(text string, typ Type) symbol {
	return symbol{text: []rune(text), typ: typ}
}

// symbols is ordered longest first so that "<->" wins over "<" and "->" wins over "-".
var symbols = []symbol{
	sym("<->", EQUIV),
	sym("<=>", EQUIV),
	sym("&&", AND),
	sym("||", OR),
	sym(`\/`, OR),
	sym("->", IMPLIES),
	sym("=>", IMPLIES),
	sym("&", AND),
	sym("∧", AND),
	sym("|", OR),
	sym("∨", OR),
	sym("^", XOR),
	sym("⊕", XOR),
	sym("!", NOT),
	sym("¬", NOT),
	sym("-", NOT),
	sym("→", IMPLIES),
	sym("~", EQUIV),
	sym("↔", EQUIV),
	sym("(", LPAREN),
	sym(")", RPAREN),
	sym("1", TRUE),
	sym("0", FALSE),
}

var keywords = map[string]Type{
	"AND":     AND,
	"OR":      OR,
	"NOT":     NOT,
	"XOR":     XOR,
	"IMPLIES": IMPLIES,
	"IFF":     EQUIV,
	"TRUE":    TRUE,
	"FALSE":   FALSE,
}

// IsKeyword reports whether word is reserved as an operator or literal.
func IsKeyword(word string) bool {
	_, ok := keywords[strings.ToUpper(word)]
	return ok
}

// BoolTokenizer splits propositional expressions into tokens.
type BoolTokenizer struct {
	input []rune
	pos   int
}

func NewBoolTokenizer() *BoolTokenizer {
	return &BoolTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens terminated by EOF.
// Example: Input: `(a && b) -> !c`
func (t *BoolTokenizer) Tokenize(input string) ([]Token, error) {
	t.input = []rune(input)
	t.pos = 0

	var tokens []Token

	t.skipWhitespace()
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case isIdentStart(ch):
			tokens = append(tokens, t.readWord())
		default:
			tok, ok := t.readSymbol()
			if !ok {
				return nil, &LexicalError{Pos: t.pos, Char: ch}
			}
			tokens = append(tokens, tok)
		}
		t.skipWhitespace()
	}

	tokens = append(tokens, Token{Type: EOF, Pos: len(t.input)})
	return tokens, nil
}

func (t *BoolTokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(t.input[t.pos]) {
		t.pos++
	}
}

func (t *BoolTokenizer) readWord() Token {
	start := t.pos
	for t.pos < len(t.input) && isIdentChar(t.input[t.pos]) {
		t.pos++
	}

	word := string(t.input[start:t.pos])
	if typ, ok := keywords[strings.ToUpper(word)]; ok {
		return Token{Type: typ, Value: word, Pos: start}
	}
	return Token{Type: IDENT, Value: word, Pos: start}
}

func (t *BoolTokenizer) readSymbol() (Token, bool) {
	rest := t.input[t.pos:]
	for _, s := range symbols {
		if hasPrefix(rest, s.text) {
			tok := Token{Type: s.typ, Value: string(s.text), Pos: t.pos}
			t.pos += len(s.text)
			return tok, true
		}
	}
	return Token{}, false
}

func hasPrefix(input, prefix []rune) bool {
	if len(input) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if input[i] != r {
			return false
		}
	}
	return true
}

func isIdentStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9') || ch == '_'
}

package token

type Type int

const (
	EOF Type = iota
	IDENT
	TRUE
	FALSE
	NOT
	AND
	XOR
	OR
	IMPLIES
	EQUIV
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case XOR:
		return "XOR"
	case OR:
		return "OR"
	case IMPLIES:
		return "IMPLIES"
	case EQUIV:
		return "EQUIV"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Describe returns a human-readable name of the token kind for error messages.
func (t Type) Describe() string {
	switch t {
	case EOF:
		return "end of input"
	case IDENT:
		return "variable"
	case TRUE, FALSE:
		return "literal"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	default:
		return t.String()
	}
}

// IsBinary reports whether the token kind is a binary connective.
func (t Type) IsBinary() bool {
	switch t {
	case AND, XOR, OR, IMPLIES, EQUIV:
		return true
	default:
		return false
	}
}

// Token represents a lexical token with its type, literal value and the rune
// offset of its first character in the input.
type Token struct {
	Type  Type
	Value string
	Pos   int
}

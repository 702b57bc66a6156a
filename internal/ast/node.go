package ast

// Op is a binary connective.
type Op int

const (
	And Op = iota
	Xor
	Or
	Implies
	Equiv
)

func (o Op) String() string {
	switch o {
	case And:
		return "AND"
	case Xor:
		return "XOR"
	case Or:
		return "OR"
	case Implies:
		return "IMPLIES"
	case Equiv:
		return "EQUIV"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the canonical infix symbol used when printing.
func (o Op) Symbol() string {
	switch o {
	case And:
		return "&"
	case Xor:
		return "^"
	case Or:
		return "|"
	case Implies:
		return "->"
	case Equiv:
		return "<->"
	default:
		return "?"
	}
}

// Node is a parsed propositional expression. The set of implementations is
// closed: Variable, Literal, Not and Binary.
type Node interface {
	node()
}

type Variable struct {
	Name string
}

type Literal struct {
	Value bool
}

type Not struct {
	Operand Node
}

type Binary struct {
	Op    Op
	Left  Node
	Right Node
}

func (*Variable) node() {}
func (*Literal) node()  {}
func (*Not) node()      {}
func (*Binary) node()   {}

func Var(name string) *Variable { return &Variable{Name: name} }

func Lit(value bool) *Literal { return &Literal{Value: value} }

func Neg(operand Node) *Not { return &Not{Operand: operand} }

func Bin(op Op, left, right Node) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

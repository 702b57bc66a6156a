package truthtable

// Variable is one cell of a row.
type Variable struct {
	Name  string `json:"Name" schema:"required,minLength=1" description:"Variable name"`
	Value bool   `json:"Value" schema:"required" description:"Value assigned in this row"`
}

// Row pairs a complete assignment with the value of the expression under it.
// The JSON shape is a public contract consumed by UIs.
type Row struct {
	Result    bool       `json:"Result" schema:"required" description:"Value of the expression under the assignment"`
	Variables []Variable `json:"Variables" schema:"required" description:"Assignment in variable list order"`
}

func (Row) SchemaDescription() string {
	return "One row of a truth table"
}

// Value returns the value assigned to name in the row.
func (r Row) Value(name string) (bool, bool) {
	for _, v := range r.Variables {
		if v.Name == name {
			return v.Value, true
		}
	}
	return false, false
}

type Table struct {
	// Variables is the variable list of the expression in first-occurrence order.
	Variables []string
	// Free holds the enumerated variables, most significant first.
	Free []string
	Rows []Row
}

// Filter returns the rows whose result equals result, keeping their order.
func (t *Table) Filter(result bool) []Row {
	rows := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if r.Result == result {
			rows = append(rows, r)
		}
	}
	return rows
}

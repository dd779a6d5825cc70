package spreadsheet

// Cell represents one spreadsheet cell: a label, the formula it holds as an
// ordered token sequence, the last computed numeric value, and the last
// evaluation error (empty string when the value is good).
type Cell struct {
	label   string
	formula []string
	value   float64
	err     string
}

// NewCell creates an empty cell. An empty cell carries the empty-formula
// error so that references to it resolve as unusable rather than as zero.
func NewCell(label string) *Cell {
	return &Cell{
		label: label,
		err:   ErrorMessageMapper[ErrEmptyFormula],
	}
}

// Label returns the cell's grid label, e.g. "A1"
func (c *Cell) Label() string {
	return c.label
}

// Formula returns the cell's formula token sequence. Callers must not
// mutate the returned slice.
func (c *Cell) Formula() []string {
	return c.formula
}

// SetFormula replaces the cell's formula tokens
func (c *Cell) SetFormula(tokens []string) {
	c.formula = tokens
}

// Value returns the last computed numeric value
func (c *Cell) Value() float64 {
	return c.value
}

// SetValue records a computed numeric value
func (c *Cell) SetValue(value float64) {
	c.value = value
}

// Error returns the cell's error string, empty when the cell is clean
func (c *Cell) Error() string {
	return c.err
}

// SetError records the cell's error string
func (c *Cell) SetError(message string) {
	c.err = message
}

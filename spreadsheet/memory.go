package spreadsheet

import (
	"strconv"
	"strings"
)

// SheetMemory is a fixed-size grid of cells addressed by labels like "A1" or
// "AB12": one or more uppercase letters naming the column (bijective
// base-26, A=first) followed by one or more digits naming the 1-based row.
// It implements CellStore for the evaluator.
type SheetMemory struct {
	columns int
	rows    int
	cells   [][]*Cell // [column][row]
}

// NewSheetMemory creates a grid with every cell pre-allocated and empty
func NewSheetMemory(columns, rows int) *SheetMemory {
	cells := make([][]*Cell, columns)
	for col := 0; col < columns; col++ {
		cells[col] = make([]*Cell, rows)
		for row := 0; row < rows; row++ {
			cells[col][row] = NewCell(coordsToLabel(col, row))
		}
	}
	return &SheetMemory{
		columns: columns,
		rows:    rows,
		cells:   cells,
	}
}

// Columns returns the grid width
func (m *SheetMemory) Columns() int {
	return m.columns
}

// Rows returns the grid height
func (m *SheetMemory) Rows() int {
	return m.rows
}

// IsValidCellLabel reports whether label is well-formed and inside the grid
func (m *SheetMemory) IsValidCellLabel(label string) bool {
	col, row, ok := labelToCoords(label)
	return ok && col < m.columns && row < m.rows
}

// CellByLabel returns the cell at a label, or nil if the label does not
// name a cell in this grid
func (m *SheetMemory) CellByLabel(label string) *Cell {
	col, row, ok := labelToCoords(label)
	if !ok || col >= m.columns || row >= m.rows {
		return nil
	}
	return m.cells[col][row]
}

// labelToCoords parses a label into zero-based column and row indexes
func labelToCoords(label string) (col, row int, ok bool) {
	split := 0
	for split < len(label) && label[split] >= 'A' && label[split] <= 'Z' {
		split++
	}
	if split == 0 || split == len(label) {
		return 0, 0, false
	}
	for i := split; i < len(label); i++ {
		if label[i] < '0' || label[i] > '9' {
			return 0, 0, false
		}
	}

	// bijective base-26: A=1 .. Z=26, AA=27
	for i := 0; i < split; i++ {
		col = col*26 + int(label[i]-'A') + 1
		if col > 1<<20 { // guard against absurd inputs
			return 0, 0, false
		}
	}
	col--

	for i := split; i < len(label); i++ {
		row = row*10 + int(label[i]-'0')
		if row > 1<<20 { // guard against absurd inputs
			return 0, 0, false
		}
	}
	if row == 0 { // rows are 1-based
		return 0, 0, false
	}
	return col, row - 1, true
}

// coordsToLabel renders zero-based coordinates as a cell label
func coordsToLabel(col, row int) string {
	var letters strings.Builder
	n := col + 1
	for n > 0 {
		n--
		letters.WriteByte(byte('A' + n%26))
		n /= 26
	}
	// letters come out least significant first
	raw := letters.String()
	reversed := make([]byte, len(raw))
	for i := 0; i < len(raw); i++ {
		reversed[i] = raw[len(raw)-1-i]
	}
	return string(reversed) + strconv.Itoa(row+1)
}

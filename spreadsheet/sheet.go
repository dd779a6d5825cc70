package spreadsheet

import (
	"fmt"
	"strconv"
)

// Sheet wires the grid storage, the lexer, and the evaluator into the
// public surface of the engine. It evaluates one cell at a time against the
// current snapshot of the grid; there is no dependency tracking and no
// recalculation scheduling.
type Sheet struct {
	memory    *SheetMemory
	evaluator *Evaluator
}

// NewSheet creates a sheet with the given grid dimensions
func NewSheet(columns, rows int) *Sheet {
	memory := NewSheetMemory(columns, rows)
	return &Sheet{
		memory:    memory,
		evaluator: NewEvaluator(memory),
	}
}

// Memory exposes the underlying cell storage
func (s *Sheet) Memory() *SheetMemory {
	return s.memory
}

// SetCellFormula tokenizes formula text and stores it in a cell. The cell's
// stale value and error are cleared; an empty text restores the cell to its
// empty state.
func (s *Sheet) SetCellFormula(label, text string) error {
	cell := s.memory.CellByLabel(label)
	if cell == nil {
		return fmt.Errorf("no cell %q in a %dx%d sheet", label, s.memory.Columns(), s.memory.Rows())
	}
	tokens, err := NewLexer(text).Tokenize()
	if err != nil {
		return fmt.Errorf("cell %s: %w", label, err)
	}
	cell.SetFormula(tokens)
	cell.SetValue(0)
	if len(tokens) == 0 {
		cell.SetError(ErrorMessageMapper[ErrEmptyFormula])
	} else {
		cell.SetError("")
	}
	return nil
}

// EvaluateCell evaluates a cell's stored formula and records the outcome
// back into the cell, making it visible to formulas that reference it.
func (s *Sheet) EvaluateCell(label string) (Outcome, error) {
	cell := s.memory.CellByLabel(label)
	if cell == nil {
		return Outcome{}, fmt.Errorf("no cell %q in a %dx%d sheet", label, s.memory.Columns(), s.memory.Rows())
	}
	out := s.evaluator.Evaluate(cell.Formula())
	cell.SetValue(out.Value)
	cell.SetError(out.Err)
	return out, nil
}

// DisplayValue renders a cell for display: its error text if it has one,
// otherwise its value in shortest-round-trip form. Unknown labels render
// as an invalid-cell error.
func (s *Sheet) DisplayValue(label string) string {
	cell := s.memory.CellByLabel(label)
	if cell == nil {
		return ErrorMessageMapper[ErrInvalidCell]
	}
	if cell.Error() != "" {
		return cell.Error()
	}
	return strconv.FormatFloat(cell.Value(), 'g', -1, 64)
}

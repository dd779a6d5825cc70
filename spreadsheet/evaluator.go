package spreadsheet

import (
	"math"
	"strconv"
)

// CellStore is the narrow view of cell storage the evaluator needs. It is
// treated as a read-only, already-consistent snapshot for the duration of
// one evaluation.
type CellStore interface {
	// IsValidCellLabel reports whether label names a cell in the store.
	IsValidCellLabel(label string) bool
	// CellByLabel returns the cell for a label the store has declared valid.
	CellByLabel(label string) *Cell
}

// Evaluator computes a numeric result for a formula token sequence using a
// single-pass, two-stack precedence algorithm. Cell references are resolved
// synchronously through the CellStore. The evaluator keeps no state between
// calls; all working storage is local to one Evaluate invocation, so a
// single instance may be shared freely.
type Evaluator struct {
	cells CellStore
}

// NewEvaluator creates an evaluator backed by the given cell store
func NewEvaluator(cells CellStore) *Evaluator {
	return &Evaluator{cells: cells}
}

// session holds the per-call working state: the operand and operator stacks
// and the first problem recorded before an abort.
type session struct {
	operands  []float64
	operators []string
	firstErr  *EvalError
}

// Evaluate consumes a formula and produces its Outcome. The formula is only
// read, never mutated. Failure semantics:
//
//   - the reported error reflects the first problem encountered;
//   - if exactly one operand remains when evaluation aborts, that value is
//     kept as a best-effort result alongside the error;
//   - division by a zero divisor overrides the salvage and forces the
//     result to +Inf.
func (ev *Evaluator) Evaluate(formula []string) Outcome {
	switch len(formula) {
	case 0:
		return failure(NewEvalError(ErrEmptyFormula, ""))
	case 1:
		return ev.evaluateSingle(formula[0])
	}

	s := &session{}
	for _, token := range formula {
		if err := ev.consume(s, token); err != nil {
			return s.abort(err)
		}
	}

	// drain remaining operators. an open paren surfacing here means the
	// formula never closed it; the paren is still fed to compute, which
	// rejects it, so the drain always terminates.
	for len(s.operators) > 0 {
		if s.topOperator() == "(" && s.firstErr == nil {
			s.firstErr = NewEvalError(ErrMissingParentheses, "")
		}
		if err := s.compute(); err != nil {
			return s.abort(err)
		}
	}

	if len(s.operands) != 1 {
		return s.abort(NewEvalError(ErrInvalidFormula, ""))
	}
	return Outcome{Value: s.operands[0]}
}

// evaluateSingle handles one-token formulas without touching the stacks
func (ev *Evaluator) evaluateSingle(token string) Outcome {
	if isNumber(token) {
		value, _ := strconv.ParseFloat(token, 64)
		return Outcome{Value: value}
	}
	if ev.isCellReference(token) {
		value, err := ev.resolveCell(token)
		if err != nil {
			return failure(err)
		}
		return Outcome{Value: value}
	}
	return failure(NewEvalError(ErrInvalidFormula, ""))
}

// consume advances the scan by one token
func (ev *Evaluator) consume(s *session, token string) *EvalError {
	switch {
	case isNumber(token):
		value, _ := strconv.ParseFloat(token, 64)
		s.pushOperand(value)
	case ev.isCellReference(token):
		value, err := ev.resolveCell(token)
		if err != nil {
			return err
		}
		s.pushOperand(value)
	case token == "(":
		s.pushOperator(token)
	case token == ")":
		for len(s.operators) > 0 && s.topOperator() != "(" {
			if err := s.compute(); err != nil {
				return err
			}
		}
		// discard the matching open paren. if the stack drained without
		// finding one, the final stack check reports the malformation.
		if len(s.operators) > 0 {
			s.popOperator()
		}
	default:
		// binary operator, recognized or not. unrecognized symbols rank
		// lowest and are rejected later inside compute.
		for len(s.operators) > 0 && precedence(s.topOperator()) >= precedence(token) {
			if err := s.compute(); err != nil {
				return err
			}
		}
		s.pushOperator(token)
	}
	return nil
}

// resolveCell turns a cell-reference token into a numeric value. A cell
// carrying a genuine error short-circuits before the emptiness check; the
// empty-formula sentinel does not count as an error here.
func (ev *Evaluator) resolveCell(label string) (float64, *EvalError) {
	if !ev.cells.IsValidCellLabel(label) {
		return 0, NewEvalError(ErrInvalidCell, "")
	}
	cell := ev.cells.CellByLabel(label)
	if message := cell.Error(); message != "" && message != ErrorMessageMapper[ErrEmptyFormula] {
		return 0, NewEvalError(ErrCellError, message)
	}
	if len(cell.Formula()) == 0 {
		return 0, NewEvalError(ErrInvalidCell, "")
	}
	return cell.Value(), nil
}

// isCellReference delegates entirely to the store's label-validity rule
func (ev *Evaluator) isCellReference(token string) bool {
	return ev.cells.IsValidCellLabel(token)
}

// isNumber reports whether the token parses as a finite numeric literal
func isNumber(token string) bool {
	value, err := strconv.ParseFloat(token, 64)
	return err == nil && !math.IsInf(value, 0) && !math.IsNaN(value)
}

// precedence ranks binary operators. unrecognized operators rank lowest so
// the comparison never pre-empts them; compute rejects them instead.
func precedence(operator string) int {
	switch operator {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return 0
	}
}

// compute pops one operator and two operands (b above a), applies the
// operator, and pushes the result back. A zero divisor is reported as its
// own kind so the abort path can force the +Inf result.
func (s *session) compute() *EvalError {
	operator := s.popOperator()
	if len(s.operands) < 2 {
		return NewEvalError(ErrInvalidFormula, "")
	}
	b := s.popOperand()
	a := s.popOperand()
	switch operator {
	case "+":
		s.pushOperand(a + b)
	case "-":
		s.pushOperand(a - b)
	case "*":
		s.pushOperand(a * b)
	case "/":
		if b == 0 {
			return NewEvalError(ErrDivideByZero, "")
		}
		s.pushOperand(a / b)
	default:
		return NewEvalError(ErrInvalidOperator, "")
	}
	return nil
}

// abort converts a raised failure into the final Outcome, applying the
// first-problem and best-effort-salvage rules.
func (s *session) abort(err *EvalError) Outcome {
	if err.Kind == ErrDivideByZero {
		return Outcome{
			Value: math.Inf(1),
			Kind:  ErrDivideByZero,
			Err:   err.Error(),
		}
	}
	first := s.firstErr
	if first == nil {
		first = err
	}
	out := failure(first)
	if len(s.operands) == 1 {
		out.Value = s.operands[0]
	}
	return out
}

func (s *session) pushOperand(value float64) {
	s.operands = append(s.operands, value)
}

func (s *session) popOperand() float64 {
	value := s.operands[len(s.operands)-1]
	s.operands = s.operands[:len(s.operands)-1]
	return value
}

func (s *session) pushOperator(operator string) {
	s.operators = append(s.operators, operator)
}

func (s *session) popOperator() string {
	operator := s.operators[len(s.operators)-1]
	s.operators = s.operators[:len(s.operators)-1]
	return operator
}

func (s *session) topOperator() string {
	return s.operators[len(s.operators)-1]
}

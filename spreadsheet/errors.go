package spreadsheet

// ErrorKind classifies the ways a formula evaluation can fail
type ErrorKind uint8

const (
	ErrNone               ErrorKind = 0 // success
	ErrEmptyFormula       ErrorKind = 1 // formula has no tokens
	ErrInvalidFormula     ErrorKind = 2 // malformed token sequence or wrong final stack size
	ErrInvalidCell        ErrorKind = 3 // unknown label, or a reference to an empty cell
	ErrInvalidOperator    ErrorKind = 4 // operator symbol outside + - * /
	ErrMissingParentheses ErrorKind = 5 // unmatched open parenthesis found while draining
	ErrDivideByZero       ErrorKind = 6 // zero divisor; result is forced to +Inf
	ErrCellError          ErrorKind = 7 // error string propagated verbatim from a referenced cell
)

// ErrorMessageMapper maps error kinds to their canonical message strings
var ErrorMessageMapper = map[ErrorKind]string{
	ErrEmptyFormula:       "empty formula",
	ErrInvalidFormula:     "invalid formula",
	ErrInvalidCell:        "invalid cell",
	ErrInvalidOperator:    "invalid operator",
	ErrMissingParentheses: "missing parentheses",
	ErrDivideByZero:       "divide by zero",
}

// EvalError preserves the error kind alongside its message. A cell error
// carries the referenced cell's message verbatim; every other kind uses
// the canonical text.
type EvalError struct {
	Kind    ErrorKind
	Message string
}

func (e *EvalError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrorMessageMapper[e.Kind]
}

func NewEvalError(kind ErrorKind, message string) *EvalError {
	if message == "" {
		message = ErrorMessageMapper[kind]
	}
	return &EvalError{
		Kind:    kind,
		Message: message,
	}
}

// Outcome represents the two observable results of one evaluation: a
// numeric value and an error string (empty means success). Value holds a
// best-effort result even when Err is set, so callers may observe both a
// non-empty error and a meaningful value at once.
type Outcome struct {
	Value float64
	Kind  ErrorKind
	Err   string
}

// OK reports whether the evaluation succeeded
func (o Outcome) OK() bool {
	return o.Err == ""
}

func failure(err *EvalError) Outcome {
	return Outcome{Kind: err.Kind, Err: err.Error()}
}

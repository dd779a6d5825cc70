package spreadsheet

import (
	"fmt"
	"unicode"
)

// character classification constants. slightly easier to read.
const (
	charTab      = '\t'
	charSpace    = ' '
	charLParen   = '('
	charRParen   = ')'
	charAsterisk = '*'
	charPlus     = '+'
	charMinus    = '-'
	charPeriod   = '.'
	charSlash    = '/'
)

// Lexer splits raw formula text into the opaque string tokens the evaluator
// consumes: numeric literals, cell labels, the four binary operators, and
// parentheses. No token type tag is attached; the evaluator classifies
// tokens by inspection.
type Lexer struct {
	runes []rune // UTF-8 aware representation
	pos   int
}

// NewLexer creates a new lexer for the given formula input
func NewLexer(input string) *Lexer {
	return &Lexer{
		runes: []rune(input),
		pos:   0,
	}
}

// Tokenize scans the whole input and returns its token sequence. Scanning
// stops at the first unexpected character.
func (l *Lexer) Tokenize() ([]string, error) {
	tokens := []string{}
	for l.pos < len(l.runes) {
		r := l.runes[l.pos]
		switch {
		case r == charSpace || r == charTab:
			l.pos++
		case unicode.IsDigit(r) || r == charPeriod:
			tokens = append(tokens, l.scanNumber())
		case unicode.IsLetter(r):
			tokens = append(tokens, l.scanReference())
		case r == charPlus || r == charMinus || r == charAsterisk || r == charSlash ||
			r == charLParen || r == charRParen:
			tokens = append(tokens, string(r))
			l.pos++
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", r, l.pos)
		}
	}
	return tokens, nil
}

// scanNumber consumes a run of digits and periods. Shape validation is left
// to the evaluator's number classifier; "1.2.3" comes out as one token and
// fails there.
func (l *Lexer) scanNumber() string {
	start := l.pos
	for l.pos < len(l.runes) {
		r := l.runes[l.pos]
		if !unicode.IsDigit(r) && r != charPeriod {
			break
		}
		l.pos++
	}
	return string(l.runes[start:l.pos])
}

// scanReference consumes a letter run followed by a digit run, the shape of
// a cell label. A bare letter run still comes out as one token; the cell
// store's label rule decides whether it names a cell.
func (l *Lexer) scanReference() string {
	start := l.pos
	for l.pos < len(l.runes) && unicode.IsLetter(l.runes[l.pos]) {
		l.pos++
	}
	for l.pos < len(l.runes) && unicode.IsDigit(l.runes[l.pos]) {
		l.pos++
	}
	return string(l.runes[start:l.pos])
}

package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"   ", []string{}},
		{"5", []string{"5"}},
		{"1+2", []string{"1", "+", "2"}},
		{"1 + 2", []string{"1", "+", "2"}},
		{"2.5*4", []string{"2.5", "*", "4"}},
		{".5+1", []string{".5", "+", "1"}},
		{"(1+2)*3", []string{"(", "1", "+", "2", ")", "*", "3"}},
		{"A1", []string{"A1"}},
		{"AB12/C3", []string{"AB12", "/", "C3"}},
		{"A1 - 7", []string{"A1", "-", "7"}},
		{"1\t+\t2", []string{"1", "+", "2"}},
		// malformed runs still come out as single tokens; the evaluator
		// and the cell store decide what they mean
		{"1.2.3", []string{"1.2.3"}},
		{"ABC", []string{"ABC"}},
		{"A1B", []string{"A1", "B"}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			tokens, err := NewLexer(tc.input).Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tc.want, tokens)
		})
	}
}

func TestTokenizeRejectsUnexpectedCharacters(t *testing.T) {
	for _, input := range []string{"1 $ 2", "=1+2", "1,2", "a1&b2", "1^2"} {
		t.Run(input, func(t *testing.T) {
			_, err := NewLexer(input).Tokenize()
			assert.Error(t, err)
		})
	}
}

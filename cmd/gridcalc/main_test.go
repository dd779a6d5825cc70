package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEvaluatesGridFromStdin(t *testing.T) {
	input := strings.NewReader(`
# a tiny grid
A1 = 1 + 2
B1 = A1 * 3
C1 = B1 / 0
`)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-"}, input, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Equal(t, "A1 = 3\nB1 = 9\nC1 = divide by zero\n", stdout.String())
}

func TestRunRejectsMalformedLine(t *testing.T) {
	input := strings.NewReader("A1 + 2\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-"}, input, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "line 1")
}

func TestRunRejectsLabelOutsideGrid(t *testing.T) {
	input := strings.NewReader("B2 = 1\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-cols", "1", "-rows", "1", "-"}, input, &stdout, &stderr)
	assert.Equal(t, 1, code)
}

func TestRunWithoutInputShowsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Usage")
}

func TestRunRejectsExtraArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-", "extra.grid"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Usage")
}

func TestRunRejectsBadDimensions(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-cols", "0", "-"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 2, code)
}

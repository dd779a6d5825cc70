package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gridcalc/gridcalc/spreadsheet"
)

type options struct {
	columns int
	rows    int
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	columns := fs.Int("cols", 26, "number of grid columns")
	rows := fs.Int("rows", 100, "number of grid rows")
	verbose := fs.Bool("verbose", false, "enable debug logging")

	fs.Usage = func() {
		fmt.Fprint(stderr, usageText())
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	opts := options{
		columns: *columns,
		rows:    *rows,
		verbose: *verbose,
	}
	if opts.columns < 1 || opts.rows < 1 {
		fmt.Fprintln(stderr, "grid dimensions must be at least 1x1")
		return 2
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rest := fs.Args()
	if len(rest) != 1 {
		fs.Usage()
		return 2
	}

	input := stdin
	if rest[0] != "-" {
		file, err := os.Open(rest[0])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer file.Close()
		input = file
	}

	if err := calculate(input, stdout, opts, logger); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func usageText() string {
	return `Usage:

 gridcalc [-cols N] [-rows N] [-verbose] gridfile

positional arguments:

  gridfile              grid file path, use '-' to read from STDIN

Each non-empty line of the grid file assigns a formula to a cell:

  A1 = 1 + 2
  B1 = A1 * 3

Lines starting with '#' are comments. Cells are evaluated in input
order against the values computed so far, and each cell is printed as
'LABEL = value' (or its error text).
`
}

// calculate loads every assignment, then evaluates the assigned cells in
// input order and prints one line per cell.
func calculate(input io.Reader, output io.Writer, opts options, logger *slog.Logger) error {
	sheet := spreadsheet.NewSheet(opts.columns, opts.rows)

	labels, err := loadAssignments(sheet, input, logger)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(output)
	for _, label := range labels {
		out, err := sheet.EvaluateCell(label)
		if err != nil {
			return err
		}
		logger.Debug("evaluated cell",
			"label", label,
			"value", out.Value,
			"error", out.Err,
		)
		fmt.Fprintf(writer, "%s = %s\n", label, sheet.DisplayValue(label))
	}
	return writer.Flush()
}

// loadAssignments parses 'LABEL = formula' lines into the sheet and returns
// the assigned labels in input order
func loadAssignments(sheet *spreadsheet.Sheet, input io.Reader, logger *slog.Logger) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(input)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		label, formula, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: expected 'LABEL = formula', got %q", lineNo, line)
		}
		label = strings.TrimSpace(label)
		if err := sheet.SetCellFormula(label, strings.TrimSpace(formula)); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		logger.Debug("assigned formula", "label", label, "formula", strings.TrimSpace(formula))
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}

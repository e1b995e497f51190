package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/surveyor/angle"
)

// column is one logical column and the header spellings it accepts.
type column struct {
	name    string
	aliases []string
}

func col(name string, aliases ...string) column { return column{name: name, aliases: aliases} }

// table is a CSV file read into memory with its header resolved.
type table struct {
	index map[string]int // logical column → cell index
	rows  [][]string
	lines []int // source line of every row
}

// readTable reads r and resolves the header against required and optional
// columns.
func readTable(r io.Reader, required []column, optional ...column) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrHeader)
		}
		return nil, fmt.Errorf("%w: %v", ErrHeader, err)
	}
	headerMap := make(map[string]int, len(headers))
	for i, h := range headers {
		headerMap[strings.ToLower(strings.TrimSpace(h))] = i
	}

	t := &table{index: make(map[string]int)}
	resolve := func(c column) bool {
		for _, h := range append([]string{c.name}, c.aliases...) {
			if i, ok := headerMap[h]; ok {
				t.index[c.name] = i
				return true
			}
		}
		return false
	}
	for _, c := range required {
		if !resolve(c) {
			return nil, fmt.Errorf("%w: column %q", ErrHeader, c.name)
		}
	}
	for _, c := range optional {
		resolve(c)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRecord, err)
		}
		if blank(record) {
			continue
		}
		line, _ := reader.FieldPos(0)
		t.rows = append(t.rows, record)
		t.lines = append(t.lines, line)
	}
	return t, nil
}

func blank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// has reports whether the optional column name was present in the header.
func (t *table) has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// cell returns the trimmed value of column name in row i, or "".
func (t *table) cell(i int, name string) string {
	idx, ok := t.index[name]
	if !ok || idx >= len(t.rows[i]) {
		return ""
	}
	return strings.TrimSpace(t.rows[i][idx])
}

func (t *table) errorf(i int, name string, format string, args ...any) error {
	return fmt.Errorf("line %d, column %q: %w: %s", t.lines[i], name, ErrRecord, fmt.Sprintf(format, args...))
}

func (t *table) text(i int, name string) (string, error) {
	v := t.cell(i, name)
	if v == "" {
		return "", t.errorf(i, name, "empty")
	}
	return v, nil
}

func (t *table) number(i int, name string) (float64, error) {
	v := t.cell(i, name)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, t.errorf(i, name, "not a number: %q", v)
	}
	return f, nil
}

// optFloat returns nil for an empty cell.
func (t *table) optFloat(i int, name string) (*float64, error) {
	if t.cell(i, name) == "" {
		return nil, nil
	}
	f, err := t.number(i, name)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (t *table) degrees(i int, name string, f angle.Format) (float64, error) {
	v := t.cell(i, name)
	deg, err := angle.Parse(v, f)
	if err != nil {
		return 0, t.errorf(i, name, "%v", err)
	}
	return deg, nil
}

func (t *table) flag(i int, name string) (bool, error) {
	switch strings.ToLower(t.cell(i, name)) {
	case "", "0", "false", "no", "n", "free":
		return false, nil
	case "1", "true", "yes", "y", "fixed", "x":
		return true, nil
	}
	return false, t.errorf(i, name, "not a flag: %q", t.cell(i, name))
}

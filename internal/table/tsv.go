package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Frame is the raw content of a TSV file: a header and string records.
// Short records are padded with empty cells.
type Frame struct {
	Header  []string
	Records [][]string

	index map[string]int
}

// NewFrame creates a frame with the given header.
func NewFrame(header ...string) *Frame {
	f := &Frame{Header: header}
	f.reindex()

	return f
}

// ReadFrame reads a tab-separated table. The first line is the header.
func ReadFrame(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading header: empty table")
	}

	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	f := NewFrame(header...)

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}

		f.Append(rec...)
	}

	return f, nil
}

// ReadFrameFile reads a tab-separated table from path.
func ReadFrameFile(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer file.Close()

	f, err := ReadFrame(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Append adds a record, padding or truncating it to the header width.
func (f *Frame) Append(cells ...string) {
	rec := make([]string, len(f.Header))
	copy(rec, cells)
	f.Records = append(f.Records, rec)
}

// HasColumn reports whether the header contains name.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Cell returns the cell of record row in column name, or "" if the column is absent.
func (f *Frame) Cell(row int, name string) string {
	i, ok := f.index[name]
	if !ok {
		return ""
	}

	return f.Records[row][i]
}

// Require returns ErrMissingColumn naming the first absent column.
func (f *Frame) Require(columns ...string) error {
	for _, c := range columns {
		if !f.HasColumn(c) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	return nil
}

// Write encodes the frame as TSV.
func (f *Frame) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(f.Header); err != nil {
		return err
	}

	if err := cw.WriteAll(f.Records); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}

	return nil
}

func (f *Frame) reindex() {
	f.index = make(map[string]int, len(f.Header))
	for i, h := range f.Header {
		if _, dup := f.index[h]; !dup {
			f.index[h] = i
		}
	}
}

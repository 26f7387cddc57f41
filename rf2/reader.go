package rf2

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// RowReader streams tab-separated rows from an opened input: it validates the
// header row once against an expected column schema, then yields each
// subsequent non-empty line split on tabs. It is the one shared component every
// record family's decoder is built on (§4.1); it knows nothing about record
// semantics.
//
// A RowReader is a finite, non-restartable sequence: once exhausted, further
// calls to Next report false. A per-row error does not end the sequence; the
// next call to Next moves on to the following row.
type RowReader struct {
	file       *os.File
	scanner    *bufio.Scanner
	line       int
	filename   string
	numColumns int
}

// Open validates the header of path against expectedColumns and returns a
// RowReader positioned at the first data row. Extra trailing header columns are
// tolerated; fewer columns than expected, or a mismatch at any checked position,
// is a fatal *HeaderError naming the position, the expected name, and what was
// found. A leading UTF-8 byte-order mark on the first header cell is stripped
// before comparison.
func Open(path string, expectedColumns []string) (*RowReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		f.Close()
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading header of %s: %w", path, err)
		}
		return nil, fmt.Errorf("reading header of %s: %w", path, io.ErrUnexpectedEOF)
	}
	header := strings.Split(stripBOM(scanner.Text()), "\t")
	if len(header) < len(expectedColumns) {
		f.Close()
		return nil, fmt.Errorf("reading header of %s: %w", path, &HeaderError{
			Position: len(header),
			Expected: fmt.Sprintf("%d columns", len(expectedColumns)),
			Found:    fmt.Sprintf("%d columns", len(header)),
		})
	}
	for i, want := range expectedColumns {
		if header[i] != want {
			f.Close()
			return nil, fmt.Errorf("reading header of %s: %w", path, &HeaderError{
				Position: i,
				Expected: want,
				Found:    header[i],
			})
		}
	}
	return &RowReader{file: f, scanner: scanner, filename: path, numColumns: len(expectedColumns)}, nil
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, string(rune(0xFEFF)))
}

// Next returns the next non-empty row's cells, or false once the input is
// exhausted. Call Err after Next returns false to distinguish clean EOF from an
// I/O failure. A row with fewer cells than the family's column count is
// reported as a *RowError wrapping ErrUnexpectedColumn rather than being
// handed to the caller, so a malformed line surfaces as a typed error instead
// of letting a decoder index past the end of the row.
func (r *RowReader) Next() ([]string, error, bool) {
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()
		if text == "" {
			continue
		}
		row := strings.Split(text, "\t")
		if len(row) < r.numColumns {
			return nil, &RowError{File: r.filename, Line: r.line, Err: fmt.Errorf("%w: expected %d columns, found %d", ErrUnexpectedColumn, r.numColumns, len(row))}, true
		}
		return row, nil, true
	}
	return nil, nil, false
}

// Line returns the 1-based line number (within the data rows, header excluded)
// of the row most recently returned by Next.
func (r *RowReader) Line() int { return r.line }

// Filename returns the path this reader was opened from.
func (r *RowReader) Filename() string { return r.filename }

// Err returns any I/O error encountered while scanning.
func (r *RowReader) Err() error {
	if err := r.scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", r.filename, err)
	}
	return nil
}

// Close releases the underlying file handle.
func (r *RowReader) Close() error { return r.file.Close() }

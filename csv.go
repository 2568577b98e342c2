package tabular

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// EncodeCSV encodes v as delimited text. Indexed values become a single line
// with no header; column-based and row-based values get a header line
// (unless opts.OmitHeader) followed by one line per row. Every line ends in
// "\n".
func EncodeCSV(v any, opts Options) (string, error) {
	var sb strings.Builder
	if err := WriteCSV(&sb, v, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteCSV is [EncodeCSV] writing to w. Nothing is written when v is not a
// valid table.
func WriteCSV(w io.Writer, v any, opts Options) error {
	return Write(w, CSV, v, opts)
}

func writeCSV(w io.Writer, t Table, opts Options) error {
	cw := &csvWriter{w: bufio.NewWriter(w), opts: opts}
	switch t := t.(type) {
	case Indexed:
		if len(t) > 0 {
			cw.writeCells(t)
		}
	case Columns:
		if !opts.OmitHeader {
			cw.writeRecord(t.Names())
		}
		for _, row := range t.Rows() {
			cw.writeCells(row.Cells())
		}
	case Rows:
		if !opts.OmitHeader {
			cw.writeRecord(t[0].Keys())
		}
		for _, row := range t {
			cw.writeCells(row.Cells())
		}
	}
	return cw.w.Flush()
}

func writeTSV(w io.Writer, t Table, opts Options) error {
	opts.Delimiter = '\t'
	if opts.Quote == '\t' {
		return fmt.Errorf("%w: quote %q is the tsv delimiter", ErrArgument, opts.Quote)
	}
	if opts.Escape == '\t' {
		opts.Escape = '\\'
	}
	return writeCSV(w, t, opts)
}

// csvWriter writes records with a configurable escape character, which
// encoding/csv does not support. bufio keeps the first write error.
type csvWriter struct {
	w    *bufio.Writer
	opts Options
}

func (cw *csvWriter) writeCells(cells []Cell) {
	fields := make([]string, len(cells))
	for i, c := range cells {
		fields[i] = c.String()
	}
	cw.writeRecord(fields)
}

func (cw *csvWriter) writeRecord(fields []string) {
	// A lone empty field would otherwise be a blank line.
	if len(fields) == 1 && fields[0] == "" {
		cw.w.WriteRune(cw.opts.Quote)
		cw.w.WriteRune(cw.opts.Quote)
		cw.w.WriteByte('\n')
		return
	}
	for i, field := range fields {
		if i > 0 {
			cw.w.WriteRune(cw.opts.Delimiter)
		}
		cw.writeField(field)
	}
	cw.w.WriteByte('\n')
}

func (cw *csvWriter) writeField(field string) {
	if !cw.needsQuotes(field) {
		cw.w.WriteString(field)
		return
	}
	q, esc := cw.opts.Quote, cw.opts.Escape
	cw.w.WriteRune(q)
	for _, r := range field {
		if r == q || r == esc {
			cw.w.WriteRune(esc)
		}
		cw.w.WriteRune(r)
	}
	cw.w.WriteRune(q)
}

// needsQuotes reports whether field contains the delimiter, the quote, or a
// line break.
func (cw *csvWriter) needsQuotes(field string) bool {
	return strings.ContainsRune(field, cw.opts.Delimiter) ||
		strings.ContainsRune(field, cw.opts.Quote) ||
		strings.ContainsAny(field, "\r\n")
}

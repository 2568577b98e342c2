package tabular

import (
	"io"
	"strings"
)

// RenderAligned renders v as space-separated, column-aligned text with no
// trailing newline. Column-based values are turned into rows first; indexed
// values render as a single column. Every row counts toward the column
// widths, the first one included.
func RenderAligned(v any, opts Options) (string, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return "", err
	}
	t, err := NormalizeRows(v)
	if err != nil {
		return "", err
	}
	_, rows := grid(t)
	return renderGrid(rows, opts), nil
}

// RenderAlignedCSV decodes delimited text record by record, with no header
// semantics, and renders it like [RenderAligned]. Records may have differing
// field counts.
func RenderAlignedCSV(text string, opts Options) (string, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return "", err
	}
	records, err := DecodeCSVRecords(text, opts)
	if err != nil {
		return "", err
	}
	return renderGrid(records, opts), nil
}

func writeAligned(w io.Writer, t Table, opts Options) error {
	_, rows := grid(t)
	if len(rows) == 0 {
		return nil
	}
	_, err := io.WriteString(w, renderGrid(rows, opts)+"\n")
	return err
}

func renderGrid(rows [][]string, opts Options) string {
	measure := opts.measure()
	widths := columnWidths(rows, measure)
	lines := make([]string, len(rows))
	parts := make([]string, 0, len(widths))
	for i, row := range rows {
		parts = parts[:0]
		for j, cell := range row {
			parts = append(parts, pad(cell, widths[j], opts.align(j), " ", measure))
		}
		lines[i] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}

// grid flattens a table into display strings. Indexed values have no header
// and one cell per row; otherwise the header holds the column names.
func grid(t Table) (header []string, rows [][]string) {
	switch t := t.(type) {
	case Indexed:
		rows = make([][]string, len(t))
		for i, c := range t {
			rows[i] = []string{c.String()}
		}
	case Columns:
		_, rows = grid(t.Rows())
		header = t.Names()
	case Rows:
		if len(t) > 0 {
			header = t[0].Keys()
		}
		rows = make([][]string, len(t))
		for i, row := range t {
			rows[i] = make([]string, len(row))
			for j, f := range row {
				rows[i][j] = f.Value.String()
			}
		}
	}
	return header, rows
}

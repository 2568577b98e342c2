package tabular

import (
	"io"
	"strings"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// writeTable draws the table in a frame, with the column names as a header
// row separated from the data. Indexed values have no header.
func writeTable(w io.Writer, t Table, opts Options) error {
	header, rows := grid(t)
	if len(header) == 0 && len(rows) == 0 {
		return nil
	}
	measure := opts.measure()
	widths := columnWidths(append([][]string{header}, rows...), measure)

	tb := &tableBuilder{widths: widths, opts: opts, measure: measure}
	if opts.Border == BorderNone {
		tb.plain(header, rows)
	} else {
		tb.bordered(borderSets[opts.Border], header, rows)
	}
	_, err := io.WriteString(w, tb.sb.String())
	return err
}

type tableBuilder struct {
	sb      strings.Builder
	widths  []int
	opts    Options
	measure func(string) int
}

func (tb *tableBuilder) cells(row []string) []string {
	out := make([]string, len(tb.widths))
	for i, width := range tb.widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		out[i] = pad(cell, width, tb.opts.align(i), " ", tb.measure)
	}
	return out
}

func (tb *tableBuilder) plain(header []string, rows [][]string) {
	if len(header) > 0 {
		tb.plainRow(header)
		sep := make([]string, len(tb.widths))
		for i, width := range tb.widths {
			sep[i] = strings.Repeat("-", width)
		}
		tb.sb.WriteString(strings.Join(sep, "  ") + "\n")
	}
	for _, row := range rows {
		tb.plainRow(row)
	}
}

func (tb *tableBuilder) plainRow(row []string) {
	tb.sb.WriteString(strings.TrimRight(strings.Join(tb.cells(row), "  "), " "))
	tb.sb.WriteByte('\n')
}

func (tb *tableBuilder) bordered(bc borderChars, header []string, rows [][]string) {
	tb.hline(bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	if len(header) > 0 {
		tb.borderedRow(bc.vertical, header)
		tb.hline(bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
	}
	for _, row := range rows {
		tb.borderedRow(bc.vertical, row)
	}
	tb.hline(bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func (tb *tableBuilder) hline(left, fill, mid, right string) {
	tb.sb.WriteString(left)
	for i, width := range tb.widths {
		tb.sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(tb.widths)-1 {
			tb.sb.WriteString(mid)
		}
	}
	tb.sb.WriteString(right + "\n")
}

func (tb *tableBuilder) borderedRow(vert string, row []string) {
	tb.sb.WriteString(vert)
	for _, cell := range tb.cells(row) {
		tb.sb.WriteString(" " + cell + " " + vert)
	}
	tb.sb.WriteByte('\n')
}

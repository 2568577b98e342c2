package tabular

import (
	"fmt"
	"io"
	"strings"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>", "\r", "<br>")

// writeMarkdown renders a GitHub-flavored Markdown table. Markdown tables
// need a header, so indexed values are rejected.
func writeMarkdown(w io.Writer, t Table, opts Options) error {
	header, rows := grid(t)
	if len(header) == 0 {
		return fmt.Errorf("%w: format %q requires column names, got %s value", ErrStructure, Markdown, t.Shape())
	}
	header = escapeMarkdown(header)
	for i, row := range rows {
		rows[i] = escapeMarkdown(row)
	}

	// Minimum width 3 leaves room for the alignment markers.
	measure := opts.measure()
	widths := columnWidths(append([][]string{header}, rows...), measure)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	var sb strings.Builder
	writeMarkdownRow(&sb, header, widths, opts, measure)
	sep := make([]string, len(widths))
	for i, width := range widths {
		switch opts.align(i) {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	fmt.Fprintf(&sb, "| %s |\n", strings.Join(sep, " | "))
	for _, row := range rows {
		writeMarkdownRow(&sb, row, widths, opts, measure)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMarkdownRow(sb *strings.Builder, cells []string, widths []int, opts Options, measure func(string) int) {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = pad(cells[i], width, opts.align(i), " ", measure)
	}
	fmt.Fprintf(sb, "| %s |\n", strings.Join(padded, " | "))
}

func escapeMarkdown(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markdownEscaper.Replace(c)
	}
	return out
}

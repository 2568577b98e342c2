package tabular

import (
	"fmt"
	"html"
	"io"
	"strings"
)

func writeHTML(w io.Writer, t Table, opts Options) error {
	header, rows := grid(t)
	var sb strings.Builder
	sb.WriteString("<table>\n")
	if len(header) > 0 {
		sb.WriteString("  <thead>\n    <tr>\n")
		for i, col := range header {
			fmt.Fprintf(&sb, "      <th%s>%s</th>\n", alignStyle(opts.align(i)), html.EscapeString(col))
		}
		sb.WriteString("    </tr>\n  </thead>\n")
	}
	sb.WriteString("  <tbody>\n")
	for _, row := range rows {
		sb.WriteString("    <tr>\n")
		for i, cell := range row {
			fmt.Fprintf(&sb, "      <td%s>%s</td>\n", alignStyle(opts.align(i)), html.EscapeString(cell))
		}
		sb.WriteString("    </tr>\n")
	}
	sb.WriteString("  </tbody>\n</table>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func alignStyle(a Alignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}

package tabular

import (
	"fmt"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Ambiguous-width runes are narrow regardless of the locale environment.
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// DisplayWidth returns the number of terminal columns s occupies. Wide and
// full-width runes count as two.
func DisplayWidth(s string) int {
	return widthCond.StringWidth(s)
}

// ColumnWidths returns, per column index, the widest display width of that
// column's cells across all rows. Short rows contribute nothing to the
// columns they lack.
func ColumnWidths(rows [][]Cell) []int {
	text := make([][]string, len(rows))
	for i, row := range rows {
		text[i] = make([]string, len(row))
		for j, c := range row {
			text[i][j] = c.String()
		}
	}
	return columnWidths(text, DisplayWidth)
}

func columnWidths(rows [][]string, measure func(string) int) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			if w := measure(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Pad pads s with spaces to width display columns. It never truncates: s is
// returned unchanged when it is already wide enough. Center alignment puts
// the extra column, if any, on the right.
func Pad(s string, width int, align Alignment) (string, error) {
	return PadWith(s, width, align, " ")
}

// PadWith is [Pad] with a custom fill string. The fill repeats until the
// target width is reached; a column a wide fill rune cannot occupy is filled
// with a space, so the result is always exactly max(width, DisplayWidth(s))
// columns wide.
func PadWith(s string, width int, align Alignment, fill string) (string, error) {
	if !align.valid() {
		return "", fmt.Errorf("%w: unknown alignment %s", ErrArgument, align)
	}
	if DisplayWidth(fill) == 0 {
		return "", fmt.Errorf("%w: fill %q has no display width", ErrArgument, fill)
	}
	return pad(s, width, align, fill, DisplayWidth), nil
}

func pad(s string, width int, align Alignment, fill string, measure func(string) int) string {
	n := width - measure(s)
	if n <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return filler(fill, n, measure) + s
	case AlignCenter:
		left := n / 2
		return filler(fill, left, measure) + s + filler(fill, n-left, measure)
	default:
		return s + filler(fill, n, measure)
	}
}

// filler repeats fill to cover exactly n columns. The fill advances one
// grapheme cluster at a time and the output is measured as a whole, so flags
// and combining sequences count the way DisplayWidth counts them. Columns no
// cluster fits into are filled with spaces.
func filler(fill string, n int, measure func(string) int) string {
	if fill == " " {
		return strings.Repeat(" ", n)
	}
	var sb strings.Builder
	used := 0
	for used < n {
		start := used
		g := graphemes.FromString(fill)
		for g.Next() {
			w := measure(sb.String() + g.Value())
			if w <= used {
				continue
			}
			if w > n {
				sb.WriteString(strings.Repeat(" ", n-used))
				return sb.String()
			}
			sb.WriteString(g.Value())
			used = w
			if used == n {
				return sb.String()
			}
		}
		if used == start {
			break
		}
	}
	sb.WriteString(strings.Repeat(" ", n-used))
	return sb.String()
}

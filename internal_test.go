package tabular

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestFillerCoversExactWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "    ", filler(" ", 4, DisplayWidth))
	assert.Equal(t, "", filler("ab", 0, DisplayWidth))
	assert.Equal(t, "aba", filler("ab", 3, DisplayWidth))
	assert.Equal(t, "日 ", filler("日", 3, DisplayWidth))
	// A combining mark stays on its base.
	assert.Equal(t, "-\u0301-\u0301", filler("-\u0301", 2, DisplayWidth))
	// A wide cluster that would overrun leaves a space.
	assert.Equal(t, "ab ", filler("ab\U0001F469\u200d\U0001F4BB", 3, DisplayWidth))
}

func TestFillerRuneMeasure(t *testing.T) {
	t.Parallel()
	// Counted in runes, a wide fill rune occupies one column.
	assert.Equal(t, "日日", filler("日", 2, utf8.RuneCountInString))
}

func TestColumnWidthsRuneMeasure(t *testing.T) {
	t.Parallel()
	rows := [][]string{{"日本", "x"}, {"abc"}}
	assert.Equal(t, []int{3, 1}, columnWidths(rows, utf8.RuneCountInString))
	assert.Equal(t, []int{4, 1}, columnWidths(rows, DisplayWidth))
}

func TestNeedsQuotes(t *testing.T) {
	t.Parallel()
	cw := &csvWriter{opts: Options{}.withDefaults()}
	tests := map[string]struct {
		field string
		want  bool
	}{
		"plain":     {field: "abc", want: false},
		"empty":     {field: "", want: false},
		"escape":    {field: `a\b`, want: false},
		"delimiter": {field: "a,b", want: true},
		"quote":     {field: `a"b`, want: true},
		"newline":   {field: "a\nb", want: true},
		"carriage":  {field: "a\rb", want: true},
		"spaces":    {field: " a ", want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cw.needsQuotes(tt.field))
		})
	}
}

func TestWriteCSVFlushError(t *testing.T) {
	t.Parallel()
	err := writeCSV(&errWriterInternal{}, Indexed{String("a")}, Options{}.withDefaults())
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestWriteCSVIndexedEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, Indexed{}, Options{}.withDefaults()))
	assert.Empty(t, buf.String())
}

func TestParseRecordsEscapeEqualsQuote(t *testing.T) {
	t.Parallel()
	opts := Options{Escape: '"'}.withDefaults()
	got := parseRecords(`"a""b",c`+"\n"+`"x\y"`, opts)
	assert.Equal(t, [][]string{{`a"b`, "c"}, {`x\y`}}, got)
}

func TestParseRecordsTrailingEscape(t *testing.T) {
	t.Parallel()
	// An escape at the end of the input has nothing to escape.
	got := parseRecords(`"a\`, Options{}.withDefaults())
	assert.Equal(t, [][]string{{`a\`}}, got)
}

func TestGrid(t *testing.T) {
	t.Parallel()
	header, rows := grid(Columns{{Name: "a", Cells: []Cell{Int(1)}}, {Name: "b", Cells: []Cell{Null()}}})
	assert.Equal(t, []string{"a", "b"}, header)
	assert.Equal(t, [][]string{{"1", ""}}, rows)

	header, rows = grid(Columns{{Name: "a", Cells: []Cell{}}})
	assert.Equal(t, []string{"a"}, header)
	assert.Empty(t, rows)

	header, rows = grid(Indexed{Bool(true)})
	assert.Nil(t, header)
	assert.Equal(t, [][]string{{"1"}}, rows)
}

func TestMapContainerKeys(t *testing.T) {
	t.Parallel()
	c, ok := asContainer(map[uint8]string{0: "a", 1: "b"})
	require.True(t, ok)
	assert.True(t, c.seq)
	assert.Equal(t, []string{"0", "1"}, c.keys)

	c, ok = asContainer(map[int]string{-1: "a", 0: "b"})
	require.True(t, ok)
	assert.False(t, c.seq)
	assert.Equal(t, []string{"-1", "0"}, c.keys)

	_, ok = asContainer(map[float64]string{1.5: "a"})
	assert.False(t, ok)
}

func TestNodeContainerAliases(t *testing.T) {
	t.Parallel()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("base: &b [1, 2]\ncopy: *b\n"), &doc))
	tbl, err := Detect(&doc)
	require.NoError(t, err)
	cols, ok := tbl.(Columns)
	require.True(t, ok)
	assert.Equal(t, []string{"base", "copy"}, cols.Names())
	assert.Equal(t, []Cell{Int(1), Int(2)}, cols[1].Cells)
}

func TestNodeCellTags(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		src  string
		want Cell
	}{
		"int":        {src: "42", want: Int(42)},
		"big uint":   {src: "18446744073709551615", want: Uint(18446744073709551615)},
		"float":      {src: "2.50", want: Float(2.5)},
		"bool":       {src: "true", want: Bool(true)},
		"null":       {src: "~", want: Null()},
		"quoted int": {src: `"42"`, want: String("42")},
		"string":     {src: "hello", want: String("hello")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var doc yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tt.src), &doc))
			got, ok := CellOf(doc.Content[0])
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsLikelyTOML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  bool
	}{
		"section":       {input: "[server]\nport = 80", want: true},
		"array section": {input: "[[rows]]\na = 1", want: true},
		"pairs":         {input: "a = 1\nb = \"x\"", want: true},
		"comments only": {input: "# a\n# b", want: false},
		"yaml":          {input: "a: 1\nb: 2", want: false},
		"json object":   {input: `{"a": 1}`, want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isLikelyTOML([]byte(tt.input)))
		})
	}
}

func TestOptionsAlign(t *testing.T) {
	t.Parallel()
	o := Options{Alignment: AlignRight, LeftAlignFirstColumn: true}
	assert.Equal(t, AlignLeft, o.align(0))
	assert.Equal(t, AlignRight, o.align(1))
	o.LeftAlignFirstColumn = false
	assert.Equal(t, AlignRight, o.align(0))
}

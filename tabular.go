package tabular

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-logr/logr"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrStructure reports a value that is not indexed, column-based, or
	// row-based, or a cell that is not a scalar.
	ErrStructure = errors.New("invalid table structure")
	// ErrArgument reports an invalid option supplied by the caller.
	ErrArgument          = errors.New("invalid argument")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Format represents an output format.
type Format string

const (
	Aligned  Format = "aligned"
	Boxed    Format = "table"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

var formats = []Format{Aligned, Boxed, CSV, TSV, Markdown, HTML, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignNames = [...]string{AlignLeft: "left", AlignCenter: "center", AlignRight: "right"}

func (a Alignment) String() string {
	if a.valid() {
		return alignNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

func (a Alignment) valid() bool { return a >= AlignLeft && a <= AlignRight }

// ParseAlignment parses one of the keywords "left", "center", or "right".
func ParseAlignment(s string) (Alignment, error) {
	for i, name := range alignNames {
		if strings.EqualFold(s, name) {
			return Alignment(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown alignment %q", ErrArgument, s)
}

// BorderStyle controls the border characters of the [Boxed] format.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = [...]string{
	BorderRounded: "rounded",
	BorderNone:    "none",
	BorderASCII:   "ascii",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

func (b BorderStyle) String() string {
	if b.valid() {
		return borderNames[b]
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

func (b BorderStyle) valid() bool { return b >= BorderRounded && b <= BorderDouble }

// ParseBorder parses a border style name such as "rounded" or "ascii".
func ParseBorder(s string) (BorderStyle, error) {
	for i, name := range borderNames {
		if strings.EqualFold(s, name) {
			return BorderStyle(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown border style %q", ErrArgument, s)
}

// Options configures encoding, decoding, and rendering. The zero value is
// usable: unset delimiter, quote, and escape fall back to ',', '"', and '\'.
type Options struct {
	// Delimiter separates fields. Default ','.
	Delimiter rune
	// Quote wraps fields that contain the delimiter, a quote, or a line
	// break. Default '"'.
	Quote rune
	// Escape precedes an embedded quote inside a quoted field. Default '\'.
	// Set it equal to Quote for RFC 4180 quote doubling.
	Escape rune
	// OmitHeader suppresses the header line when encoding column-based or
	// row-based values.
	OmitHeader bool

	// Alignment applies to every rendered cell.
	Alignment Alignment
	// LeftAlignFirstColumn forces the first column to the left regardless of
	// Alignment, for tables whose first column is a label.
	LeftAlignFirstColumn bool
	// CharWidth measures cells in runes instead of terminal display columns.
	CharWidth bool
	// Border selects the frame drawn by the Boxed format.
	Border BorderStyle

	// Logger receives diagnostics such as dropped CSV records. The zero
	// value discards everything.
	Logger logr.Logger
}

// DefaultOptions returns the defaults with every field spelled out.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		Quote:     '"',
		Escape:    '\\',
		Alignment: AlignLeft,
		Border:    BorderRounded,
	}
}

func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.Quote == 0 {
		o.Quote = '"'
	}
	if o.Escape == 0 {
		o.Escape = '\\'
	}
	return o
}

// Validate reports an [ErrArgument] for settings no operation can honor.
func (o Options) Validate() error {
	o = o.withDefaults()
	for _, c := range []struct {
		name string
		r    rune
	}{{"delimiter", o.Delimiter}, {"quote", o.Quote}, {"escape", o.Escape}} {
		if !utf8.ValidRune(c.r) || c.r == '\n' || c.r == '\r' {
			return fmt.Errorf("%w: %s %q", ErrArgument, c.name, c.r)
		}
	}
	if o.Delimiter == o.Quote {
		return fmt.Errorf("%w: delimiter and quote are both %q", ErrArgument, o.Delimiter)
	}
	if o.Escape == o.Delimiter {
		return fmt.Errorf("%w: delimiter and escape are both %q", ErrArgument, o.Delimiter)
	}
	if !o.Alignment.valid() {
		return fmt.Errorf("%w: unknown alignment %s", ErrArgument, o.Alignment)
	}
	if !o.Border.valid() {
		return fmt.Errorf("%w: unknown border style %s", ErrArgument, o.Border)
	}
	return nil
}

func (o Options) measure() func(string) int {
	if o.CharWidth {
		return utf8.RuneCountInString
	}
	return DisplayWidth
}

// align returns the alignment of column col.
func (o Options) align(col int) Alignment {
	if col == 0 && o.LeftAlignFirstColumn {
		return AlignLeft
	}
	return o.Alignment
}

// Write renders v in format f and writes it to w. The value is validated
// before anything is written, so a structure error never leaves partial
// output behind.
func Write(w io.Writer, f Format, v any, opts Options) error {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}
	t, err := Detect(v)
	if err != nil {
		return err
	}
	switch f {
	case Aligned:
		return writeAligned(w, t, opts)
	case Boxed:
		return writeTable(w, t, opts)
	case CSV:
		return writeCSV(w, t, opts)
	case TSV:
		return writeTSV(w, t, opts)
	case Markdown:
		return writeMarkdown(w, t, opts)
	case HTML:
		return writeHTML(w, t, opts)
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	default:
		return writeYAML(w, t)
	}
}

// Marshal renders v in format f and returns the bytes.
func Marshal(f Format, v any, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, v, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

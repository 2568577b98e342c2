// Package tabular classifies, converts, serializes, and renders tabular data.
//
// # Shapes
//
// A tabular value has one of three shapes:
//
//   - [Indexed]: an ordered list of scalars with no column identity
//   - [Columns]: named columns of equal length (column-based)
//   - [Rows]: rows that share one ordered key list (row-based)
//
// Cells are scalars ([Cell]): strings, numbers, booleans, or null. For
// display, true renders as "1", false and null as "".
//
// [Detect] turns loose input (slices, maps, YAML nodes, or the typed values
// above) into a [Table], checking the shapes in the order indexed,
// column-based, row-based. Anything else, including a nested collection in
// a cell, fails with [ErrStructure]. [Classify] reports only the [Shape]:
//
//	tabular.Classify([]any{1, []any{2, 3}, 4}) // tabular.Invalid
//
// [NormalizeRows] converts column-based values to rows and passes the other
// shapes through.
//
// # CSV
//
// [EncodeCSV] writes a header line followed by one line per row. A field is
// quoted when it holds the delimiter, the quote, or a line break; inside
// quotes the escape character precedes embedded quotes:
//
//	out, _ := tabular.EncodeCSV(tabular.Columns{
//		{Name: "Name", Cells: []tabular.Cell{tabular.String("Alice"), tabular.String("Bob")}},
//		{Name: "Age", Cells: []tabular.Cell{tabular.Int(30), tabular.Int(25)}},
//	}, tabular.Options{})
//	// Name,Age
//	// Alice,30
//	// Bob,25
//
// [DecodeCSV] reads a header line and collects values per header. Records
// whose field count differs from the header count are dropped and reported
// to [Options.Logger] at verbosity 1.
// [Decoded.Flatten] merges the result into [Columns]. [DecodeCSVRecords]
// skips header handling entirely.
//
// # Alignment
//
// [RenderAligned] and [RenderAlignedCSV] pad every cell to its column's
// width and join cells with one space. Widths are measured in terminal
// columns ([DisplayWidth]) so wide East Asian text lines up; set
// [Options.CharWidth] to count runes instead. [Pad] and [PadWith] expose the
// padding rules directly.
//
// # Formats
//
// [Write] and [Marshal] render any valid value as one of the [Format]
// constants: aligned text, a bordered table, CSV, TSV, Markdown, HTML, JSON,
// JSONL, or YAML. Use [ParseFormat] to turn a flag value into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrStructure]: the value is not a valid table
//   - [ErrArgument]: an option such as the alignment or delimiter is invalid
//   - [ErrUnsupportedFormat]: unknown format string
//
// All functions are pure and safe for concurrent use.
package tabular

package tabular

// Decoded is the result of decoding CSV text with a header line. Columns[i]
// holds the values of Headers[i]; keeping one entry per header means
// duplicate header names never collide.
type Decoded struct {
	Headers []string
	Columns []Column
}

// Flatten merges the per-header columns into one column-based value. A
// repeated header keeps the position of its first occurrence and the values
// of its last.
func (d *Decoded) Flatten() Columns {
	out := make(Columns, 0, len(d.Columns))
	pos := make(map[string]int, len(d.Columns))
	for _, col := range d.Columns {
		if i, ok := pos[col.Name]; ok {
			out[i].Cells = col.Cells
			continue
		}
		pos[col.Name] = len(out)
		out = append(out, col)
	}
	return out
}

// DecodeCSV decodes text whose first record holds the header names. A record
// whose field count differs from the header count is dropped without error;
// opts.Logger notes each drop at V(1). Empty text decodes to an empty result.
func DecodeCSV(text string, opts Options) (*Decoded, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	records := parseRecords(text, opts)
	d := &Decoded{}
	if len(records) == 0 {
		return d, nil
	}
	d.Headers = records[0]
	d.Columns = make([]Column, len(d.Headers))
	for i, h := range d.Headers {
		d.Columns[i] = Column{Name: h, Cells: []Cell{}}
	}
	for n, rec := range records[1:] {
		if len(rec) != len(d.Headers) {
			opts.Logger.V(1).Info("dropping csv record with mismatched field count",
				"record", n+2, "fields", len(rec), "want", len(d.Headers))
			continue
		}
		for i, field := range rec {
			d.Columns[i].Cells = append(d.Columns[i].Cells, String(field))
		}
	}
	return d, nil
}

// DecodeCSVRecords decodes text into one field list per record, with no
// header handling and no filtering.
func DecodeCSVRecords(text string, opts Options) ([][]string, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return parseRecords(text, opts), nil
}

// parseRecords splits text into records. "\r\n", "\r", and "\n" all end a
// record outside quotes and are kept as content inside them. Inside quotes an
// escaped or doubled quote is a literal quote and an escaped escape is one
// escape; any other escape is literal. A quote opens a quoted section only at
// the start of a field, and text after a closing quote is kept.
// Unterminated quotes run to the end of the input. A blank line is a record
// holding one empty field; only a terminator at the very end adds nothing.
func parseRecords(text string, opts Options) [][]string {
	var (
		records [][]string
		record  []string
		field   []rune
		quoted  bool // inside a quoted section
		touched bool // current record has a delimiter or quote
	)
	delim, q, esc := opts.Delimiter, opts.Quote, opts.Escape
	in := []rune(text)

	endField := func() {
		record = append(record, string(field))
		field = field[:0]
	}
	endRecord := func() {
		endField()
		records = append(records, record)
		record, touched = nil, false
	}

	for i := 0; i < len(in); i++ {
		r := in[i]
		if quoted {
			var next rune = -1
			if i+1 < len(in) {
				next = in[i+1]
			}
			switch {
			case r == esc && esc != q && (next == q || next == esc):
				field = append(field, next)
				i++
			case r == q && next == q:
				field = append(field, q)
				i++
			case r == q:
				quoted = false
			default:
				field = append(field, r)
			}
			continue
		}
		switch r {
		case delim:
			touched = true
			endField()
		case q:
			touched = true
			if len(field) == 0 {
				quoted = true
			} else {
				field = append(field, r)
			}
		case '\r':
			if i+1 < len(in) && in[i+1] == '\n' {
				i++
			}
			endRecord()
		case '\n':
			endRecord()
		default:
			field = append(field, r)
		}
	}
	if len(field) > 0 || len(record) > 0 || touched {
		endRecord()
	}
	return records
}

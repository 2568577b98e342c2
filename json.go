package tabular

import (
	"bytes"
	"encoding/json"
	"io"
)

// MarshalJSON encodes r as a JSON object with its keys in row order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// records returns the JSON/YAML view of t: a list of scalars for indexed
// values, otherwise a list of rows.
func records(t Table) []any {
	var out []any
	switch t := t.(type) {
	case Indexed:
		out = make([]any, len(t))
		for i, c := range t {
			out[i] = c
		}
	case Columns:
		return records(t.Rows())
	case Rows:
		out = make([]any, len(t))
		for i, r := range t {
			out[i] = r
		}
	}
	return out
}

func writeJSON(w io.Writer, t Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(records(t))
}

func writeJSONL(w io.Writer, t Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, rec := range records(t) {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

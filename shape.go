package tabular

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Shape is the structural classification of a tabular value.
type Shape int

const (
	Invalid Shape = iota
	IndexedShape
	ColumnBased
	RowBased
)

var shapeNames = [...]string{Invalid: "invalid", IndexedShape: "indexed", ColumnBased: "column-based", RowBased: "row-based"}

func (s Shape) String() string {
	if s >= Invalid && s <= RowBased {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Table is a validated tabular value: [Indexed], [Columns], or [Rows].
type Table interface {
	Shape() Shape
	table()
}

// Indexed is an ordered sequence of scalars with no column identity.
type Indexed []Cell

// Column is one named column of a column-based value.
type Column struct {
	Name  string
	Cells []Cell
}

// Columns is a column-based value. Every column has the same length.
type Columns []Column

// Field is one key/value pair of a row.
type Field struct {
	Key   string
	Value Cell
}

// Row is an ordered mapping from column name to cell.
type Row []Field

// Rows is a row-based value. Every row has the same ordered keys.
type Rows []Row

func (Indexed) Shape() Shape { return IndexedShape }
func (Columns) Shape() Shape { return ColumnBased }
func (Rows) Shape() Shape    { return RowBased }

func (Indexed) table() {}
func (Columns) table() {}
func (Rows) table()    {}

// Names returns the column names in order.
func (c Columns) Names() []string {
	names := make([]string, len(c))
	for i, col := range c {
		names[i] = col.Name
	}
	return names
}

// Len returns the number of cells per column.
func (c Columns) Len() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0].Cells)
}

// Rows builds one row per position, reading that position from every
// column in column order.
func (c Columns) Rows() Rows {
	rows := make(Rows, c.Len())
	for i := range rows {
		row := make(Row, len(c))
		for j, col := range c {
			row[j] = Field{Key: col.Name, Value: col.Cells[i]}
		}
		rows[i] = row
	}
	return rows
}

// Keys returns the keys of r in order.
func (r Row) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// Cells returns the values of r in order.
func (r Row) Cells() []Cell {
	cells := make([]Cell, len(r))
	for i, f := range r {
		cells[i] = f.Value
	}
	return cells
}

// Get returns the value stored under key.
func (r Row) Get(key string) (Cell, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Cell{}, false
}

// Columns inverts [Columns.Rows]. It assumes the rows share one key order,
// which [Detect] guarantees.
func (r Rows) Columns() Columns {
	if len(r) == 0 {
		return Columns{}
	}
	cols := make(Columns, len(r[0]))
	for j, f := range r[0] {
		cols[j] = Column{Name: f.Key, Cells: make([]Cell, len(r))}
	}
	for i, row := range r {
		for j, f := range row {
			cols[j].Cells[i] = f.Value
		}
	}
	return cols
}

// IsIndexed reports whether v is a sequence of scalars keyed 0..n-1. The
// empty collection is indexed.
func IsIndexed(v any) bool {
	c, ok := asContainer(v)
	if !ok {
		return false
	}
	_, ok = c.indexed()
	return ok
}

// IsColumnBased reports whether v is a non-empty collection of equal-length
// scalar sequences.
func IsColumnBased(v any) bool {
	c, ok := asContainer(v)
	if !ok {
		return false
	}
	_, ok = c.columns()
	return ok
}

// IsRowBased reports whether v is a non-empty collection of scalar mappings
// that share one ordered key list.
func IsRowBased(v any) bool {
	c, ok := asContainer(v)
	if !ok {
		return false
	}
	_, _, ok = c.rows()
	return ok
}

// Classify checks v against the shapes in priority order: indexed, then
// column-based, then row-based.
func Classify(v any) Shape {
	t, err := Detect(v)
	if err != nil {
		return Invalid
	}
	return t.Shape()
}

// Detect classifies v and returns it as a typed [Table]. Invalid values
// yield an error wrapping [ErrStructure].
//
// Besides the typed tables, v may be any slice or array, a map with string
// or integer keys, or a YAML mapping or sequence node. Go maps have no order,
// so their string keys are visited sorted; YAML nodes keep document order.
// A sequence used as a row is keyed by its decimal positions.
func Detect(v any) (Table, error) {
	c, ok := asContainer(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a collection", ErrStructure, v)
	}
	if t, ok := c.indexed(); ok {
		return t, nil
	}
	if t, ok := c.columns(); ok {
		return t, nil
	}
	t, why, ok := c.rows()
	if ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: must be indexed, column-based, or row-based: %s", ErrStructure, why)
}

// NormalizeRows converts a column-based value into rows. Indexed and
// row-based values come back unchanged.
func NormalizeRows(v any) (Table, error) {
	t, err := Detect(v)
	if err != nil {
		return nil, err
	}
	if cols, ok := t.(Columns); ok {
		return cols.Rows(), nil
	}
	return t, nil
}

// container is the ordered view of a sequence or mapping.
type container struct {
	seq    bool // keys are the positions 0..n-1
	keys   []string
	values []any
}

func (c container) scalars() ([]Cell, bool) {
	cells := make([]Cell, len(c.values))
	for i, v := range c.values {
		cell, ok := CellOf(v)
		if !ok {
			return nil, false
		}
		cells[i] = cell
	}
	return cells, true
}

func (c container) indexed() (Indexed, bool) {
	if !c.seq && len(c.values) > 0 {
		return nil, false
	}
	cells, ok := c.scalars()
	if !ok {
		return nil, false
	}
	return Indexed(cells), true
}

func (c container) columns() (Columns, bool) {
	if len(c.values) == 0 {
		return nil, false
	}
	cols := make(Columns, len(c.values))
	for i, v := range c.values {
		inner, ok := asContainer(v)
		if !ok || !inner.seq {
			return nil, false
		}
		cells, ok := inner.scalars()
		if !ok || (i > 0 && len(cells) != len(cols[0].Cells)) {
			return nil, false
		}
		cols[i] = Column{Name: c.keys[i], Cells: cells}
	}
	return cols, true
}

// rows also explains why v is not row-based, for the structure error.
func (c container) rows() (Rows, string, bool) {
	if len(c.values) == 0 {
		return nil, "empty mapping", false
	}
	rows := make(Rows, len(c.values))
	for i, v := range c.values {
		inner, ok := asContainer(v)
		if !ok {
			return nil, fmt.Sprintf("element %s is a scalar among collections", c.keys[i]), false
		}
		cells, ok := inner.scalars()
		if !ok {
			return nil, fmt.Sprintf("element %s holds a non-scalar cell", c.keys[i]), false
		}
		if i > 0 && !slices.Equal(inner.keys, rows[0].Keys()) {
			return nil, fmt.Sprintf("element %s has keys %v, want %v", c.keys[i], inner.keys, rows[0].Keys()), false
		}
		row := make(Row, len(cells))
		for j, cell := range cells {
			row[j] = Field{Key: inner.keys[j], Value: cell}
		}
		rows[i] = row
	}
	return rows, "", true
}

func asContainer(v any) (container, bool) {
	switch x := v.(type) {
	case nil:
		return container{}, false
	case Indexed:
		return sequence(len(x), func(i int) any { return x[i] }), true
	case Columns:
		c := container{keys: make([]string, len(x)), values: make([]any, len(x))}
		for i, col := range x {
			c.keys[i] = col.Name
			c.values[i] = Indexed(col.Cells)
		}
		return c, true
	case Row:
		c := container{keys: make([]string, len(x)), values: make([]any, len(x))}
		for i, f := range x {
			c.keys[i] = f.Key
			c.values[i] = f.Value
		}
		return c, true
	case Rows:
		return sequence(len(x), func(i int) any { return x[i] }), true
	case []any:
		return sequence(len(x), func(i int) any { return x[i] }), true
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		c := container{keys: keys, values: make([]any, len(keys))}
		for i, k := range keys {
			c.values[i] = x[k]
		}
		return c, true
	case *yaml.Node:
		return nodeContainer(x)
	case yaml.Node:
		return nodeContainer(&x)
	}
	return reflectContainer(reflect.ValueOf(v))
}

func sequence(n int, at func(int) any) container {
	c := container{seq: true, keys: make([]string, n), values: make([]any, n)}
	for i := range n {
		c.keys[i] = strconv.Itoa(i)
		c.values[i] = at(i)
	}
	return c
}

func nodeContainer(n *yaml.Node) (container, bool) {
	n = resolveAlias(n)
	if n == nil {
		return container{}, false
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return container{}, false
		}
		return nodeContainer(n.Content[0])
	case yaml.SequenceNode:
		return sequence(len(n.Content), func(i int) any { return n.Content[i] }), true
	case yaml.MappingNode:
		c := container{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			c.keys = append(c.keys, resolveAlias(n.Content[i]).Value)
			c.values = append(c.values, n.Content[i+1])
		}
		return c, true
	default:
		return container{}, false
	}
}

// reflectContainer handles typed slices, arrays, and maps.
func reflectContainer(rv reflect.Value) (container, bool) {
	switch rv.Kind() { //nolint:exhaustive // only containers matter
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return container{}, false
		}
		return asContainer(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		return sequence(rv.Len(), func(i int) any { return rv.Index(i).Interface() }), true
	case reflect.Map:
		return mapContainer(rv)
	default:
		return container{}, false
	}
}

func mapContainer(rv reflect.Value) (container, bool) {
	keys := rv.MapKeys()
	c := container{keys: make([]string, len(keys)), values: make([]any, len(keys))}
	switch rv.Type().Key().Kind() { //nolint:exhaustive // other key kinds are rejected
	case reflect.String:
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for i, k := range keys {
			c.keys[i] = k.String()
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Int() < keys[j].Int() })
		c.seq = true
		for i, k := range keys {
			c.keys[i] = strconv.FormatInt(k.Int(), 10)
			c.seq = c.seq && k.Int() == int64(i)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Uint() < keys[j].Uint() })
		c.seq = true
		for i, k := range keys {
			c.keys[i] = strconv.FormatUint(k.Uint(), 10)
			c.seq = c.seq && k.Uint() == uint64(i)
		}
	default:
		return container{}, false
	}
	for i, k := range keys {
		c.values[i] = rv.MapIndex(k).Interface()
	}
	return c, true
}

package tabular

import (
	"encoding/json"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind identifies the variant held by a [Cell].
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
)

// Cell is a scalar table value: a string, number, boolean, or null.
// The zero Cell is null.
type Cell struct {
	kind Kind
	text string // string value, or the decimal form of a number
	b    bool
}

// String returns a string cell.
func String(s string) Cell { return Cell{kind: KindString, text: s} }

// Int returns a number cell holding n.
func Int(n int64) Cell { return Cell{kind: KindNumber, text: strconv.FormatInt(n, 10)} }

// Uint returns a number cell holding n.
func Uint(n uint64) Cell { return Cell{kind: KindNumber, text: strconv.FormatUint(n, 10)} }

// Float returns a number cell holding f in its shortest exact decimal form.
func Float(f float64) Cell { return Cell{kind: KindNumber, text: strconv.FormatFloat(f, 'f', -1, 64)} }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return Cell{kind: KindBool, b: b} }

// Null returns the null cell.
func Null() Cell { return Cell{} }

// Kind reports which variant c holds.
func (c Cell) Kind() Kind { return c.kind }

// IsNull reports whether c is null.
func (c Cell) IsNull() bool { return c.kind == KindNull }

// String returns the display form of c. Booleans render as "1" and "",
// null renders as "". Every encoder and width calculation goes through here.
func (c Cell) String() string {
	switch c.kind {
	case KindBool:
		if c.b {
			return "1"
		}
		return ""
	case KindNull:
		return ""
	default:
		return c.text
	}
}

// MarshalJSON keeps the native JSON type of the cell.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(c.b)
	case KindNumber:
		if json.Valid([]byte(c.text)) {
			return []byte(c.text), nil
		}
	}
	return json.Marshal(c.text)
}

// MarshalYAML keeps the native YAML type of the cell.
func (c Cell) MarshalYAML() (any, error) {
	return c.yamlNode(), nil
}

func (c Cell) yamlNode() *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.text}
	switch c.kind {
	case KindNull:
		n.Tag, n.Value = "!!null", "null"
	case KindBool:
		n.Tag, n.Value = "!!bool", strconv.FormatBool(c.b)
	case KindNumber:
		n.Tag = "!!float"
		if _, err := strconv.ParseInt(c.text, 10, 64); err == nil {
			n.Tag = "!!int"
		}
	}
	return n
}

// CellOf converts a Go scalar into a Cell. It accepts nil, strings, booleans,
// every integer and float kind (named types included), json.Number, and YAML
// scalar nodes. Anything else reports false.
func CellOf(v any) (Cell, bool) {
	switch x := v.(type) {
	case nil:
		return Null(), true
	case Cell:
		return x, true
	case string:
		return String(x), true
	case bool:
		return Bool(x), true
	case int:
		return Int(int64(x)), true
	case int64:
		return Int(x), true
	case float64:
		return Float(x), true
	case float32:
		return Cell{kind: KindNumber, text: strconv.FormatFloat(float64(x), 'f', -1, 32)}, true
	case json.Number:
		return Cell{kind: KindNumber, text: x.String()}, true
	case *yaml.Node:
		return nodeCell(x)
	case yaml.Node:
		return nodeCell(&x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // containers and other kinds are not scalars
	case reflect.String:
		return String(rv.String()), true
	case reflect.Bool:
		return Bool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint()), true
	case reflect.Float32:
		return Cell{kind: KindNumber, text: strconv.FormatFloat(rv.Float(), 'f', -1, 32)}, true
	case reflect.Float64:
		return Float(rv.Float()), true
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), true
		}
		return CellOf(rv.Elem().Interface())
	default:
		return Cell{}, false
	}
}

// nodeCell resolves a YAML scalar node using its resolved tag.
func nodeCell(n *yaml.Node) (Cell, bool) {
	n = resolveAlias(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return Cell{}, false
	}
	switch n.ShortTag() {
	case "!!null":
		return Null(), true
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return Bool(b), true
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Int(i), true
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return Uint(u), true
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return Float(f), true
		}
	}
	return String(n.Value), true
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

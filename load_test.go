package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabular"
)

func TestLoad(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		shape tabular.Shape
		names []string
	}{
		"json columns": {
			input: `{"b": [1, 2], "a": [3, 4]}`,
			shape: tabular.ColumnBased,
			names: []string{"b", "a"},
		},
		"json rows": {
			input: `[{"z": 1, "y": 2}, {"z": 3, "y": 4}]`,
			shape: tabular.RowBased,
			names: []string{"z", "y"},
		},
		"json indexed": {
			input: `["a"]`,
			shape: tabular.IndexedShape,
		},
		"yaml columns": {
			input: "name:\n  - Alice\n  - Bob\nage:\n  - 30\n  - 25\n",
			shape: tabular.ColumnBased,
			names: []string{"name", "age"},
		},
		"yaml rows": {
			input: "- {city: Oslo, pop: 700000}\n- {city: Lima, pop: 10000000}\n",
			shape: tabular.RowBased,
			names: []string{"city", "pop"},
		},
		"toml columns": {
			input: "name = [\"Alice\", \"Bob\"]\nage = [30, 25]\n",
			shape: tabular.ColumnBased,
			names: []string{"age", "name"},
		},
		"toml array of tables": {
			input: "[[people]]\nname = \"Alice\"\nage = 30\n\n[[people]]\nname = \"Bob\"\nage = 25\n",
			shape: tabular.RowBased,
			names: []string{"age", "name"},
		},
		"invalid shape loads": {
			input: `[[1, 2], [3]]`,
			shape: tabular.Invalid,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, err := tabular.Load([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.shape, tabular.Classify(v))
			if tt.names == nil {
				return
			}
			tbl, err := tabular.Detect(v)
			require.NoError(t, err)
			switch got := tbl.(type) {
			case tabular.Columns:
				assert.Equal(t, tt.names, got.Names())
			case tabular.Rows:
				assert.Equal(t, tt.names, got[0].Keys())
			default:
				t.Fatalf("unexpected table %T", tbl)
			}
		})
	}
}

func TestLoadTypedCells(t *testing.T) {
	t.Parallel()
	v, err := tabular.Load([]byte(`[{"s": "x", "n": 2.5, "b": false, "z": null}]`))
	require.NoError(t, err)
	tbl, err := tabular.Detect(v)
	require.NoError(t, err)
	rows := tbl.(tabular.Rows)
	assert.Equal(t, []tabular.Cell{
		tabular.String("x"), tabular.Float(2.5), tabular.Bool(false), tabular.Null(),
	}, rows[0].Cells())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  error
	}{
		"empty":      {input: "", want: tabular.ErrArgument},
		"whitespace": {input: " \n\t", want: tabular.ErrArgument},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, err := tabular.Load([]byte(tt.input))
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, v)
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()
	v, err := tabular.Load([]byte("a: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON or YAML")
	assert.Nil(t, v)
}

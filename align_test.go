package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabular"
)

var stock = []any{
	map[string]any{"k": "a", "v": "100"},
	map[string]any{"k": "bbb", "v": "2"},
}

func TestRenderAligned(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		opts tabular.Options
		want string
	}{
		"column based": {
			in:   people,
			want: "Alice 25\nBob   30",
		},
		"left pads every cell": {
			in:   stock,
			want: "a   100\nbbb 2  ",
		},
		"right": {
			in:   stock,
			opts: tabular.Options{Alignment: tabular.AlignRight},
			want: "  a 100\nbbb   2",
		},
		"center": {
			in:   stock,
			opts: tabular.Options{Alignment: tabular.AlignCenter},
			want: " a  100\nbbb  2 ",
		},
		"first column left": {
			in:   stock,
			opts: tabular.Options{Alignment: tabular.AlignRight, LeftAlignFirstColumn: true},
			want: "a   100\nbbb   2",
		},
		"indexed is one column": {
			in:   []any{"a", "bbb", true},
			want: "a  \nbbb\n1  ",
		},
		"empty": {
			in:   []any{},
			want: "",
		},
		"display width": {
			in: tabular.Columns{
				{Name: "name", Cells: strs("日本", "abc")},
				{Name: "n", Cells: strs("1", "22")},
			},
			want: "日本 1 \nabc  22",
		},
		"char width": {
			in: tabular.Columns{
				{Name: "name", Cells: strs("日本", "abc")},
				{Name: "n", Cells: strs("1", "22")},
			},
			opts: tabular.Options{CharWidth: true},
			want: "日本  1 \nabc 22",
		},
		"coerced cells": {
			in: []any{
				map[string]any{"a": true, "b": nil},
				map[string]any{"a": false, "b": 1.5},
			},
			want: "1    \n  1.5",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabular.RenderAligned(tt.in, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderAlignedLoadedKeepsOrder(t *testing.T) {
	t.Parallel()
	v, err := tabular.Load([]byte(`{"name": ["Alice", "Bob"], "age": [25, 30]}`))
	require.NoError(t, err)
	got, err := tabular.RenderAligned(v, tabular.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Alice 25\nBob   30", got)
}

func TestRenderAlignedErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		opts tabular.Options
		want error
	}{
		"unequal lists":     {in: []any{[]any{"a", "b"}, []any{"c"}}, want: tabular.ErrStructure},
		"nested cell":       {in: []any{1, []any{2, 3}, 4}, want: tabular.ErrStructure},
		"invalid alignment": {in: stock, opts: tabular.Options{Alignment: tabular.Alignment(4)}, want: tabular.ErrArgument},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabular.RenderAligned(tt.in, tt.opts)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, got)
		})
	}
}

func TestRenderAlignedCSV(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		text string
		opts tabular.Options
		want string
	}{
		"label column": {
			text: "name,qty\napple,3\nkiwi,12",
			opts: tabular.Options{Alignment: tabular.AlignRight, LeftAlignFirstColumn: true},
			want: "name  qty\napple   3\nkiwi   12",
		},
		"ragged records": {
			text: "a,b,c\nd",
			want: "a b c\nd",
		},
		"quoted field": {
			text: "x,\"y, z\"\n1,2",
			want: "x y, z\n1 2   ",
		},
		"semicolons": {
			text: "a;bb\nccc;d",
			opts: tabular.Options{Delimiter: ';'},
			want: "a   bb\nccc d ",
		},
		"empty": {
			text: "",
			want: "",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabular.RenderAlignedCSV(tt.text, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderAlignedCSVInvalidOptions(t *testing.T) {
	t.Parallel()
	_, err := tabular.RenderAlignedCSV("a,b", tabular.Options{Quote: ','})
	require.ErrorIs(t, err, tabular.ErrArgument)
}

package cssorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithPrefix(t *testing.T) {
	tests := []struct {
		name        string
		prefix      string
		tokens      List
		excludeSelf bool
		want        List
	}{
		{
			name:   "empty prefix passes tokens through",
			prefix: "",
			tokens: List{"top", "left"},
			want:   List{"top", "left"},
		},
		{
			name:        "empty prefix ignores excludeSelf",
			prefix:      "",
			tokens:      List{"top"},
			excludeSelf: true,
			want:        List{"top"},
		},
		{
			name:   "self first",
			prefix: "margin",
			tokens: List{"top"},
			want:   List{"margin", "margin-top"},
		},
		{
			name:        "self excluded",
			prefix:      "margin",
			tokens:      List{"top"},
			excludeSelf: true,
			want:        List{"margin-top"},
		},
		{
			name:   "order preserved",
			prefix: "flex",
			tokens: List{"grow", "shrink", "basis"},
			want:   List{"flex", "flex-grow", "flex-shrink", "flex-basis"},
		},
		{
			name:   "duplicates kept",
			prefix: "a",
			tokens: List{"b", "b"},
			want:   List{"a", "a-b", "a-b"},
		},
		{
			name:   "no tokens",
			prefix: "cursor",
			tokens: nil,
			want:   List{"cursor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithPrefix(tt.prefix, tt.tokens, tt.excludeSelf)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestWithSuffix(t *testing.T) {
	tests := []struct {
		name        string
		tokens      List
		suffix      string
		excludeSelf bool
		want        List
	}{
		{
			name:   "empty suffix passes tokens through",
			tokens: List{"row", "column"},
			want:   List{"row", "column"},
		},
		{
			name:   "self still first",
			tokens: List{"row", "column"},
			suffix: "gap",
			want:   List{"gap", "row-gap", "column-gap"},
		},
		{
			name:        "self excluded",
			tokens:      List{"row"},
			suffix:      "gap",
			excludeSelf: true,
			want:        List{"row-gap"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithSuffix(tt.tokens, tt.suffix, tt.excludeSelf)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestWithPrefixDoesNotAliasInput(t *testing.T) {
	tokens := List{"a", "b"}
	got := WithPrefix("", tokens, false)
	got[0] = "changed"
	assert.Equal(t, List{"a", "b"}, tokens)
}

func TestOf(t *testing.T) {
	got := Of(
		Name("area"),
		Of(Name("row"), List{"row-start", "row-end"}),
		List{},
		Name("column"),
	)
	require.Equal(t, List{"area", "row", "row-start", "row-end", "column"}, got)

	// flattening a flat list is a no-op
	require.Equal(t, got, Of(got))
	require.Empty(t, Of())
}

func TestFlatMap(t *testing.T) {
	got := FlatMap(List{"border", "border-top"}, func(side string) List {
		return WithPrefix(side, List{"width"}, false)
	})
	require.Equal(t, List{"border", "border-width", "border-top", "border-top-width"}, got)
}

func TestFixedExpansions(t *testing.T) {
	tests := []struct {
		name string
		got  List
		want List
	}{
		{
			name: "sides",
			got:  Sides("padding", false),
			want: List{"padding", "padding-top", "padding-right", "padding-bottom", "padding-left"},
		},
		{
			name: "sides without prefix",
			got:  Sides("", false),
			want: List{"top", "right", "bottom", "left"},
		},
		{
			name: "start end",
			got:  StartEnd("row", false),
			want: List{"row", "row-start", "row-end"},
		},
		{
			name: "inline block",
			got:  InlineBlock("overflow", true),
			want: List{"overflow-inline", "overflow-block"},
		},
		{
			name: "inline block start end",
			got:  InlineBlockStartEnd("inset", true),
			want: List{"inset-inline-start", "inset-inline-end", "inset-block-start", "inset-block-end"},
		},
		{
			name: "inline block start end with self",
			got:  InlineBlockStartEnd("inset", false),
			want: List{"inset", "inset-inline-start", "inset-inline-end", "inset-block-start", "inset-block-end"},
		},
		{
			name: "inline block start end without prefix",
			got:  InlineBlockStartEnd("", false),
			want: List{"inline-start", "inline-end", "block-start", "block-end"},
		},
		{
			name: "positional",
			got:  Positional("margin"),
			want: List{
				"margin",
				"margin-inline-start", "margin-inline-end",
				"margin-block-start", "margin-block-end",
				"margin-top", "margin-right", "margin-bottom", "margin-left",
			},
		},
		{
			name: "min max",
			got:  MinMax("width", false),
			want: List{"width", "min-width", "max-width"},
		},
		{
			name: "place align justify",
			got:  PlaceAlignJustify("items", true),
			want: List{"place-items", "align-items", "justify-items"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

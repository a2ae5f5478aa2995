package cssorder

// List is an ordered, flat sequence of property names.
type List []string

// Part is anything that contributes names to a List: a single Name or a
// whole List. Nested lists are flattened by Of.
type Part interface {
	appendTo(dst List) List
}

// Name is a single property name.
type Name string

func (n Name) appendTo(dst List) List { return append(dst, string(n)) }

func (l List) appendTo(dst List) List { return append(dst, l...) }

// Of flattens parts into one List, keeping their order.
func Of(parts ...Part) List {
	out := make(List, 0, len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}
		out = p.appendTo(out)
	}
	return out
}

// FlatMap maps every entry of list to a List and concatenates the results.
func FlatMap(list List, fn func(string) List) List {
	out := make(List, 0, len(list))
	for _, v := range list {
		out = append(out, fn(v)...)
	}
	return out
}

// WithPrefix returns prefix-token for every token, preceded by the bare
// prefix unless excludeSelf is set. An empty prefix returns the tokens as-is.
func WithPrefix(prefix string, tokens List, excludeSelf bool) List {
	if prefix == "" {
		return Of(tokens)
	}

	out := make(List, 0, len(tokens)+1)
	if !excludeSelf {
		out = append(out, prefix)
	}
	for _, t := range tokens {
		out = append(out, prefix+"-"+t)
	}
	return out
}

// WithSuffix returns token-suffix for every token. The bare suffix, unless
// excluded, still comes first.
func WithSuffix(tokens List, suffix string, excludeSelf bool) List {
	if suffix == "" {
		return Of(tokens)
	}

	out := make(List, 0, len(tokens)+1)
	if !excludeSelf {
		out = append(out, suffix)
	}
	for _, t := range tokens {
		out = append(out, t+"-"+suffix)
	}
	return out
}

var (
	sideTokens      = List{"top", "right", "bottom", "left"}
	startEndTokens  = List{"start", "end"}
	axisTokens      = List{"inline", "block"}
	minMaxTokens    = List{"min", "max"}
	alignmentTokens = List{"place", "align", "justify"}
)

// Sides expands to *-top, *-right, *-bottom, *-left.
func Sides(prefix string, excludeSelf bool) List {
	return WithPrefix(prefix, sideTokens, excludeSelf)
}

// StartEnd expands to *-start, *-end.
func StartEnd(prefix string, excludeSelf bool) List {
	return WithPrefix(prefix, startEndTokens, excludeSelf)
}

// InlineBlock expands to *-inline, *-block.
func InlineBlock(prefix string, excludeSelf bool) List {
	return WithPrefix(prefix, axisTokens, excludeSelf)
}

// InlineBlockStartEnd expands to *-inline-start, *-inline-end,
// *-block-start, *-block-end.
func InlineBlockStartEnd(prefix string, excludeSelf bool) List {
	axes := FlatMap(InlineBlock("", false), func(axis string) List {
		return StartEnd(axis, true)
	})
	return WithPrefix(prefix, axes, excludeSelf)
}

// Positional returns the prefix itself followed by its logical and physical
// side longhands, e.g. margin, margin-inline-start, ..., margin-left.
func Positional(prefix string) List {
	return Of(
		Name(prefix),
		InlineBlockStartEnd(prefix, true),
		Sides(prefix, true),
	)
}

// MinMax expands to min-*, max-*.
func MinMax(suffix string, excludeSelf bool) List {
	return WithSuffix(minMaxTokens, suffix, excludeSelf)
}

// PlaceAlignJustify expands to place-*, align-*, justify-*.
func PlaceAlignJustify(suffix string, excludeSelf bool) List {
	return WithSuffix(alignmentTokens, suffix, excludeSelf)
}

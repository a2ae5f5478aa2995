package cssorder

// DefaultGroups returns the group definitions of the default table.
func DefaultGroups() []GroupDef {
	return []GroupDef{
		{Name: "css modules", Properties: List{"composes"}},

		{Name: "pseudo", Properties: List{"content"}},

		{Name: "appearance", Properties: List{
			"all",
			"appearance",
			"visibility",
			"content-visibility",
			"contain",
			"writing-mode",
			"color-scheme",
		}},

		{Name: "positioning", Properties: Of(
			Name("position"),
			Name("z-index"),
			Name("isolation"),
			logicalAxes("inset", false),
			Sides("", false),
		)},

		{Name: "container", Properties: Of(
			Name("display"),
			WithPrefix("flex", List{"flow", "direction", "wrap"}, true),
			WithPrefix("grid", Of(
				WithPrefix("template", List{"areas", "rows", "columns"}, false),
				WithPrefix("auto", List{"flow", "rows", "columns"}, true),
			), false),
		)},

		{Name: "placing", Properties: Of(
			PlaceAlignJustify("content", true),
			PlaceAlignJustify("items", true),
			WithSuffix(List{"row", "column"}, "gap", false),
		)},

		{Name: "items", Properties: Of(
			PlaceAlignJustify("self", true),
			Name("order"),
			WithPrefix("flex", List{"grow", "shrink", "basis"}, false),
			WithPrefix("grid", Of(
				Name("area"),
				StartEnd("row", false),
				StartEnd("column", false),
			), true),
		)},

		{Name: "box size", Properties: Of(
			Name("box-sizing"),
			Name("aspect-ratio"),
			MinMax("inline-size", false),
			MinMax("block-size", false),
			MinMax("width", false),
			MinMax("height", false),
		)},

		{Name: "box layout", Properties: Of(
			positionalAxes("margin"),
			positionalAxes("padding"),
		)},

		{Name: "border", Properties: Of(
			FlatMap(positionalAxes("border"), func(side string) List {
				return WithPrefix(side, List{"width", "style", "color"}, false)
			}),
			WithPrefix("border-image", List{"source", "width", "outset", "slice", "repeat"}, false),
			WithSuffix(WithPrefix("border", List{
				"start-start",
				"start-end",
				"end-end",
				"end-start",

				"top-left",
				"top-right",
				"bottom-right",
				"bottom-left",
			}, false), "radius", true),
			Name("border-collapse"),
		)},

		{Name: "overflow", Properties: WithPrefix("overflow", Of(
			Name("x"),
			Name("y"),
			InlineBlock("", false),
			Name("anchor"),
		), false)},

		{Name: "text", Properties: Of(
			WithPrefix("text", List{
				"align",
				"align-last",

				"transform",

				"shadow",

				"overflow",
				"indent",
				"rendering",

				"wrap",
				"wrap-mode",
				"wrap-style",
			}, true),

			Name("vertical-align"),

			Name("white-space"),
			Name("word-break"),

			Name("letter-spacing"),
			Name("word-spacing"),

			WithPrefix("text", Of(
				WithPrefix("decoration", List{"line", "style", "color", "thickness"}, false),

				Name("underline-offset"),
				Name("underline-position"),

				Name("decoration-skip-ink"),

				WithPrefix("emphasis", List{"style", "color", "position"}, false),

				Name("combine-upright"),
				Name("orientation"),
			), true),
		)},

		{Name: "font", Properties: Of(
			WithPrefix("font", List{
				"family",
				"size",
				"stretch",
				"style",
				"variant",
				"weight",
			}, false),
			Name("line-height"),
		)},

		{Name: "styling", Properties: Of(
			Name("color"),
			Name("caret-color"),

			WithPrefix("background", List{
				"color",
				"image",
				"position",
				"position-x",
				"position-y",
				"size",
				"repeat",
				"attachment",
				"blend-mode",
				"clip",
				"origin",
			}, false),

			Name("opacity"),

			Name("box-shadow"),

			WithPrefix("outline", List{"width", "style", "color", "offset"}, false),
		)},

		{Name: "filtering", Properties: List{"filter", "backdrop-filter", "mix-blend-mode"}},

		{Name: "masking", Properties: Of(
			Name("clip-path"),
			Name("clip-rule"),

			WithPrefix("mask", List{
				"image",
				"size",
				"position",
				"origin",
				"clip",
				"composite",
				"mode",
				"repeat",
			}, false),
		)},

		{Name: "object", Properties: List{"object-fit", "object-position"}},

		{Name: "transforms", Properties: Of(
			Name("transform"),

			Name("translate"),
			Name("rotate"),
			Name("scale"),
			Name("perspective"),
			Name("perspective-origin"),

			WithPrefix("transform", List{"origin", "box", "style"}, true),
		)},

		{Name: "transition", Properties: WithPrefix("transition", List{
			"property",
			"duration",
			"delay",
			"timing-function",
			"behavior",
		}, false)},

		{Name: "animation", Properties: WithPrefix("animation", List{
			"name",
			"duration",
			"delay",
			"timing-function",
			"iteration-count",
			"direction",
			"fill-mode",
			"play-state",
			"composition",
		}, false)},

		{Name: "scroll", Properties: Of(
			Name("scroll-behavior"),

			positionalAxes("scroll-margin"),
			positionalAxes("scroll-padding"),

			WithPrefix("scroll-snap", List{"align", "stop", "type"}, false),

			WithPrefix("scrollbar", List{"gutter", "color", "width"}, false),
		)},

		{Name: "cursor", Properties: List{"cursor"}},

		{Name: "util", Properties: List{"will-change", "resize"}},

		{Name: "interaction", Properties: List{"pointer-events", "touch-action", "user-select"}},
	}
}

// logicalAxes is InlineBlockStartEnd keeping the axis shorthands:
// *-inline, *-inline-start, *-inline-end, *-block, *-block-start, *-block-end.
func logicalAxes(prefix string, excludeSelf bool) List {
	axes := FlatMap(InlineBlock("", false), func(axis string) List {
		return StartEnd(axis, false)
	})
	return WithPrefix(prefix, axes, excludeSelf)
}

// positionalAxes is Positional with the axis shorthands kept, so
// margin-inline sorts next to margin-inline-start.
func positionalAxes(prefix string) List {
	return Of(
		Name(prefix),
		logicalAxes(prefix, true),
		Sides(prefix, true),
	)
}

// DefaultTable returns the default group table.
func DefaultTable() *Table {
	t, err := BuildTable(DefaultGroups()...)
	if err != nil {
		// the default groups are static and unique
		panic(err)
	}
	return t
}

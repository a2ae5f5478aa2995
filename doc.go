// Package cssorder generates stylelint-order configuration for stylesheets.
//
// It defines the order of content inside a rule (order/order) and a grouping
// and ordering of CSS properties inside a declaration block
// (order/properties-order).
//
// # Expansion
//
// Property lists are built from short naming patterns:
//
//	cssorder.Positional("margin")
//	// margin, margin-inline-start, margin-inline-end,
//	// margin-block-start, margin-block-end,
//	// margin-top, margin-right, margin-bottom, margin-left
//
//	cssorder.WithPrefix("flex", cssorder.List{"grow", "shrink", "basis"}, false)
//	// flex, flex-grow, flex-shrink, flex-basis
//
// # Generation
//
// Build and write the configuration:
//
//	cfg := cssorder.DefaultConfig()
//	err := cssorder.Write(os.Stdout, cfg, cssorder.FormatJSON)
//
// # CLI Tool
//
// Install with:
//
//	go install github.com/yacobolo/cssorder/cmd/cssorder@latest
package cssorder

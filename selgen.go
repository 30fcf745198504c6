// Package selgen builds CSS selectors from fluent Go code or declarative
// YAML recipes and generates type-safe selector constants.
//
// # Building selectors
//
// Chain selector parts in canonical order (element, id, class, attribute,
// pseudo-class, pseudo-element). The builder enforces the order and rejects
// repeated singleton parts; the first violation sticks and surfaces at
// Build time:
//
//	sel, err := selgen.Element("table").ID("data").Class("striped").Build()
//	// "table#data.striped"
//
//	dashboard := selgen.Combine(selgen.Element("div").ID("main"), "+", selgen.Element("table").ID("data"))
//	// dashboard.String() == "div#main + table#data"
//
// # Generation
//
// Generate Go constants from selector recipe files:
//
//	config := selgen.Config{
//		SourceDir:   "selectors",
//		OutputDir:   "internal/sel",
//		PackageName: "sel",
//		Includes:    []string{"**/*.yaml"},
//	}
//	result, err := selgen.Generate(config)
//
// # Vetting
//
// Vet recipe files without writing anything:
//
//	result, err := selgen.Vet(config)
//
// # CLI Tool
//
// selgen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/selgen/cmd/selgen@latest
package selgen

// Public API:
// - Element/ID/Class/Attr/PseudoClass/PseudoElement(v string) *Builder
// - Combine(left *Builder, combinator string, right *Builder) *Builder
// - Generate(config Config) (*GenerateResult, error)
// - Vet(config Config) (*VetResult, error)
// - DetermineOutputFormat(requested string, quiet bool) OutputFormat
// - WriteOutput(w io.Writer, result *VetResult, format OutputFormat, config Config)

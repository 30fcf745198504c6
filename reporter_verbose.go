package selgen

import (
	"fmt"
	"io"
)

// VerboseReporter prints detailed vet statistics and warnings
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed vet statistics
func (r *VerboseReporter) PrintStatistics(result VetResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Selector Vet Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Recipe Files Scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Recipes Checked:      %d\n", result.RecipesChecked)
	fmt.Fprintf(r.w, "Selectors Built:      %d\n", result.SelectorsBuilt)
	fmt.Fprintf(r.w, "Errors:               %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Warnings:             %d\n", result.WarningCount)
	if result.TruncatedCount > 0 {
		fmt.Fprintf(r.w, "Issues Truncated:     %d\n", result.TruncatedCount)
	}
}

// PrintSelectors lists every selector that vetting managed to build
func (r *VerboseReporter) PrintSelectors(result VetResult) {
	if len(result.Selectors) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Built Selectors", r.useColors))
	fmt.Fprintln(r.w, "-----------------")

	for _, sel := range result.Selectors {
		fmt.Fprintf(r.w, "%s: %q\n", sel.Name, sel.Selector)
	}
}

// PrintWarnings shows loader and generator warnings
func (r *VerboseReporter) PrintWarnings(result VetResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

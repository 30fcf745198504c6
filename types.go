package selgen

// Config holds recipe discovery and reporting configuration. Generate and
// Vet share it: both walk the same recipe files, and Generate runs the same
// validation before writing anything.
type Config struct {
	SourceDir   string   // root directory for recipe globs, e.g. "selectors"
	Includes    []string // glob patterns relative to SourceDir, e.g. ["**/*.yaml"]
	OutputDir   string   // destination directory for selectors.gen.go
	PackageName string   // package name in the generated file
	Verbose     bool     // enable progress logging

	// Vet output configuration, golangci-lint style
	Strict           bool // any issue fails, not just errors
	MaxIssues        int  // 0 = unlimited
	MaxSameIssues    int  // 0 = unlimited, deduplicates repeated messages
	PrintIssuedLines bool // show recipe source lines under issues
	PrintLinterName  bool // show the (selvet) suffix on issues
	UseColors        bool // force color output (default: auto-detect)
}

// SelectorConstant is a successfully validated recipe, ready for emission.
type SelectorConstant struct {
	Name       string // recipe name as written, e.g. "main-table"
	GoName     string // exported constant name, e.g. "MainTable"
	Selector   string // built selector text
	SourceFile string // recipe file it came from
}

// VetResult contains recipe validation findings.
type VetResult struct {
	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // issues removed by MaxIssues / MaxSameIssues

	RecipesChecked int
	SelectorsBuilt int
	FilesScanned   int

	// Selectors lists the recipes that validated cleanly, in recipe order.
	Selectors []SelectorConstant

	// Warnings are file-level problems (unreadable or undecodable files),
	// as opposed to positioned recipe issues.
	Warnings []string
}

// GenerateResult contains generation stats. Vet always carries the
// validation findings, whether or not the output file was written.
type GenerateResult struct {
	Vet              *VetResult
	ConstantsWritten int
	OutputFile       string
}

// OutputFormat represents the vet output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics only (weekly reports)
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics (interactive development)
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

package selgen

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Reporter handles formatting and outputting vet results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config Config) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	// Sort issues by file, then line, then column
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	file := GetRelativePath(issue.Pos.Filename)
	location := fmt.Sprintf("%s:%d:%d:", file, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(severityStyle(issue.Severity), location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	// Print recipe lines with caret indicator
	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// severityStyle picks the location color for an issue.
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case SeverityError:
		return StyleRed
	case SeverityWarning:
		return StyleYellow
	default:
		return StyleCyan
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the recipe line are mirrored so the caret stays aligned.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	// Extract the prefix up to the column (0-based index = column - 1)
	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	prefix := sourceLine[:prefixLen]

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result VetResult) {
	totalIssues := len(result.Issues)
	truncated := result.TruncatedCount
	errors := result.ErrorCount
	warnings := result.WarningCount

	fmt.Fprintln(r.w, "")

	// Show severity breakdown if we have both types
	if errors > 0 && warnings > 0 {
		if truncated > 0 {
			fmt.Fprintf(r.w, "%s (%s, %s; %s truncated):\n",
				pluralizeCount(totalIssues, "issue", "issues"),
				pluralizeCount(errors, "error", "errors"),
				pluralizeCount(warnings, "warning", "warnings"),
				pluralizeCount(truncated, "issue", "issues"))
		} else {
			fmt.Fprintf(r.w, "%s (%s, %s):\n",
				pluralizeCount(totalIssues, "issue", "issues"),
				pluralizeCount(errors, "error", "errors"),
				pluralizeCount(warnings, "warning", "warnings"))
		}
	} else {
		// Only one type of issue or none
		if truncated > 0 {
			fmt.Fprintf(r.w, "%s (%s truncated):\n",
				pluralizeCount(totalIssues, "issue", "issues"),
				pluralizeCount(truncated, "issue", "issues"))
		} else {
			fmt.Fprintf(r.w, "%s:\n", pluralizeCount(totalIssues, "issue", "issues"))
		}
	}

	// Group by linter
	linterCounts := make(map[string]int)
	for _, issue := range result.Issues {
		linterCounts[issue.FromLinter]++
	}

	for linter, count := range linterCounts {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, count)
	}

	if totalIssues > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

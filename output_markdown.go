package selgen

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the vet result as a shareable Markdown report
func WriteMarkdown(w io.Writer, result *VetResult) error {
	var sb strings.Builder

	sb.WriteString("# Selector Vet Report\n\n")

	sb.WriteString("## Executive Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| **Status** | %s |\n", statusBadge(result)))
	sb.WriteString(fmt.Sprintf("| **Total Issues** | %d (%d errors, %d warnings) |\n",
		len(result.Issues), result.ErrorCount, result.WarningCount))
	sb.WriteString(fmt.Sprintf("| **Recipe Files** | %d |\n", result.FilesScanned))
	sb.WriteString(fmt.Sprintf("| **Recipes Checked** | %d |\n", result.RecipesChecked))
	sb.WriteString(fmt.Sprintf("| **Selectors Built** | %d / %d |\n",
		result.SelectorsBuilt, result.RecipesChecked))
	sb.WriteString("\n")

	errorIssues := filterBySeverity(result.Issues, SeverityError)
	if len(errorIssues) > 0 {
		sb.WriteString("## ❌ Errors\n\n")
		writeIssueTable(&sb, errorIssues)
	}

	warningIssues := filterBySeverity(result.Issues, SeverityWarning)
	if len(warningIssues) > 0 {
		sb.WriteString("## ⚠️ Warnings\n\n")
		writeIssueTable(&sb, warningIssues)
	}

	if len(result.Selectors) > 0 {
		sb.WriteString("## 📋 Built Selectors\n\n")
		sb.WriteString("| Recipe | Selector |\n")
		sb.WriteString("|--------|----------|\n")
		for _, sel := range result.Selectors {
			sb.WriteString(fmt.Sprintf("| `%s` | `%s` |\n",
				escapeMarkdownPipes(sel.Name), escapeMarkdownPipes(sel.Selector)))
		}
		sb.WriteString("\n")
	}

	if result.TruncatedCount > 0 {
		sb.WriteString(fmt.Sprintf("_%d issues truncated._\n\n", result.TruncatedCount))
	}

	sb.WriteString("---\n\n")
	sb.WriteString("*Generated by selgen vet v1.0*\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// statusBadge summarizes the vet outcome for the report header
func statusBadge(result *VetResult) string {
	switch {
	case result.ErrorCount > 0:
		return "🔴 Needs Attention"
	case result.WarningCount > 0:
		return "🟡 Almost Clean"
	default:
		return "🟢 Clean"
	}
}

func writeIssueTable(sb *strings.Builder, issues []Issue) {
	sb.WriteString("| Location | Message |\n")
	sb.WriteString("|----------|---------|\n")
	for _, issue := range issues {
		location := fmt.Sprintf("%s:%d:%d", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
		sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", location, escapeMarkdownPipes(issue.Text)))
	}
	sb.WriteString("\n")
}

func filterBySeverity(issues []Issue, severity string) []Issue {
	var filtered []Issue
	for _, issue := range issues {
		if issue.Severity == severity {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// escapeMarkdownPipes escapes pipe characters so table cells stay intact
func escapeMarkdownPipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

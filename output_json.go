package selgen

import (
	"io"
	"time"

	"github.com/yacobolo/selgen/codec"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Summary   JSONSummary       `json:"summary"`
	Stats     JSONStats         `json:"stats"`
	Issues    []JSONIssue       `json:"issues"`
	Selectors map[string]string `json:"selectors"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains recipe and selector statistics
type JSONStats struct {
	RecipesChecked  int `json:"recipes_checked"`
	SelectorsBuilt  int `json:"selectors_built"`
	TruncatedIssues int `json:"truncated_issues"`
}

// JSONIssue represents a single vet issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional recipe line
}

// WriteJSON writes the vet result as JSON
func WriteJSON(w io.Writer, result *VetResult) error {
	text, err := codec.ToJSONIndent(buildJSONOutput(result), "", "  ")
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text+"\n")
	return err
}

// buildJSONOutput converts VetResult to JSONOutput
func buildJSONOutput(result *VetResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	selectors := make(map[string]string, len(result.Selectors))
	for _, sel := range result.Selectors {
		selectors[sel.Name] = sel.Selector
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			RecipesChecked:  result.RecipesChecked,
			SelectorsBuilt:  result.SelectorsBuilt,
			TruncatedIssues: result.TruncatedCount,
		},
		Issues:    jsonIssues,
		Selectors: selectors,
	}
}

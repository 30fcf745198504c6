package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/selgen"
)

var vetCmd = &cobra.Command{
	Use:   "vet",
	Short: "Vet selector recipe files",
	Long: `Check recipe files against the selector part order and uniqueness rules.
Reports issues in golangci-lint style without writing any files.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runVet()
	},
}

func init() {
	f := vetCmd.Flags()
	f.String("source", "selectors", "Source recipe directory")
	f.StringSlice("include", nil, "Glob patterns for recipe files to include")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show recipe lines with issues")
	f.Bool("print-linter-name", true, "Show (selvet) suffix on issues")
}

func runVet() error {
	config := buildConfig()

	result, err := selgen.Vet(config)
	if err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "vet.output-format", "")
	format := selgen.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		selgen.WriteOutput(os.Stdout, result, format, config)
	}

	// Exit code logic - "Soft Gate" approach
	strict := getBoolWithFallback("strict", "vet.strict", false)
	if strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
	} else if result.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/selgen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate Go selector constants from recipe files",
	Long: `Vet selector recipes and generate type-safe Go constants.
Each recipe becomes exactly one Go constant; nothing is written
when the recipes fail vetting.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("source", "selectors", "Source recipe directory")
	f.String("output-dir", "internal/sel", "Output directory for the generated file")
	f.StringSlice("include", nil, "Glob patterns for recipe files to include")
	f.Bool("vet", true, "Print vet issues found during generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildConfig()
	quiet := getBoolWithFallback("quiet", "quiet", false)
	showVet, _ := cmd.Flags().GetBool("vet")

	result, err := selgen.Generate(config)
	if err != nil {
		if errors.Is(err, selgen.ErrRecipesInvalid) {
			// Report what vet found, then fail
			if !quiet && showVet {
				format := selgen.DetermineOutputFormat(
					getStringWithFallback("output-format", "vet.output-format", ""), quiet)
				selgen.WriteOutput(os.Stdout, result.Vet, format, config)
			}
			os.Exit(1)
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	if !quiet {
		fmt.Printf("Generated %s\n", result.OutputFile)
		fmt.Printf("  Recipe files scanned: %d\n", result.Vet.FilesScanned)
		fmt.Printf("  Constants written: %d\n", result.ConstantsWritten)

		for _, w := range result.Vet.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}

		// Warning-severity issues do not block generation but are worth seeing
		if showVet && len(result.Vet.Issues) > 0 {
			selgen.WriteOutput(os.Stdout, result.Vet, selgen.OutputIssues, config)
		}
	}

	return nil
}

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "selgen",
	Short: "CSS selector constant generator and recipe vet tool",
	Long: `Type-safe CSS selector constants from YAML recipes.
Each recipe is replayed through an order-checked selector builder
and becomes exactly one Go constant.`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(generateCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().String("package", "sel", "Go package name")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".selgen.yaml", "Config file path")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(vetCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .selgen.yaml config file",
	Long:  `Create a .selgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".selgen.yaml"); err == nil && !force {
			return fmt.Errorf(".selgen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".selgen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .selgen.yaml")
		return nil
	},
}

const defaultConfig = `# selgen configuration
# Docs: https://github.com/yacobolo/selgen

# Shared settings
package: sel
verbose: false

# Generation settings
generate:
  source: selectors
  output-dir: internal/sel
  include:
    - "**/*.yaml"
    - "**/*.yml"

# Vet settings
vet:
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

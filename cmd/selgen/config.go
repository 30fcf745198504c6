package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/selgen"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".selgen.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (SELGEN_* prefix)
	if err := k.Load(env.Provider("SELGEN_", ".", func(s string) string {
		// SELGEN_GENERATE_SOURCE -> generate.source
		// SELGEN_VET_STRICT -> vet.strict
		// SELGEN_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SELGEN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig() selgen.Config {
	config := selgen.Config{
		SourceDir:        getStringWithFallback("source", "generate.source", "selectors"),
		OutputDir:        getStringWithFallback("output-dir", "generate.output-dir", "internal/sel"),
		PackageName:      getStringWithFallback("package", "package", "sel"),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
		Strict:           getBoolWithFallback("strict", "vet.strict", false),
		MaxIssues:        getIntWithFallback("max-issues", "vet.max-issues", 0),
		MaxSameIssues:    getIntWithFallback("max-same-issues", "vet.max-same-issues", 0),
		PrintIssuedLines: getBoolWithFallback("print-lines", "vet.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "vet.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("generate.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = []string{
			"**/*.yaml",
			"**/*.yml",
		}
	}

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

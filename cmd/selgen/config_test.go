package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".selgen.yaml")
	configContent := `
package: custom-pkg
verbose: true

generate:
  source: custom/recipes
  output-dir: custom/output

vet:
  strict: true
  max-issues: 25
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "custom-pkg", k.String("package"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "custom/recipes", k.String("generate.source"))
	assert.Equal(t, "custom/output", k.String("generate.output-dir"))
	assert.True(t, k.Bool("vet.strict"))
	assert.Equal(t, 25, k.Int("vet.max-issues"))
	assert.False(t, k.Bool("vet.print-lines"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.selgen.yaml"))

	// buildConfig should return defaults
	config := buildConfig()
	assert.Equal(t, "selectors", config.SourceDir)
	assert.Equal(t, "internal/sel", config.OutputDir)
	assert.Equal(t, "sel", config.PackageName)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".selgen.yaml")
	configContent := `
generate:
  source: from-file
vet:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("SELGEN_GENERATE_SOURCE", "from-env")
	t.Setenv("SELGEN_VET_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("generate.source"))
	assert.True(t, k.Bool("vet.strict"))
}

func TestBuildConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildConfig()
	assert.Equal(t, "selectors", config.SourceDir)
	assert.Equal(t, "internal/sel", config.OutputDir)
	assert.Equal(t, "sel", config.PackageName)
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.MaxIssues)
	assert.Equal(t, 0, config.MaxSameIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.Equal(t, []string{
		"**/*.yaml",
		"**/*.yml",
	}, config.Includes)
}

func TestBuildConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".selgen.yaml")
	configContent := `
package: mypkg
generate:
  source: recipes
  output-dir: gen/out
  include:
    - "nav/**/*.yaml"
vet:
  strict: true
  max-same-issues: 3
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildConfig()
	assert.Equal(t, "recipes", config.SourceDir)
	assert.Equal(t, "gen/out", config.OutputDir)
	assert.Equal(t, "mypkg", config.PackageName)
	assert.True(t, config.Strict)
	assert.Equal(t, 3, config.MaxSameIssues)
	assert.False(t, config.PrintIssuedLines)
	assert.Equal(t, []string{"nav/**/*.yaml"}, config.Includes)
}

func TestBuildCommand_NoParts(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"build"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no selector parts")
}

func TestBuildCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"build", "--element", "table", "--id", "data", "--class", "striped"})
	require.NoError(t, cmd.Execute())
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Verify file was created
	data, err := os.ReadFile(".selgen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "package: sel")
	assert.Contains(t, string(data), "generate:")
	assert.Contains(t, string(data), "vet:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".selgen.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".selgen.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".selgen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "package: sel")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}

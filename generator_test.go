package selgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	writeRecipeFile(t, tmpDir, "app.yaml", `selectors:
  - name: main-table
    parts:
      - element: table
      - id: data
      - class: striped
  - name: hover-link
    parts:
      - element: a
      - pseudo-class: hover
  - name: dashboard
    combine:
      left: main-table
      combinator: "+"
      right: hover-link
`)

	config := Config{
		SourceDir:   tmpDir,
		OutputDir:   tmpDir,
		PackageName: "sel",
		Includes:    []string{"*.yaml"},
	}

	result, err := Generate(config)
	require.NoError(t, err)
	assert.Equal(t, 3, result.ConstantsWritten)
	assert.Equal(t, 1, result.Vet.FilesScanned)
	assert.Empty(t, result.Vet.Issues)

	outputFile := filepath.Join(tmpDir, GeneratedFileName)
	assert.Equal(t, outputFile, result.OutputFile)

	output, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	outputStr := string(output)
	assert.Contains(t, outputStr, "// Code generated by selgen. DO NOT EDIT.")
	assert.Contains(t, outputStr, "package sel")
	assert.Contains(t, outputStr, `MainTable = "table#data.striped"`)
	assert.Contains(t, outputStr, `HoverLink = "a:hover"`)
	assert.Contains(t, outputStr, `Dashboard = "table#data.striped + a:hover"`)
	assert.Contains(t, outputStr, `// MainTable matches "table#data.striped".`)
	assert.Contains(t, outputStr, "var AllSelectors = map[string]string{")
	assert.Contains(t, outputStr, `"main-table":`)
	assert.Contains(t, outputStr, `"dashboard":`)
}

func TestGenerateAbortsOnErrors(t *testing.T) {
	tmpDir := t.TempDir()
	writeRecipeFile(t, tmpDir, "broken.yaml", `selectors:
  - name: backwards
    parts:
      - id: main
      - element: div
`)

	config := Config{
		SourceDir:   tmpDir,
		OutputDir:   tmpDir,
		PackageName: "sel",
		Includes:    []string{"*.yaml"},
	}

	result, err := Generate(config)
	require.ErrorIs(t, err, ErrRecipesInvalid)

	// issues still travel with the result so callers can report them
	require.NotNil(t, result)
	require.NotNil(t, result.Vet)
	assert.Equal(t, 1, result.Vet.ErrorCount)

	_, statErr := os.Stat(filepath.Join(tmpDir, GeneratedFileName))
	assert.True(t, os.IsNotExist(statErr), "nothing should be written on errors")
}

func TestGenerateCreatesOutputDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeRecipeFile(t, tmpDir, "nav.yaml", `selectors:
  - name: nav
    parts:
      - element: nav
`)

	outDir := filepath.Join(tmpDir, "internal", "sel")
	config := Config{
		SourceDir:   tmpDir,
		OutputDir:   outDir,
		PackageName: "sel",
		Includes:    []string{"*.yaml"},
	}

	result, err := Generate(config)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, GeneratedFileName), result.OutputFile)

	_, err = os.Stat(result.OutputFile)
	require.NoError(t, err)
}

func TestGenerateRenamesCollidingGoNames(t *testing.T) {
	tmpDir := t.TempDir()
	writeRecipeFile(t, tmpDir, "names.yaml", `selectors:
  - name: main-table
    parts:
      - element: table
  - name: main_table
    parts:
      - element: div
`)

	config := Config{
		SourceDir:   tmpDir,
		OutputDir:   tmpDir,
		PackageName: "sel",
		Includes:    []string{"*.yaml"},
	}

	result, err := Generate(config)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ConstantsWritten)

	output, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(output), `MainTable = "table"`)
	assert.Contains(t, string(output), `MainTable2 = "div"`)

	require.NotEmpty(t, result.Vet.Warnings)
	assert.Contains(t, result.Vet.Warnings[0], "renamed to MainTable2")
}

func TestGenerateNoRecipes(t *testing.T) {
	tmpDir := t.TempDir()

	config := Config{
		SourceDir:   tmpDir,
		OutputDir:   tmpDir,
		PackageName: "sel",
		Includes:    []string{"*.yaml"},
	}

	result, err := Generate(config)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ConstantsWritten)

	output, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(output), "package sel")
	assert.Contains(t, string(output), "AllSelectors")
}

func TestAssignGoNames(t *testing.T) {
	selectors := []SelectorConstant{
		{Name: "main-table"},
		{Name: "main_table"},
		{Name: "sidebar"},
	}

	warnings := assignGoNames(selectors)

	assert.Equal(t, "MainTable", selectors[0].GoName)
	assert.Equal(t, "MainTable2", selectors[1].GoName)
	assert.Equal(t, "Sidebar", selectors[2].GoName)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "renamed to MainTable2")
}

func TestToGoName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"nav", "Nav"},
		{"main-table", "MainTable"},
		{"hover_link", "HoverLink"},
		{"data-table--active", "DataTableActive"},
		{"menu-item-2", "MenuItem2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toGoName(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

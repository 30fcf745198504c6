package selgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecipes(t *testing.T) {
	doc := `selectors:
  - name: first
    parts:
      - element: div
      - id: main
  - name: second
    combine:
      left: first
      combinator: ">"
      right: first
`
	recipes, err := ParseRecipes([]byte(doc), "nav.yaml")
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	first := recipes[0]
	assert.Equal(t, "first", first.Name)
	assert.Equal(t, "nav.yaml", first.SourceFile)
	assert.Nil(t, first.Combine)
	require.Len(t, first.Parts, 2)

	assert.Equal(t, "element", first.Parts[0].Kind)
	assert.Equal(t, "div", first.Parts[0].Value)
	assert.Equal(t, "id", first.Parts[1].Kind)
	assert.Equal(t, "main", first.Parts[1].Value)

	second := recipes[1]
	assert.Equal(t, "second", second.Name)
	assert.Empty(t, second.Parts)
	require.NotNil(t, second.Combine)
	assert.Equal(t, "first", second.Combine.Left)
	assert.Equal(t, ">", second.Combine.Combinator)
	assert.Equal(t, "first", second.Combine.Right)
}

func TestParseRecipesCapturesPositions(t *testing.T) {
	doc := `selectors:
  - name: first
    parts:
      - element: div
      - id: main
`
	recipes, err := ParseRecipes([]byte(doc), "nav.yaml")
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	rec := recipes[0]
	assert.Equal(t, 2, rec.Line)
	assert.Equal(t, 5, rec.Column)

	require.Len(t, rec.Parts, 2)
	assert.Equal(t, 4, rec.Parts[0].Line)
	assert.Equal(t, 9, rec.Parts[0].Column)
	assert.Equal(t, 5, rec.Parts[1].Line)
	assert.Equal(t, 9, rec.Parts[1].Column)
}

func TestParseRecipesRejectsMalformedPart(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "part with two keys",
			doc: `selectors:
  - name: broken
    parts:
      - element: div
        id: main
`,
		},
		{
			name: "part is a bare scalar",
			doc: `selectors:
  - name: broken
    parts:
      - element
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecipes([]byte(tt.doc), "broken.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), `single "kind: value" mapping`)
		})
	}
}

func TestParseRecipesInvalidYAML(t *testing.T) {
	_, err := ParseRecipes([]byte("selectors: ["), "broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode recipes")
}

func TestLoadRecipeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buttons.yaml")
	doc := `selectors:
  - name: primary-button
    parts:
      - element: button
      - class: primary
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	recipes, err := LoadRecipeFile(path)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "primary-button", recipes[0].Name)
	assert.Equal(t, path, recipes[0].SourceFile)
}

func TestLoadRecipeFileMissing(t *testing.T) {
	_, err := LoadRecipeFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read recipe file")
}

func TestLoadRecipeFilesCollectsWarnings(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`selectors:
  - name: ok
    parts:
      - element: div
`), 0644))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("selectors: ["), 0644))

	set, warnings := loadRecipeFiles([]string{good, bad, filepath.Join(dir, "gone.yaml")}, Config{})
	require.Len(t, set.recipes, 1)
	assert.Equal(t, "ok", set.recipes[0].Name)

	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "Failed to parse")
	assert.Contains(t, warnings[1], "Failed to read")
}

func TestRecipeSetSourceLine(t *testing.T) {
	set := &recipeSet{lines: map[string][]string{
		"a.yaml": {"selectors:", "  - name: x"},
	}}

	assert.Equal(t, "selectors:", set.sourceLine("a.yaml", 1))
	assert.Equal(t, "  - name: x", set.sourceLine("a.yaml", 2))
	assert.Empty(t, set.sourceLine("a.yaml", 3))
	assert.Empty(t, set.sourceLine("a.yaml", 0))
	assert.Empty(t, set.sourceLine("missing.yaml", 1))
}

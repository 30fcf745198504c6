package selgen

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Part is one selector fragment in a recipe, in author order. Line and
// Column point at the kind key in the recipe file, 1-based, so violations
// can be reported at the exact part that caused them.
type Part struct {
	Kind   string
	Value  string
	Line   int
	Column int
}

// UnmarshalYAML decodes a part from its single-key mapping form
// ("element: div") and captures the key's position.
func (p *Part) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: selector part must be a single \"kind: value\" mapping", node.Line)
	}
	key, value := node.Content[0], node.Content[1]
	p.Kind = key.Value
	p.Value = value.Value
	p.Line = key.Line
	p.Column = key.Column
	return nil
}

// CombineSpec joins two other recipes, referenced by name, with a
// combinator. The combinator text is not interpreted.
type CombineSpec struct {
	Left       string `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      string `yaml:"right"`
}

// Recipe declares one named selector: either an ordered list of parts, or a
// combination of two other recipes. Exactly one of Parts and Combine must be
// set; vet flags recipes that have both or neither.
type Recipe struct {
	Name    string       `yaml:"name"`
	Parts   []Part       `yaml:"parts"`
	Combine *CombineSpec `yaml:"combine"`

	Line       int    `yaml:"-"`
	Column     int    `yaml:"-"`
	SourceFile string `yaml:"-"`
}

// UnmarshalYAML decodes a recipe and captures its position in the file.
func (r *Recipe) UnmarshalYAML(node *yaml.Node) error {
	type plain Recipe
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = Recipe(p)
	r.Line = node.Line
	r.Column = node.Column
	return nil
}

// recipeFile is the top-level document shape of a recipe file.
type recipeFile struct {
	Selectors []Recipe `yaml:"selectors"`
}

// ParseRecipes decodes recipe YAML and stamps each recipe with the file it
// came from.
func ParseRecipes(content []byte, filename string) ([]Recipe, error) {
	var doc recipeFile
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	for i := range doc.Selectors {
		doc.Selectors[i].SourceFile = filename
	}
	return doc.Selectors, nil
}

// LoadRecipeFile reads and decodes a single recipe file.
func LoadRecipeFile(path string) ([]Recipe, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe file: %w", err)
	}
	return ParseRecipes(content, path)
}

// recipeSet is everything validation needs from disk: the recipes plus the
// raw lines of each file for issue source display.
type recipeSet struct {
	recipes []Recipe
	lines   map[string][]string
}

// sourceLine returns the 1-based line of a file, or "" when out of range.
func (s *recipeSet) sourceLine(file string, line int) string {
	lines := s.lines[file]
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// loadRecipeFiles loads every discovered recipe file. Files that cannot be
// read or decoded become warnings; the rest of the set still loads.
func loadRecipeFiles(paths []string, config Config) (*recipeSet, []string) {
	set := &recipeSet{lines: make(map[string][]string)}
	var warnings []string

	for _, path := range paths {
		if config.Verbose {
			fmt.Printf("Loading %s\n", path)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to read %s: %v", path, err))
			continue
		}

		recipes, err := ParseRecipes(content, path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to parse %s: %v", path, err))
			continue
		}

		set.recipes = append(set.recipes, recipes...)
		set.lines[path] = strings.Split(string(content), "\n")
	}

	return set, warnings
}

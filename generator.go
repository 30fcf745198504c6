package selgen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// GeneratedFileName is the single file Generate writes into the output
// directory.
const GeneratedFileName = "selectors.gen.go"

// Generate is the main entry point: vet the recipes, then emit the Go
// constants file. When vetting finds error-severity issues nothing is
// written and ErrRecipesInvalid is returned alongside the result so
// callers can still report the issues.
func Generate(config Config) (*GenerateResult, error) {
	vet, err := Vet(config)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{Vet: vet}
	if vet.ErrorCount > 0 {
		return result, ErrRecipesInvalid
	}

	// Assign Go constant names, renaming on collision
	vet.Warnings = append(vet.Warnings, assignGoNames(vet.Selectors)...)

	outputFile := filepath.Join(config.OutputDir, GeneratedFileName)
	if err := writeGoFile(outputFile, vet.Selectors, config); err != nil {
		return nil, fmt.Errorf("write %s: %w", outputFile, err)
	}
	result.OutputFile = outputFile
	result.ConstantsWritten = len(vet.Selectors)

	if config.Verbose {
		fmt.Printf("Wrote %d selector constants to %s\n",
			result.ConstantsWritten, outputFile)
	}

	return result, nil
}

// assignGoNames derives a constant name for every selector and resolves
// collisions by adding numeric suffixes. Returns one warning per renamed
// selector.
func assignGoNames(selectors []SelectorConstant) []string {
	for i := range selectors {
		selectors[i].GoName = toGoName(selectors[i].Name)
	}

	goNameMap := make(map[string][]int)
	for i := range selectors {
		goNameMap[selectors[i].GoName] = append(goNameMap[selectors[i].GoName], i)
	}

	var warnings []string
	for goName, indexes := range goNameMap {
		if len(indexes) < 2 {
			continue
		}
		// First one keeps the original name
		for n, i := range indexes[1:] {
			selectors[i].GoName = fmt.Sprintf("%s%d", goName, n+2)
			warnings = append(warnings, fmt.Sprintf(
				"Selectors '%s' and '%s' both map to Go name %s - renamed to %s",
				selectors[indexes[0]].Name, selectors[i].Name, goName, selectors[i].GoName,
			))
		}
	}

	return warnings
}

// writeGoFile renders the constants file, gofmt-formats it and writes it
// to path, creating the output directory if needed.
func writeGoFile(path string, selectors []SelectorConstant, config Config) error {
	byGoName := make([]SelectorConstant, len(selectors))
	copy(byGoName, selectors)
	sort.Slice(byGoName, func(i, j int) bool { return byGoName[i].GoName < byGoName[j].GoName })

	var buf bytes.Buffer
	buf.WriteString("// Code generated by selgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", config.PackageName)

	if len(byGoName) > 0 {
		buf.WriteString("// CSS selectors built from recipe files.\n")
		buf.WriteString("const (\n")
		for _, s := range byGoName {
			fmt.Fprintf(&buf, "\t// %s matches %s.\n", s.GoName, strconv.Quote(s.Selector))
			fmt.Fprintf(&buf, "\t%s = %s\n", s.GoName, strconv.Quote(s.Selector))
		}
		buf.WriteString(")\n\n")
	}

	byName := make([]SelectorConstant, len(selectors))
	copy(byName, selectors)
	sort.Slice(byName, func(i, j int) bool { return byName[i].Name < byName[j].Name })

	buf.WriteString("// AllSelectors maps recipe names to their selectors.\n")
	buf.WriteString("var AllSelectors = map[string]string{\n")
	for _, s := range byName {
		fmt.Fprintf(&buf, "\t%s: %s,\n", strconv.Quote(s.Name), s.GoName)
	}
	buf.WriteString("}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	return os.WriteFile(path, formatted, 0o644)
}

// toGoName converts kebab-case and snake_case recipe names to PascalCase
func toGoName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})

	for i, part := range parts {
		if len(part) > 0 {
			runes := []rune(part)
			runes[0] = unicode.ToUpper(runes[0])
			parts[i] = string(runes)
		}
	}

	return strings.Join(parts, "")
}
